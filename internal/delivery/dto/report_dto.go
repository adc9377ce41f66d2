package dto

type DoctorTotalsReport struct {
	TotalDoctors int            `json:"total_doctors"`
	BySpeciality map[string]int `json:"by_speciality"`
}

type DoctorPatientCount struct {
	Doctor   string `json:"doctor"`
	Patients int    `json:"patients"`
}

type PatientsPerDoctorReport struct {
	Doctors []DoctorPatientCount `json:"doctors"`
}

type DoctorMonthlyAppointments struct {
	Doctor string         `json:"doctor"`
	Months map[string]int `json:"months"`
}

type AppointmentsPerDoctorReport struct {
	Doctors []DoctorMonthlyAppointments `json:"doctors"`
}

type SymptomCount struct {
	Symptom  string `json:"symptom"`
	Patients int    `json:"patients"`
}

type SymptomsReport struct {
	Symptoms []SymptomCount `json:"symptoms"`
}

type AppointmentEntry struct {
	Patient  string `json:"patient"`
	Doctor   string `json:"doctor"`
	DateTime string `json:"date_time"`
	Updated  bool   `json:"updated"`
}

type MonthAppointments struct {
	YearMonth    string             `json:"year_month"`
	Appointments []AppointmentEntry `json:"appointments"`
}

type AppointmentsReport struct {
	Months []MonthAppointments `json:"months"`
}
