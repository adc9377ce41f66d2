package usecase

import (
	"testing"

	"hospital-management-core/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorTotalsCountsPerSpeciality(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.doctors(t).Register(&dto.RegisterDoctorRequest{
		FirstName: "Amy", Surname: "Carter", Speciality: "Pediatrics",
		Username: "amy", Password: "123",
	})
	require.NoError(t, err)

	report := env.reports(t).DoctorTotals()
	assert.Equal(t, 4, report.TotalDoctors)
	assert.Equal(t, map[string]int{
		"Internal Med.": 1,
		"Pediatrics":    2,
		"Cardiology":    1,
	}, report.BySpeciality)
}

func TestPatientsPerDoctorFollowsRegistrationOrder(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))

	john := env.state.DoctorByFullName("John Smith")
	_, err := env.assignments(t).Assign(0, john.ID, febAppointment())
	require.NoError(t, err)

	report := env.reports(t).PatientsPerDoctor()
	require.Len(t, report.Doctors, 3)
	assert.Equal(t, dto.DoctorPatientCount{Doctor: "John Smith", Patients: 1}, report.Doctors[0])
	assert.Equal(t, dto.DoctorPatientCount{Doctor: "Jane Smith", Patients: 0}, report.Doctors[1])
	assert.Equal(t, dto.DoctorPatientCount{Doctor: "Jon Carlos", Patients: 0}, report.Doctors[2])
}

func TestAppointmentsPerDoctorCountsFreshRowsOnly(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	_, err := uc.Assign(0, john.ID, febAppointment())
	require.NoError(t, err)

	moved := febAppointment()
	moved.Day = 20
	_, err = uc.Reschedule(0, moved)
	require.NoError(t, err)

	report := env.reports(t).AppointmentsPerDoctor()
	require.Len(t, report.Doctors, 3)
	assert.Equal(t, "John Smith", report.Doctors[0].Doctor)
	assert.Equal(t, map[string]int{"February 2026": 1}, report.Doctors[0].Months)
	assert.Empty(t, report.Doctors[1].Months)
}

func TestPatientsBySymptomSortsByFrequency(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	admitSara(t, uc)

	_, err := uc.Admit(&dto.AdmitPatientRequest{
		FirstName: "Mike", Surname: "Jones", Age: 37,
		Mobile: "07555551234", Postcode: "L2 2AB", Address: "Kathmandu",
		Symptoms: []string{"Fever", "Headache"},
	})
	require.NoError(t, err)

	report := env.reports(t).PatientsBySymptom()
	require.Len(t, report.Symptoms, 3)
	assert.Equal(t, dto.SymptomCount{Symptom: "Fever", Patients: 2}, report.Symptoms[0])
	// Single-patient symptoms tie and fall back to alphabetical order.
	assert.Equal(t, dto.SymptomCount{Symptom: "Cough", Patients: 1}, report.Symptoms[1])
	assert.Equal(t, dto.SymptomCount{Symptom: "Headache", Patients: 1}, report.Symptoms[2])
}

func TestAppointmentsByMonthGroupsAndSorts(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	jane := env.state.DoctorByFullName("Jane Smith")

	march := dto.AppointmentTimeRequest{Year: 2026, Month: 3, Day: 1, Hour: 11, Minute: 30}
	_, err := uc.Assign(0, john.ID, march)
	require.NoError(t, err)
	_, err = uc.Relocate(0, jane.ID, febAppointment())
	require.NoError(t, err)

	report, err := env.reports(t).AppointmentsByMonth()
	require.NoError(t, err)
	require.Len(t, report.Months, 2)

	assert.Equal(t, "2026/02", report.Months[0].YearMonth)
	require.Len(t, report.Months[0].Appointments, 1)
	assert.Equal(t, "Jane Smith", report.Months[0].Appointments[0].Doctor)
	assert.False(t, report.Months[0].Appointments[0].Updated)

	assert.Equal(t, "2026/03", report.Months[1].YearMonth)
	assert.Equal(t, "2026/03/01 11:30", report.Months[1].Appointments[0].DateTime)
}
