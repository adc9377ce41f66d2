package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthLabel is the key format of Doctor.AppointmentsByMonth, e.g. "February 2026".
const MonthLabel = "January 2006"

// Doctor is a registered doctor. ID is a process-stable surrogate identity:
// it is not persisted, but the credential store keys its update-by-match
// bookkeeping on it so that renaming display fields cannot duplicate a row.
type Doctor struct {
	ID         uuid.UUID
	Person
	Speciality string

	// Patients holds full names of linked patients, in link order. A name can
	// appear more than once when the same patient is linked repeatedly.
	Patients []string

	// AppointmentsByMonth counts scheduling events per "Month Year" label.
	// In-memory only; rebuilt from the appointment log at load time.
	AppointmentsByMonth map[string]int
}

func NewDoctor(firstName, surname, speciality, username, password string) *Doctor {
	return &Doctor{
		ID: uuid.New(),
		Person: Person{
			FirstName: firstName,
			Surname:   surname,
			Username:  username,
			Password:  password,
		},
		Speciality:          speciality,
		AppointmentsByMonth: map[string]int{},
	}
}

// DefaultDoctors is the bootstrap set written when doctor.txt is absent or empty.
func DefaultDoctors() []*Doctor {
	return []*Doctor{
		NewDoctor("John", "Smith", "Internal Med.", "john", "123"),
		NewDoctor("Jane", "Smith", "Pediatrics", "jane", "123"),
		NewDoctor("Jon", "Carlos", "Cardiology", "jon", "123"),
	}
}

// AddPatient links a patient by full name. Duplicates are kept.
func (d *Doctor) AddPatient(patientFullName string) {
	d.Patients = append(d.Patients, patientFullName)
}

func (d *Doctor) TotalPatients() int {
	return len(d.Patients)
}

// AddAppointment bumps the month counter for the appointment's month.
func (d *Doctor) AddAppointment(at time.Time) {
	if d.AppointmentsByMonth == nil {
		d.AppointmentsByMonth = map[string]int{}
	}
	d.AppointmentsByMonth[at.Format(MonthLabel)]++
}
