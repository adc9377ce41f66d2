package entity

import (
	"strings"
	"time"
)

// Patient is an admitted patient. Doctor holds the assigned doctor's full name
// and is empty while unassigned; the on-disk sentinel "None" exists only in the
// serialized form.
type Patient struct {
	FirstName       string
	Surname         string
	Age             int
	Mobile          string
	Postcode        string
	Address         string
	Symptoms        []string
	Doctor          string
	AppointmentDate *time.Time
}

func NewPatient(firstName, surname string, age int, mobile, postcode, address string, symptoms []string) *Patient {
	return &Patient{
		FirstName: firstName,
		Surname:   surname,
		Age:       age,
		Mobile:    mobile,
		Postcode:  postcode,
		Address:   address,
		Symptoms:  symptoms,
	}
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.Surname
}

// Assigned reports whether a doctor has ever been successfully assigned.
func (p *Patient) Assigned() bool {
	return p.Doctor != ""
}

// Link points the patient at a doctor and records the current appointment.
func (p *Patient) Link(doctorFullName string, at time.Time) {
	p.Doctor = doctorFullName
	p.AppointmentDate = &at
}

// AddSymptoms appends to the symptom history, preserving insertion order and
// duplicates.
func (p *Patient) AddSymptoms(symptoms ...string) {
	p.Symptoms = append(p.Symptoms, symptoms...)
}

// SplitFullName reconstructs first name and surname from a serialized full
// name by splitting on the first space. Only two-token names round-trip;
// a single-token name yields an empty surname.
func SplitFullName(fullName string) (firstName, surname string) {
	fullName = strings.TrimSpace(fullName)
	first, rest, found := strings.Cut(fullName, " ")
	if !found {
		return fullName, ""
	}
	return first, strings.TrimSpace(rest)
}
