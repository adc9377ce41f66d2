package entity

import "time"

// AppointmentTimeLayout is the on-disk datetime form, e.g. "2026/02/12 09:00".
const AppointmentTimeLayout = "2006/01/02 15:04"

// Appointment is one row of the year-partitioned appointment log: a single
// assignment, relocation, or reschedule event. The log is append-only history;
// only Patient.AppointmentDate holds the current value.
type Appointment struct {
	PatientFullName string
	DoctorFullName  string
	When            time.Time
	Updated         bool
}

// YearMonth returns the "YYYY/MM" grouping key used by the reports.
func (a Appointment) YearMonth() string {
	return a.When.Format("2006/01")
}

// NewAppointmentTime validates and builds an appointment timestamp. Hour and
// minute are range-checked, then the assembled date is checked against
// calendar normalization so that e.g. month 13 or February 30 are rejected
// instead of rolling over.
func NewAppointmentTime(year, month, day, hour, minute int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, &ValidationError{Field: "hour", Message: "hour must be between 0 and 23"}
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, &ValidationError{Field: "minute", Message: "minute must be between 0 and 59"}
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, &ValidationError{Field: "date", Message: "not a valid calendar date"}
	}
	return t, nil
}
