package repository

import (
	"time"

	"hospital-management-core/internal/domain/entity"
)

type AppointmentLogRepository interface {
	// Append records one scheduling event in the file for the event's year,
	// healing the header first. Rows are never rewritten or deduplicated;
	// updated marks a reschedule-only event.
	Append(patientFullName, doctorFullName string, at time.Time, updated bool) error

	// LoadAll scans every year-partitioned log file, skipping malformed lines.
	LoadAll() ([]entity.Appointment, error)
}
