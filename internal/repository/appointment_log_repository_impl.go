package repository

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"hospital-management-core/internal/domain/entity"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/infrastructure/textdb"
)

const (
	appointmentHeader      = "Patient Name|Doctor Name|Appointment DateTime"
	appointmentFilePattern = "*_appointments.txt"
	updatedSuffix          = " (Updated)"
)

type appointmentLogRepository struct {
	dir string
}

func NewAppointmentLogRepository(dataDir string) domainRepo.AppointmentLogRepository {
	return &appointmentLogRepository{dir: dataDir}
}

// Append writes one event row into the log file of the event's calendar year.
func (r *appointmentLogRepository) Append(patientFullName, doctorFullName string, at time.Time, updated bool) error {
	path := filepath.Join(r.dir, fmt.Sprintf("%d_appointments.txt", at.Year()))
	if err := textdb.EnsureHeader(path, appointmentHeader); err != nil {
		return err
	}
	dateTime := at.Format(entity.AppointmentTimeLayout)
	if updated {
		dateTime += updatedSuffix
	}
	return textdb.AppendRecord(path, []string{patientFullName, doctorFullName, dateTime})
}

// LoadAll scans every year-partitioned file. Missing files and rows that do
// not parse are skipped silently; the log is best-effort reporting input.
func (r *appointmentLogRepository) LoadAll() ([]entity.Appointment, error) {
	paths, err := filepath.Glob(filepath.Join(r.dir, appointmentFilePattern))
	if err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	for _, path := range paths {
		records, err := textdb.ReadRecords(path, appointmentHeader)
		if err != nil {
			continue
		}
		for _, fields := range records {
			if appointment, ok := parseAppointment(fields); ok {
				appointments = append(appointments, appointment)
			}
		}
	}
	return appointments, nil
}

func parseAppointment(fields []string) (entity.Appointment, bool) {
	if len(fields) < 3 {
		return entity.Appointment{}, false
	}
	dateTime := strings.TrimSpace(fields[2])
	updated := strings.HasSuffix(dateTime, updatedSuffix)
	dateTime = strings.TrimSuffix(dateTime, updatedSuffix)

	when, err := time.ParseInLocation(entity.AppointmentTimeLayout, dateTime, time.Local)
	if err != nil {
		return entity.Appointment{}, false
	}
	return entity.Appointment{
		PatientFullName: strings.TrimSpace(fields[0]),
		DoctorFullName:  strings.TrimSpace(fields[1]),
		When:            when,
		Updated:         updated,
	}, true
}
