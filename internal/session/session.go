// Package session owns the in-memory collections loaded from the record
// files. Core operations receive the session, mutate it in place, and
// re-persist through the repositories; nothing else holds durable state.
package session

import (
	"sync"

	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/domain/repository"

	"github.com/google/uuid"
)

type Session struct {
	mu sync.Mutex

	Admin      *entity.Admin
	Doctors    []*entity.Doctor
	Patients   []*entity.Patient
	Discharged []*entity.Patient
}

// Load reads every collection once at startup, links assigned patients into
// their doctors' patient lists, and rebuilds each doctor's per-month
// appointment counters by replaying the appointment log.
func Load(
	adminRepo repository.AdminRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	dischargedRepo repository.DischargedPatientRepository,
	logRepo repository.AppointmentLogRepository,
) (*Session, error) {
	admin, err := adminRepo.Load()
	if err != nil {
		return nil, err
	}
	doctors, err := doctorRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	patients, err := patientRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	discharged, err := dischargedRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	appointments, err := logRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Admin:      admin,
		Doctors:    doctors,
		Patients:   patients,
		Discharged: discharged,
	}

	for _, patient := range patients {
		if !patient.Assigned() {
			continue
		}
		if doctor := s.DoctorByFullName(patient.Doctor); doctor != nil {
			doctor.AddPatient(patient.FullName())
		}
	}

	// Reschedule-only rows carry the "(Updated)" marker and never counted as
	// a fresh appointment.
	for _, appointment := range appointments {
		if appointment.Updated {
			continue
		}
		if doctor := s.DoctorByFullName(appointment.DoctorFullName); doctor != nil {
			doctor.AddAppointment(appointment.When)
		}
	}

	return s, nil
}

// Lock serializes core operations; every usecase takes it for the duration of
// one request so the single-writer file protocol is preserved behind a
// concurrent collaborator.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// DoctorByFullName returns the doctor whose full name matches, or nil.
// Callers hold the lock.
func (s *Session) DoctorByFullName(fullName string) *entity.Doctor {
	for _, doctor := range s.Doctors {
		if doctor.FullName() == fullName {
			return doctor
		}
	}
	return nil
}

// DoctorByID returns the doctor with the given surrogate ID, or nil.
func (s *Session) DoctorByID(id uuid.UUID) *entity.Doctor {
	for _, doctor := range s.Doctors {
		if doctor.ID == id {
			return doctor
		}
	}
	return nil
}

// DoctorByUsername returns the doctor owning a login username, or nil.
func (s *Session) DoctorByUsername(username string) *entity.Doctor {
	for _, doctor := range s.Doctors {
		if doctor.Username == username {
			return doctor
		}
	}
	return nil
}

// PatientAt bounds-checks an index into the active collection.
func (s *Session) PatientAt(index int) (*entity.Patient, bool) {
	if index < 0 || index >= len(s.Patients) {
		return nil, false
	}
	return s.Patients[index], true
}
