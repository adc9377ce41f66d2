package usecase

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyAssigned = errors.New("patient is already assigned to a doctor")
	ErrNotAssigned     = errors.New("patient has no doctor assigned yet")
)

// AssignmentUsecase is the doctor-patient linking state machine. A patient is
// Unassigned until the first successful Assign, then Assigned forever;
// Relocate and Reschedule are only legal while Assigned.
type AssignmentUsecase interface {
	Assign(patientIndex int, doctorID uuid.UUID, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error)
	Relocate(patientIndex int, doctorID uuid.UUID, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error)
	Reschedule(patientIndex int, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error)
}

type assignmentUsecase struct {
	state       *session.Session
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	logRepo     repository.AppointmentLogRepository
}

func NewAssignmentUsecase(
	state *session.Session,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	logRepo repository.AppointmentLogRepository,
) AssignmentUsecase {
	return &assignmentUsecase{
		state:       state,
		log:         log,
		patientRepo: patientRepo,
		logRepo:     logRepo,
	}
}

func (u *assignmentUsecase) Assign(patientIndex int, doctorID uuid.UUID, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}
	doctor := u.state.DoctorByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	when, err := entity.NewAppointmentTime(at.Year, at.Month, at.Day, at.Hour, at.Minute)
	if err != nil {
		return nil, err
	}
	if patient.Assigned() {
		return nil, ErrAlreadyAssigned
	}

	u.link(patient, doctor, when)
	if err := u.persist(patient, doctor, when, false); err != nil {
		return nil, err
	}

	u.log.Infof("Assigned %s to Dr. %s on %s", patient.FullName(), doctor.FullName(), when.Format(entity.AppointmentTimeLayout))
	return assignmentResponse(patient, doctor, when), nil
}

// Relocate moves an assigned patient to a different doctor. The previous
// doctor keeps the patient's name in its list; only the patient record and
// the new doctor change.
func (u *assignmentUsecase) Relocate(patientIndex int, doctorID uuid.UUID, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}
	doctor := u.state.DoctorByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	when, err := entity.NewAppointmentTime(at.Year, at.Month, at.Day, at.Hour, at.Minute)
	if err != nil {
		return nil, err
	}
	if !patient.Assigned() {
		return nil, ErrNotAssigned
	}

	previous := patient.Doctor
	u.link(patient, doctor, when)
	if err := u.persist(patient, doctor, when, false); err != nil {
		return nil, err
	}

	u.log.Infof("Relocated %s from Dr. %s to Dr. %s on %s",
		patient.FullName(), previous, doctor.FullName(), when.Format(entity.AppointmentTimeLayout))
	return assignmentResponse(patient, doctor, when), nil
}

// Reschedule updates only the current appointment of an assigned patient. It
// appends a marked log row but, unlike Assign and Relocate, does not rewrite
// the patient file: the appointment date lives in the log, not the patient
// schema.
func (u *assignmentUsecase) Reschedule(patientIndex int, at dto.AppointmentTimeRequest) (*dto.AssignmentResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}
	when, err := entity.NewAppointmentTime(at.Year, at.Month, at.Day, at.Hour, at.Minute)
	if err != nil {
		return nil, err
	}
	if !patient.Assigned() {
		return nil, ErrNotAssigned
	}

	patient.AppointmentDate = &when
	if err := u.logRepo.Append(patient.FullName(), patient.Doctor, when, true); err != nil {
		u.log.Errorf("Failed to record rescheduled appointment for %s: %+v", patient.FullName(), err)
		return nil, fmt.Errorf("record appointment: %w", err)
	}

	u.log.Infof("Rescheduled %s with Dr. %s to %s", patient.FullName(), patient.Doctor, when.Format(entity.AppointmentTimeLayout))
	return &dto.AssignmentResponse{
		Patient:         patient.FullName(),
		Doctor:          patient.Doctor,
		AppointmentDate: when.Format(entity.AppointmentTimeLayout),
	}, nil
}

func (u *assignmentUsecase) link(patient *entity.Patient, doctor *entity.Doctor, when time.Time) {
	patient.Link(doctor.FullName(), when)
	doctor.AddPatient(patient.FullName())
	doctor.AddAppointment(when)
}

// persist appends the log row and rewrites the active patient file. The
// in-memory mutation is not rolled back on failure; the error reports that
// disk is behind memory.
func (u *assignmentUsecase) persist(patient *entity.Patient, doctor *entity.Doctor, when time.Time, updated bool) error {
	if err := u.logRepo.Append(patient.FullName(), doctor.FullName(), when, updated); err != nil {
		u.log.Errorf("Failed to record appointment for %s: %+v", patient.FullName(), err)
		return fmt.Errorf("record appointment: %w", err)
	}
	if err := u.patientRepo.RewriteAll(u.state.Patients); err != nil {
		u.log.Errorf("Failed to rewrite patient records: %+v", err)
		return fmt.Errorf("persist patients: %w", err)
	}
	return nil
}

func assignmentResponse(patient *entity.Patient, doctor *entity.Doctor, when time.Time) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		Patient:         patient.FullName(),
		Doctor:          doctor.FullName(),
		AppointmentDate: when.Format(entity.AppointmentTimeLayout),
	}
}
