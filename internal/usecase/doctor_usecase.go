package usecase

import (
	"errors"
	"fmt"

	"hospital-management-core/internal/converter"
	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrDoctorNameExists = errors.New("a doctor with that name already exists")
)

type DoctorUsecase interface {
	Register(req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	List() *dto.DoctorListResponse
	Get(id uuid.UUID) (*dto.DoctorResponse, error)
	Update(id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(id uuid.UUID) error

	// Doctor self-service: patientIndex addresses the doctor's own patient
	// list, not the global collection.
	MyPatients(username string) (*dto.PatientListResponse, error)
	PatientSymptoms(username string, patientIndex int) (*dto.SymptomsResponse, error)
	AddPatientSymptoms(username string, patientIndex int, req *dto.AddSymptomsRequest) (*dto.SymptomsResponse, error)
}

type doctorUsecase struct {
	state       *session.Session
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewDoctorUsecase(
	state *session.Session,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) DoctorUsecase {
	return &doctorUsecase{
		state:       state,
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (u *doctorUsecase) Register(req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	for _, existing := range u.state.Doctors {
		if existing.FirstName == req.FirstName && existing.Surname == req.Surname {
			return nil, ErrDoctorNameExists
		}
	}

	doctor := entity.NewDoctor(req.FirstName, req.Surname, req.Speciality, req.Username, req.Password)
	u.state.Doctors = append(u.state.Doctors, doctor)

	if err := u.doctorRepo.SaveCredentials(doctor); err != nil {
		u.log.Errorf("Failed to persist doctor %s: %+v", doctor.FullName(), err)
		return nil, fmt.Errorf("persist doctor: %w", err)
	}

	u.log.Infof("Registered doctor %s (%s)", doctor.FullName(), doctor.Speciality)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List() *dto.DoctorListResponse {
	u.state.Lock()
	defer u.state.Unlock()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(u.state.Doctors),
		Total:   len(u.state.Doctors),
	}
}

func (u *doctorUsecase) Get(id uuid.UUID) (*dto.DoctorResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	doctor := u.state.DoctorByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	doctor := u.state.DoctorByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.Surname != "" {
		doctor.Surname = req.Surname
	}
	if req.Speciality != "" {
		doctor.Speciality = req.Speciality
	}

	if err := u.doctorRepo.SaveCredentials(doctor); err != nil {
		u.log.Errorf("Failed to persist doctor %s: %+v", doctor.FullName(), err)
		return nil, fmt.Errorf("persist doctor: %w", err)
	}

	u.log.Infof("Updated doctor %s", doctor.FullName())
	return converter.DoctorToResponse(doctor), nil
}

// Delete removes the doctor from the active collection. Patients still
// referencing the doctor's name are left as they are; the reference simply
// dangles, which readers of the patient file must tolerate anyway.
func (u *doctorUsecase) Delete(id uuid.UUID) error {
	u.state.Lock()
	defer u.state.Unlock()

	for i, doctor := range u.state.Doctors {
		if doctor.ID != id {
			continue
		}
		u.state.Doctors = append(u.state.Doctors[:i], u.state.Doctors[i+1:]...)
		if err := u.doctorRepo.RewriteAll(u.state.Doctors); err != nil {
			u.log.Errorf("Failed to rewrite doctor records: %+v", err)
			return fmt.Errorf("persist doctors: %w", err)
		}
		u.log.Infof("Deleted doctor %s", doctor.FullName())
		return nil
	}
	return ErrDoctorNotFound
}

func (u *doctorUsecase) MyPatients(username string) (*dto.PatientListResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	doctor := u.state.DoctorByUsername(username)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patients := u.resolvePatients(doctor)
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *doctorUsecase) PatientSymptoms(username string, patientIndex int) (*dto.SymptomsResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, err := u.ownPatientAt(username, patientIndex)
	if err != nil {
		return nil, err
	}
	return &dto.SymptomsResponse{FullName: patient.FullName(), Symptoms: patient.Symptoms}, nil
}

func (u *doctorUsecase) AddPatientSymptoms(username string, patientIndex int, req *dto.AddSymptomsRequest) (*dto.SymptomsResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, err := u.ownPatientAt(username, patientIndex)
	if err != nil {
		return nil, err
	}

	patient.AddSymptoms(req.Symptoms...)
	if err := u.patientRepo.RewriteAll(u.state.Patients); err != nil {
		u.log.Errorf("Failed to rewrite patient records: %+v", err)
		return nil, fmt.Errorf("persist patients: %w", err)
	}

	u.log.Infof("Dr. %s added %d symptom(s) to %s", username, len(req.Symptoms), patient.FullName())
	return &dto.SymptomsResponse{FullName: patient.FullName(), Symptoms: patient.Symptoms}, nil
}

// resolvePatients maps the doctor's linked full names onto active patient
// records, first match per name occurrence. Names of discharged patients
// resolve to nothing and are dropped from the view.
func (u *doctorUsecase) resolvePatients(doctor *entity.Doctor) []*entity.Patient {
	var patients []*entity.Patient
	for _, name := range doctor.Patients {
		for _, patient := range u.state.Patients {
			if patient.FullName() == name {
				patients = append(patients, patient)
				break
			}
		}
	}
	return patients
}

func (u *doctorUsecase) ownPatientAt(username string, patientIndex int) (*entity.Patient, error) {
	doctor := u.state.DoctorByUsername(username)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	patients := u.resolvePatients(doctor)
	if patientIndex < 0 || patientIndex >= len(patients) {
		return nil, ErrPatientNotFound
	}
	return patients[patientIndex], nil
}
