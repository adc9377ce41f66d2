package usecase

import (
	"errors"
	"fmt"

	"hospital-management-core/internal/converter"
	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/session"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	Admit(req *dto.AdmitPatientRequest) (*dto.PatientResponse, error)
	List() *dto.PatientListResponse
	ListDischarged() *dto.PatientListResponse
	Symptoms(patientIndex int) (*dto.SymptomsResponse, error)
	AddSymptoms(patientIndex int, req *dto.AddSymptomsRequest) (*dto.PatientResponse, error)
	UpdateDetails(patientIndex int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Discharge(patientIndex int) (*dto.PatientResponse, error)
	GroupBySurname() *dto.FamilyGroupsResponse
}

type patientUsecase struct {
	state          *session.Session
	log            *logrus.Logger
	patientRepo    repository.PatientRepository
	dischargedRepo repository.DischargedPatientRepository
}

func NewPatientUsecase(
	state *session.Session,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	dischargedRepo repository.DischargedPatientRepository,
) PatientUsecase {
	return &patientUsecase{
		state:          state,
		log:            log,
		patientRepo:    patientRepo,
		dischargedRepo: dischargedRepo,
	}
}

// Admit creates a patient in the Unassigned state and appends its record.
func (u *patientUsecase) Admit(req *dto.AdmitPatientRequest) (*dto.PatientResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient := entity.NewPatient(req.FirstName, req.Surname, req.Age, req.Mobile, req.Postcode, req.Address, req.Symptoms)
	u.state.Patients = append(u.state.Patients, patient)

	if err := u.patientRepo.AppendOne(patient); err != nil {
		u.log.Errorf("Failed to append patient record for %s: %+v", patient.FullName(), err)
		return nil, fmt.Errorf("persist patient: %w", err)
	}

	u.log.Infof("Admitted patient %s", patient.FullName())
	return converter.PatientToResponse(len(u.state.Patients)-1, patient), nil
}

func (u *patientUsecase) List() *dto.PatientListResponse {
	u.state.Lock()
	defer u.state.Unlock()
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(u.state.Patients),
		Total:    len(u.state.Patients),
	}
}

func (u *patientUsecase) ListDischarged() *dto.PatientListResponse {
	u.state.Lock()
	defer u.state.Unlock()
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(u.state.Discharged),
		Total:    len(u.state.Discharged),
	}
}

func (u *patientUsecase) Symptoms(patientIndex int) (*dto.SymptomsResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return &dto.SymptomsResponse{FullName: patient.FullName(), Symptoms: patient.Symptoms}, nil
}

func (u *patientUsecase) AddSymptoms(patientIndex int, req *dto.AddSymptomsRequest) (*dto.PatientResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}

	patient.AddSymptoms(req.Symptoms...)
	if err := u.patientRepo.RewriteAll(u.state.Patients); err != nil {
		u.log.Errorf("Failed to rewrite patient records: %+v", err)
		return nil, fmt.Errorf("persist patients: %w", err)
	}

	u.log.Infof("Added %d symptom(s) to %s", len(req.Symptoms), patient.FullName())
	return converter.PatientToResponse(patientIndex, patient), nil
}

func (u *patientUsecase) UpdateDetails(patientIndex int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.Surname != nil {
		patient.Surname = *req.Surname
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Mobile != nil {
		patient.Mobile = *req.Mobile
	}
	if req.Postcode != nil {
		patient.Postcode = *req.Postcode
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Symptoms != nil {
		patient.Symptoms = *req.Symptoms
	}

	if err := u.patientRepo.RewriteAll(u.state.Patients); err != nil {
		u.log.Errorf("Failed to rewrite patient records: %+v", err)
		return nil, fmt.Errorf("persist patients: %w", err)
	}

	u.log.Infof("Updated details for %s", patient.FullName())
	return converter.PatientToResponse(patientIndex, patient), nil
}

// Discharge moves a patient into the terminal discharged collection: the
// record is appended to the discharged store, removed from the active
// collection, and the active file rewritten with the remaining patients in
// their prior relative order.
func (u *patientUsecase) Discharge(patientIndex int) (*dto.PatientResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	patient, ok := u.state.PatientAt(patientIndex)
	if !ok {
		return nil, ErrPatientNotFound
	}

	u.state.Discharged = append(u.state.Discharged, patient)
	u.state.Patients = append(u.state.Patients[:patientIndex], u.state.Patients[patientIndex+1:]...)

	if err := u.dischargedRepo.Append(patient); err != nil {
		u.log.Errorf("Failed to append discharged record for %s: %+v", patient.FullName(), err)
		return nil, fmt.Errorf("persist discharged patient: %w", err)
	}
	if err := u.patientRepo.RewriteAll(u.state.Patients); err != nil {
		u.log.Errorf("Failed to rewrite patient records: %+v", err)
		return nil, fmt.Errorf("persist patients: %w", err)
	}

	u.log.Infof("Discharged patient %s", patient.FullName())
	return converter.PatientToResponse(len(u.state.Discharged)-1, patient), nil
}

// GroupBySurname is a pure read-only query: families appear in first-seen
// order and members keep their insertion order within each family.
func (u *patientUsecase) GroupBySurname() *dto.FamilyGroupsResponse {
	u.state.Lock()
	defer u.state.Unlock()

	indexBySurname := map[string]int{}
	var families []dto.FamilyGroup
	for i, patient := range u.state.Patients {
		pos, seen := indexBySurname[patient.Surname]
		if !seen {
			pos = len(families)
			indexBySurname[patient.Surname] = pos
			families = append(families, dto.FamilyGroup{Surname: patient.Surname})
		}
		families[pos].Patients = append(families[pos].Patients, converter.PatientToResponse(i, patient))
	}
	return &dto.FamilyGroupsResponse{Families: families}
}
