package repository

import (
	"path/filepath"

	"hospital-management-core/internal/domain/entity"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/infrastructure/textdb"
)

const (
	dischargedFile = "discharged_patient.txt"
	// Identical schema to the active patient file.
	dischargedHeader = patientHeader
)

type dischargedPatientRepository struct {
	path string
}

func NewDischargedPatientRepository(dataDir string) domainRepo.DischargedPatientRepository {
	return &dischargedPatientRepository{path: filepath.Join(dataDir, dischargedFile)}
}

func (r *dischargedPatientRepository) LoadAll() ([]*entity.Patient, error) {
	records, err := textdb.ReadRecords(r.path, dischargedHeader)
	if err != nil {
		return nil, err
	}

	var patients []*entity.Patient
	for _, fields := range records {
		if patient, ok := parsePatient(fields); ok {
			patients = append(patients, patient)
		}
	}
	return patients, nil
}

func (r *dischargedPatientRepository) Append(patient *entity.Patient) error {
	if err := textdb.EnsureHeader(r.path, dischargedHeader); err != nil {
		return err
	}
	return textdb.AppendRecord(r.path, patientFields(patient))
}
