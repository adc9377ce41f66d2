package repository

import (
	"path/filepath"
	"strconv"
	"strings"

	"hospital-management-core/internal/domain/entity"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/infrastructure/textdb"
)

const (
	patientsFile  = "patients_file.txt"
	patientHeader = "Full Name|Age|Mobile|Postcode|Address|Symptoms|Doctor"

	// DoctorNone is the on-disk sentinel for a patient with no assigned doctor.
	DoctorNone = "None"

	patientFieldCount = 7
)

type patientRepository struct {
	path string
}

func NewPatientRepository(dataDir string) domainRepo.PatientRepository {
	return &patientRepository{path: filepath.Join(dataDir, patientsFile)}
}

func (r *patientRepository) LoadAll() ([]*entity.Patient, error) {
	records, err := textdb.ReadRecords(r.path, patientHeader)
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

func (r *patientRepository) AppendOne(patient *entity.Patient) error {
	if err := textdb.EnsureHeader(r.path, patientHeader); err != nil {
		return err
	}
	return textdb.AppendRecord(r.path, patientFields(patient))
}

func (r *patientRepository) RewriteAll(patients []*entity.Patient) error {
	records := make([][]string, 0, len(patients))
	for _, patient := range patients {
		records = append(records, patientFields(patient))
	}
	return textdb.RewriteAll(r.path, patientHeader, records)
}

// patientFields serializes a patient into the column order of the patient
// schema. The first name and surname collapse into one full-name column, and
// an unassigned doctor becomes the "None" sentinel.
func patientFields(p *entity.Patient) []string {
	doctor := p.Doctor
	if doctor == "" {
		doctor = DoctorNone
	}
	return []string{
		p.FullName(),
		strconv.Itoa(p.Age),
		p.Mobile,
		p.Postcode,
		p.Address,
		strings.Join(p.Symptoms, ", "),
		doctor,
	}
}

// parsePatient inverts patientFields. Lines with too few fields or a
// non-numeric age are skipped. The full name splits on its first space, so
// only two-token names reconstruct exactly.
func parsePatient(fields []string) (*entity.Patient, bool) {
	if len(fields) < patientFieldCount {
		return nil, false
	}
	age, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, false
	}

	firstName, surname := entity.SplitFullName(fields[0])
	var symptoms []string
	if s := strings.TrimSpace(fields[5]); s != "" {
		symptoms = strings.Split(s, ", ")
	}
	doctor := strings.TrimSpace(fields[6])
	if doctor == DoctorNone {
		doctor = ""
	}

	patient := entity.NewPatient(
		firstName,
		surname,
		age,
		strings.TrimSpace(fields[2]),
		strings.TrimSpace(fields[3]),
		strings.TrimSpace(fields[4]),
		symptoms,
	)
	patient.Doctor = doctor
	return patient, true
}
