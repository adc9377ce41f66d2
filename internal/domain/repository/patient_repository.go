package repository

import "hospital-management-core/internal/domain/entity"

type PatientRepository interface {
	// LoadAll returns the active patients. An absent file is an empty
	// collection; lines with too few fields are skipped.
	LoadAll() ([]*entity.Patient, error)

	// AppendOne adds a newly admitted patient's record line.
	AppendOne(patient *entity.Patient) error

	// RewriteAll replaces the active patient file with the supplied
	// collection, in order. Every single-record mutation goes through here;
	// the format has no update-in-place primitive.
	RewriteAll(patients []*entity.Patient) error
}

type DischargedPatientRepository interface {
	LoadAll() ([]*entity.Patient, error)

	// Append adds a discharged patient's record, healing the header first.
	// The discharged file is append-only.
	Append(patient *entity.Patient) error
}
