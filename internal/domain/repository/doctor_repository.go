package repository

import "hospital-management-core/internal/domain/entity"

type DoctorRepository interface {
	// LoadAll returns every doctor in the credential file, bootstrapping the
	// default set when the file is absent, empty, or yields no valid rows.
	LoadAll() ([]*entity.Doctor, error)

	// SaveCredentials persists one doctor's current fields, replacing the line
	// previously written for that doctor (matched by its surrogate ID) or
	// appending when the doctor has never been persisted.
	SaveCredentials(doctor *entity.Doctor) error

	// RewriteAll replaces the credential file with the supplied collection.
	RewriteAll(doctors []*entity.Doctor) error
}
