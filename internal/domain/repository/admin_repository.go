package repository

import "hospital-management-core/internal/domain/entity"

type AdminRepository interface {
	// Load returns the deployment's admin account. An absent, empty or
	// malformed admin file bootstraps and returns the default account.
	Load() (*entity.Admin, error)
	Save(admin *entity.Admin) error
}
