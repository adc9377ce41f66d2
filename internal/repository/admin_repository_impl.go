package repository

import (
	"os"
	"path/filepath"
	"strings"

	"hospital-management-core/internal/domain/entity"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/infrastructure/textdb"
	"hospital-management-core/pkg/secret"
)

// The admin file is a single headerless line: username|encodedPassword|address.
const adminFile = "admin.txt"

type adminRepository struct {
	path string
}

func NewAdminRepository(dataDir string) domainRepo.AdminRepository {
	return &adminRepository{path: filepath.Join(dataDir, adminFile)}
}

func (r *adminRepository) Load() (*entity.Admin, error) {
	fallback := entity.DefaultAdmin()

	info, err := os.Stat(r.path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		if err := r.Save(fallback); err != nil {
			return nil, err
		}
		return fallback, nil
	}
	if err != nil {
		return nil, err
	}

	lines, err := textdb.ReadLines(r.path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return fallback, nil
	}

	parts := strings.Split(lines[0], textdb.Separator)
	if len(parts) < 2 {
		return fallback, nil
	}
	username := strings.TrimSpace(parts[0])
	password := secret.Decode(strings.TrimSpace(parts[1]))
	if username == "" || password == "" {
		return fallback, nil
	}
	address := fallback.Address
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		address = strings.TrimSpace(parts[2])
	}
	return &entity.Admin{Username: username, Password: password, Address: address}, nil
}

func (r *adminRepository) Save(admin *entity.Admin) error {
	line := strings.Join([]string{admin.Username, secret.Encode(admin.Password), admin.Address}, textdb.Separator)
	return textdb.RewriteLines(r.path, []string{line})
}
