package repository

import (
	"path/filepath"
	"strings"
	"sync"

	"hospital-management-core/internal/domain/entity"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/infrastructure/textdb"
	"hospital-management-core/pkg/secret"

	"github.com/google/uuid"
)

const (
	doctorFile   = "doctor.txt"
	doctorHeader = "Full Name|Speciality|Username|Password"
)

// credentialKey is the identity a doctor's line carried the last time it was
// written. SaveCredentials matches on this snapshot, keyed by the doctor's
// surrogate ID, so that changing username together with other fields in one
// operation still replaces the old line instead of appending a duplicate.
type credentialKey struct {
	fullName   string
	speciality string
	username   string
}

type doctorRepository struct {
	path string

	mu   sync.Mutex
	prev map[uuid.UUID]credentialKey
}

func NewDoctorRepository(dataDir string) domainRepo.DoctorRepository {
	return &doctorRepository{
		path: filepath.Join(dataDir, doctorFile),
		prev: map[uuid.UUID]credentialKey{},
	}
}

func (r *doctorRepository) LoadAll() ([]*entity.Doctor, error) {
	lines, err := textdb.ReadLines(r.path)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return r.bootstrapDefaults()
	}

	var doctors []*entity.Doctor
	for _, line := range lines {
		doctor, ok := parseDoctor(line)
		if !ok {
			continue
		}
		doctors = append(doctors, doctor)
	}
	if len(doctors) == 0 {
		return entity.DefaultDoctors(), nil
	}

	r.mu.Lock()
	for _, doctor := range doctors {
		r.prev[doctor.ID] = keyOf(doctor)
	}
	r.mu.Unlock()
	return doctors, nil
}

func (r *doctorRepository) SaveCredentials(doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	matchKey, known := r.prev[doctor.ID]
	if !known {
		matchKey = keyOf(doctor)
	}

	lines, err := textdb.ReadLines(r.path)
	if err != nil {
		return err
	}

	updated := false
	out := make([]string, 0, len(lines)+2)
	for _, line := range lines {
		key, ok := parseCredentialKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if key == matchKey && !updated {
			out = append(out, doctorLine(doctor))
			updated = true
			continue
		}
		out = append(out, line)
	}
	if !updated {
		out = append(out, doctorLine(doctor))
	}
	if len(out) == 0 || out[0] != doctorHeader {
		out = append([]string{doctorHeader}, out...)
	}

	if err := textdb.RewriteLines(r.path, out); err != nil {
		return err
	}
	r.prev[doctor.ID] = keyOf(doctor)
	return nil
}

func (r *doctorRepository) RewriteAll(doctors []*entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(doctors)+1)
	lines = append(lines, doctorHeader)
	for _, doctor := range doctors {
		lines = append(lines, doctorLine(doctor))
	}
	if err := textdb.RewriteLines(r.path, lines); err != nil {
		return err
	}

	r.prev = map[uuid.UUID]credentialKey{}
	for _, doctor := range doctors {
		r.prev[doctor.ID] = keyOf(doctor)
	}
	return nil
}

func (r *doctorRepository) bootstrapDefaults() ([]*entity.Doctor, error) {
	doctors := entity.DefaultDoctors()
	lines := make([]string, 0, len(doctors)+1)
	lines = append(lines, doctorHeader)
	for _, doctor := range doctors {
		lines = append(lines, doctorLine(doctor))
	}
	if err := textdb.RewriteLines(r.path, lines); err != nil {
		return nil, err
	}

	r.mu.Lock()
	for _, doctor := range doctors {
		r.prev[doctor.ID] = keyOf(doctor)
	}
	r.mu.Unlock()
	return doctors, nil
}

func keyOf(d *entity.Doctor) credentialKey {
	return credentialKey{fullName: d.FullName(), speciality: d.Speciality, username: d.Username}
}

func doctorLine(d *entity.Doctor) string {
	return strings.Join([]string{
		d.FullName(),
		d.Speciality,
		d.Username,
		secret.Encode(d.Password),
	}, textdb.Separator)
}

// parseDoctor reads one credential line. The current schema is four columns
// with a combined full-name field; a five-column variant with first name and
// surname split is still accepted. Rows missing a first name, speciality,
// username or decodable password are skipped.
func parseDoctor(line string) (*entity.Doctor, bool) {
	fullName, speciality, username, encoded, ok := splitDoctorLine(line)
	if !ok {
		return nil, false
	}
	password := secret.Decode(encoded)
	firstName, surname := entity.SplitFullName(fullName)
	if firstName == "" || speciality == "" || username == "" || password == "" {
		return nil, false
	}
	return entity.NewDoctor(firstName, surname, speciality, username, password), true
}

func parseCredentialKey(line string) (credentialKey, bool) {
	fullName, speciality, username, _, ok := splitDoctorLine(line)
	if !ok {
		return credentialKey{}, false
	}
	return credentialKey{fullName: fullName, speciality: speciality, username: username}, true
}

func splitDoctorLine(line string) (fullName, speciality, username, encoded string, ok bool) {
	if strings.TrimSpace(line) == "" || line == doctorHeader {
		return "", "", "", "", false
	}
	parts := strings.Split(line, textdb.Separator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch {
	case len(parts) >= 5:
		return strings.TrimSpace(parts[0] + " " + parts[1]), parts[2], parts[3], parts[4], true
	case len(parts) == 4:
		return parts[0], parts[1], parts[2], parts[3], true
	default:
		return "", "", "", "", false
	}
}
