package repository

import (
	"os"
	"path/filepath"
	"testing"

	"hospital-management-core/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPatient() *entity.Patient {
	return entity.NewPatient("Sara", "Smith", 20, "07012345678", "B1 234", "Kathmandu",
		[]string{"Fever", "Cough"})
}

func TestPatientRewriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewPatientRepository(dir)

	assigned := seedPatient()
	assigned.Doctor = "John Smith"
	unassigned := entity.NewPatient("Mike", "Jones", 37, "07555551234", "L2 2AB", "Kathmandu",
		[]string{"Headache", "Nausea"})

	require.NoError(t, repo.RewriteAll([]*entity.Patient{assigned, unassigned}))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Sara", loaded[0].FirstName)
	assert.Equal(t, "Smith", loaded[0].Surname)
	assert.Equal(t, 20, loaded[0].Age)
	assert.Equal(t, "07012345678", loaded[0].Mobile)
	assert.Equal(t, "B1 234", loaded[0].Postcode)
	assert.Equal(t, "Kathmandu", loaded[0].Address)
	assert.Equal(t, []string{"Fever", "Cough"}, loaded[0].Symptoms)
	assert.Equal(t, "John Smith", loaded[0].Doctor)

	assert.False(t, loaded[1].Assigned())
	assert.Equal(t, "", loaded[1].Doctor)
}

func TestPatientNoneSentinelOnlyOnDisk(t *testing.T) {
	dir := t.TempDir()
	repo := NewPatientRepository(dir)
	require.NoError(t, repo.RewriteAll([]*entity.Patient{seedPatient()}))

	raw, err := os.ReadFile(filepath.Join(dir, patientsFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|20|07012345678|B1 234|Kathmandu|Fever, Cough|None")

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "", loaded[0].Doctor)
}

// Only two-token names survive the full-name column: everything after the
// first space is read back as the surname.
func TestPatientRoundTripNameSplitting(t *testing.T) {
	dir := t.TempDir()
	repo := NewPatientRepository(dir)

	p := entity.NewPatient("Anna Maria", "Lopez", 41, "07000000000", "X1 1XX", "Leeds", []string{"Fatigue"})
	require.NoError(t, repo.RewriteAll([]*entity.Patient{p}))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Anna", loaded[0].FirstName)
	assert.Equal(t, "Maria Lopez", loaded[0].Surname)
	// The full name itself is preserved even though the split moved the
	// boundary.
	assert.Equal(t, p.FullName(), loaded[0].FullName())
}

func TestPatientLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, patientsFile)
	content := patientHeader + "\n" +
		"Sara Smith|20|07012345678|B1 234|Kathmandu|Fever|None\n" +
		"Too|Few|Fields\n" +
		"Bad Age|notanumber|m|p|a|s|None\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := NewPatientRepository(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Sara Smith", loaded[0].FullName())
}

func TestPatientLoadAbsentFileIsEmpty(t *testing.T) {
	loaded, err := NewPatientRepository(t.TempDir()).LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestDischargedAppendSelfHealsHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, dischargedFile)
	// Pre-existing data without a header must be kept, header prepended.
	require.NoError(t, os.WriteFile(path, []byte("Old Patient|50|m|p|a|s|None\n"), 0o644))

	repo := NewDischargedPatientRepository(dir)
	require.NoError(t, repo.Append(seedPatient()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := []string{dischargedHeader, "Old Patient|50|m|p|a|s|None", "Sara Smith|20|07012345678|B1 234|Kathmandu|Fever, Cough|None"}
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n", string(raw))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
