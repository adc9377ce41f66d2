package repository

import (
	"os"
	"path/filepath"
	"testing"

	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/pkg/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoadBootstrapsDefault(t *testing.T) {
	dir := t.TempDir()
	admin, err := NewAdminRepository(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "123", admin.Password)
	assert.Equal(t, "B1 1AB", admin.Address)

	raw, err := os.ReadFile(filepath.Join(dir, adminFile))
	require.NoError(t, err)
	assert.Equal(t, "admin|"+secret.Encode("123")+"|B1 1AB\n", string(raw))
}

func TestAdminSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewAdminRepository(dir)

	require.NoError(t, repo.Save(&entity.Admin{Username: "root", Password: "s3cret", Address: "M1 2CD"}))
	admin, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
	assert.Equal(t, "s3cret", admin.Password)
	assert.Equal(t, "M1 2CD", admin.Address)
}

func TestAdminLoadMalformedFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, adminFile), []byte("justonefield\n"), 0o644))

	admin, err := NewAdminRepository(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}

func TestAdminLoadMissingAddressDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, adminFile),
		[]byte("root|"+secret.Encode("pw")+"\n"), 0o644))

	admin, err := NewAdminRepository(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
	assert.Equal(t, "B1 1AB", admin.Address)
}
