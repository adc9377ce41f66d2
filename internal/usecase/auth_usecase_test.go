package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-management-core/config"
	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/service"
	"hospital-management-core/pkg/jwt"
	"hospital-management-core/pkg/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) auth(t *testing.T) (AuthUsecase, *jwt.JWTService, *service.TokenRegistry) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokens := service.NewTokenRegistry()
	uc := NewAuthUsecase(e.state, e.log, e.adminRepo, e.doctorRepo, jwtService, tokens)
	return uc, jwtService, tokens
}

func TestLoginAsDefaultAdmin(t *testing.T) {
	env := newTestEnv(t)
	uc, jwtService, tokens := env.auth(t)

	res, err := uc.Login(&dto.LoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, res.Role)
	assert.Empty(t, res.FullName)

	claims, err := jwtService.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.True(t, tokens.IsActive(claims.TokenID))
}

func TestLoginAsBootstrappedDoctor(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	res, err := uc.Login(&dto.LoginRequest{Username: "jane", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleDoctor, res.Role)
	assert.Equal(t, "Jane Smith", res.FullName)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	_, err := uc.Login(&dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(&dto.LoginRequest{Username: "ghost", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	uc, jwtService, tokens := env.auth(t)

	res, err := uc.Login(&dto.LoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(res.AccessToken)
	require.NoError(t, err)

	uc.Logout(claims.TokenID)
	assert.False(t, tokens.IsActive(claims.TokenID))
}

func TestUpdateAdminSettingsPersistsEncodedPassword(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	res, err := uc.UpdateAdminSettings(&dto.UpdateSettingsRequest{
		CurrentPassword: "123",
		NewPassword:     "stronger",
		ConfirmPassword: "stronger",
		NewAddress:      "X1 9ZZ",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Username)
	assert.Equal(t, "X1 9ZZ", res.Address)

	raw, err := os.ReadFile(filepath.Join(env.dir, "admin.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "admin|"+secret.Encode("stronger")+"|X1 9ZZ")

	_, err = uc.Login(&dto.LoginRequest{Username: "admin", Password: "stronger"})
	assert.NoError(t, err)
}

func TestUpdateAdminSettingsRejectsWrongCurrentPassword(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	_, err := uc.UpdateAdminSettings(&dto.UpdateSettingsRequest{
		CurrentPassword: "nope",
		NewPassword:     "stronger",
		ConfirmPassword: "stronger",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestUpdateDoctorSettingsKeepsSingleCredentialRow(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	res, err := uc.UpdateDoctorSettings("john", &dto.UpdateSettingsRequest{
		NewUsername:     "johnny",
		CurrentPassword: "123",
		NewPassword:     "456",
		ConfirmPassword: "456",
	})
	require.NoError(t, err)
	assert.Equal(t, "johnny", res.Username)

	raw, err := os.ReadFile(filepath.Join(env.dir, "doctor.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "John Smith|Internal Med.|johnny|"+secret.Encode("456"))
	assert.NotContains(t, string(raw), "|john|")

	_, err = uc.Login(&dto.LoginRequest{Username: "johnny", Password: "456"})
	assert.NoError(t, err)
	_, err = uc.Login(&dto.LoginRequest{Username: "john", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	uc, _, _ := env.auth(t)

	me, err := uc.CurrentUser("admin", jwt.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, "B1 1AB", me.Address)

	me, err = uc.CurrentUser("jon", jwt.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, "Jon Carlos", me.FullName)

	_, err = uc.CurrentUser("ghost", jwt.RoleDoctor)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
