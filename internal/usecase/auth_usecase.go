package usecase

import (
	"errors"
	"fmt"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/service"
	"hospital-management-core/internal/session"
	"hospital-management-core/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthUsecase interface {
	// Login checks the admin account first, then every doctor, and issues a
	// token pair on a plaintext match.
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(tokenID string)
	CurrentUser(username, role string) (*dto.MeResponse, error)

	// UpdateAdminSettings / UpdateDoctorSettings change credentials (and, for
	// the admin, the address) and persist immediately.
	UpdateAdminSettings(req *dto.UpdateSettingsRequest) (*dto.MeResponse, error)
	UpdateDoctorSettings(username string, req *dto.UpdateSettingsRequest) (*dto.MeResponse, error)
}

type authUsecase struct {
	state      *session.Session
	log        *logrus.Logger
	adminRepo  repository.AdminRepository
	doctorRepo repository.DoctorRepository
	jwtService *jwt.JWTService
	tokens     *service.TokenRegistry
}

func NewAuthUsecase(
	state *session.Session,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	doctorRepo repository.DoctorRepository,
	jwtService *jwt.JWTService,
	tokens *service.TokenRegistry,
) AuthUsecase {
	return &authUsecase{
		state:      state,
		log:        log,
		adminRepo:  adminRepo,
		doctorRepo: doctorRepo,
		jwtService: jwtService,
		tokens:     tokens,
	}
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	role := ""
	fullName := ""
	if u.state.Admin.CredentialsMatch(req.Username, req.Password) {
		role = jwt.RoleAdmin
	} else if doctor := u.state.DoctorByUsername(req.Username); doctor != nil && doctor.CredentialsMatch(req.Username, req.Password) {
		role = jwt.RoleDoctor
		fullName = doctor.FullName()
	}
	if role == "" {
		u.log.Warnf("Failed login attempt for username %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(req.Username, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, _, err := u.jwtService.GenerateRefreshToken(req.Username, role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	u.tokens.Register(tokenID, u.jwtService.GetAccessExpiry())

	u.log.Infof("%s %q logged in", role, req.Username)
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
		FullName:     fullName,
	}, nil
}

func (u *authUsecase) Logout(tokenID string) {
	u.tokens.Revoke(tokenID)
}

func (u *authUsecase) CurrentUser(username, role string) (*dto.MeResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	if role == jwt.RoleAdmin {
		return &dto.MeResponse{
			Username: u.state.Admin.Username,
			Role:     role,
			Address:  u.state.Admin.Address,
		}, nil
	}
	doctor := u.state.DoctorByUsername(username)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return &dto.MeResponse{
		Username: doctor.Username,
		Role:     role,
		FullName: doctor.FullName(),
	}, nil
}

func (u *authUsecase) UpdateAdminSettings(req *dto.UpdateSettingsRequest) (*dto.MeResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	admin := u.state.Admin
	if req.NewUsername != "" {
		admin.Username = req.NewUsername
	}
	if req.NewPassword != "" {
		if req.CurrentPassword != admin.Password {
			return nil, ErrWrongPassword
		}
		admin.Password = req.NewPassword
	}
	if req.NewAddress != "" {
		admin.Address = req.NewAddress
	}

	if err := u.adminRepo.Save(admin); err != nil {
		u.log.Errorf("Failed to persist admin credentials: %+v", err)
		return nil, fmt.Errorf("persist admin: %w", err)
	}

	u.log.Info("Admin settings updated")
	return &dto.MeResponse{Username: admin.Username, Role: jwt.RoleAdmin, Address: admin.Address}, nil
}

func (u *authUsecase) UpdateDoctorSettings(username string, req *dto.UpdateSettingsRequest) (*dto.MeResponse, error) {
	u.state.Lock()
	defer u.state.Unlock()

	doctor := u.state.DoctorByUsername(username)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.NewUsername != "" {
		doctor.Username = req.NewUsername
	}
	if req.NewPassword != "" {
		if req.CurrentPassword != doctor.Password {
			return nil, ErrWrongPassword
		}
		doctor.Password = req.NewPassword
	}

	if err := u.doctorRepo.SaveCredentials(doctor); err != nil {
		u.log.Errorf("Failed to persist credentials for Dr. %s: %+v", doctor.FullName(), err)
		return nil, fmt.Errorf("persist doctor: %w", err)
	}

	u.log.Infof("Settings updated for Dr. %s", doctor.FullName())
	return &dto.MeResponse{Username: doctor.Username, Role: jwt.RoleDoctor, FullName: doctor.FullName()}, nil
}
