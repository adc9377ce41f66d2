package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	FullName     string `json:"full_name,omitempty"`
}

type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Address  string `json:"address,omitempty"`
}

// UpdateSettingsRequest carries the optional credential changes for the
// logged-in admin or doctor. A password change requires the current password
// and a matching confirmation.
type UpdateSettingsRequest struct {
	NewUsername     string `json:"new_username,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"eqfield=NewPassword"`
	NewAddress      string `json:"new_address,omitempty"`
}
