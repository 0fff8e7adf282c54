package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type VerifyUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=50"`
	NewPassword string `json:"newPassword" validate:"required,min=1,max=72"`
}

type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type RegisterResponse struct {
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

type VerifyUsernameResponse struct {
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
