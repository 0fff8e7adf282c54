package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	// Login คืน ErrInvalidCredentials เสมอไม่ว่า username หรือ password ผิด
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	VerifyUsername(ctx context.Context, username string) (*models.User, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
	Logout(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
