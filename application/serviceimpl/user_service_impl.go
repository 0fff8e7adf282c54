package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/pkg/logger"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	sessions  *redispkg.SessionStore // nil ได้ถ้าไม่ได้ตั้งค่า Redis
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, sessions *redispkg.SessionStore, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.userRepo.GetByUsername(ctx, req.Username)
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, services.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// ตอบเหมือนกันทุกกรณี ไม่บอกว่า username หรือ password ที่ผิด
		logger.WarnContext(ctx, "Login failed - username not found", "username", req.Username)
		return "", nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID, "username", req.Username)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.Save(ctx, user.ID, user.Username); err != nil {
			// session cache เป็น best-effort ไม่ block login
			logger.WarnContext(ctx, "Failed to cache session", "user_id", user.ID, "error", err)
		}
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID, "username", user.Username)

	return token, user, nil
}

func (s *UserServiceImpl) VerifyUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Username verification failed", "username", username)
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, username, newPassword string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Password reset for unknown username", "username", username)
			return services.ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return err
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update password", "user_id", user.ID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Password reset", "user_id", user.ID, "username", username)
	return nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Clear(ctx, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to clear session", "user_id", userID, "error", err)
		return err
	}
	logger.InfoContext(ctx, "User logged out", "user_id", userID)
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}

	user.Avatar = avatarURL
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update avatar", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Avatar updated", "user_id", userID)
	return user, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
