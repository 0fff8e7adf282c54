package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
}
