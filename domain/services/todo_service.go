package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TodoService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error)
	// List คืน entries ที่ normalize แล้ว (priority/createdAt เติม default ครบ)
	List(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	// SetCompleted / UpdateFields / Delete คืน nil todo ถ้าไม่มี entry นั้น (no-op ถือว่าสำเร็จ)
	SetCompleted(ctx context.Context, userID uuid.UUID, todoID int64, completed bool) (*models.Todo, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, todoID int64, fields map[string]any) (*models.Todo, error)
	Delete(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error)
}
