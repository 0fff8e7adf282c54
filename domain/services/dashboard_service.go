package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// DashboardService คำนวณ view ที่ derive จาก task list ของ user
type DashboardService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummary, error)
	Focus(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	Planner(ctx context.Context, userID uuid.UUID) ([]dto.DayPlan, error)
	Recent(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
}
