package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/insights"
)

type DashboardServiceImpl struct {
	todoService services.TodoService
	now         func() time.Time
}

func NewDashboardService(todoService services.TodoService) services.DashboardService {
	return &DashboardServiceImpl{
		todoService: todoService,
		now:         time.Now,
	}
}

func (s *DashboardServiceImpl) Summary(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummary, error) {
	todos, err := s.todoService.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}

	due := insights.DueCounts(todos, now)
	priorities := insights.PriorityBreakdown(todos)

	categories := []dto.CategoryCount{}
	for _, c := range insights.CategoryBreakdown(todos) {
		categories = append(categories, dto.CategoryCount{Key: c.Key, Label: c.Label, Count: c.Count})
	}

	return &dto.DashboardSummary{
		Total:          len(todos),
		Completed:      completed,
		CompletionRate: insights.CompletionRate(todos),
		Overdue:        due.Overdue,
		DueToday:       due.Today,
		Upcoming:       due.Upcoming,
		NoDate:         due.NoDate,
		Priorities: dto.PriorityBreakdown{
			High:   priorities.High,
			Medium: priorities.Medium,
			Low:    priorities.Low,
		},
		Categories: categories,
	}, nil
}

func (s *DashboardServiceImpl) Focus(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	todos, err := s.todoService.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insights.FocusQueue(todos, s.now(), insights.FocusQueueSize), nil
}

func (s *DashboardServiceImpl) Planner(ctx context.Context, userID uuid.UUID) ([]dto.DayPlan, error) {
	todos, err := s.todoService.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := insights.WeeklyPlan(todos, s.now())
	days := make([]dto.DayPlan, len(plan))
	for i, day := range plan {
		todos := day.Todos
		if todos == nil {
			todos = []models.Todo{}
		}
		days[i] = dto.DayPlan{
			Date:  day.Date.Format("2006-01-02"),
			Todos: todos,
		}
	}
	return days, nil
}

func (s *DashboardServiceImpl) Recent(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	todos, err := s.todoService.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return insights.RecentActivity(todos, insights.RecentActivitySize), nil
}
