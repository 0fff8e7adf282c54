package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/infrastructure/events"
	"taskboard/infrastructure/memory"
)

var dashNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestDashboardService() (*DashboardServiceImpl, services.TodoService) {
	todoSvc := NewTodoService(memory.NewTodoRepository(), events.NewNoopPublisher())
	return &DashboardServiceImpl{
		todoService: todoSvc,
		now:         func() time.Time { return dashNow },
	}, todoSvc
}

func TestDashboardSummary(t *testing.T) {
	svc, todoSvc := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{
		Task:     "overdue work",
		Category: "Work",
		Priority: models.PriorityHigh,
		DueDate:  strPtr("2026-03-08"),
	})
	require.NoError(t, err)

	_, err = todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{
		Task:      "finished chore",
		Category:  "Home",
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 50, summary.CompletionRate)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.NoDate)
	assert.Equal(t, 1, summary.Priorities.High)
	assert.Equal(t, 1, summary.Priorities.Medium)
	require.Len(t, summary.Categories, 2)
}

func TestDashboardSummaryEmptyList(t *testing.T) {
	svc, _ := newTestDashboardService()

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.CompletionRate)
	assert.Empty(t, summary.Categories)
}

func TestDashboardFocus(t *testing.T) {
	svc, todoSvc := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{
		Task:    "overdue",
		DueDate: strPtr("2026-03-09"),
	})
	require.NoError(t, err)

	_, err = todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{
		Task:      "done",
		Completed: boolPtr(true),
	})
	require.NoError(t, err)

	focus, err := svc.Focus(ctx, userID)
	require.NoError(t, err)

	require.Len(t, focus, 1)
	assert.Equal(t, "overdue", focus[0].Task)
}

func TestDashboardPlanner(t *testing.T) {
	svc, todoSvc := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()

	_, err := todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{
		Task:    "midweek",
		DueDate: strPtr("2026-03-12"),
	})
	require.NoError(t, err)

	plan, err := svc.Planner(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plan, 7)

	assert.Equal(t, "2026-03-10", plan[0].Date)
	assert.Empty(t, plan[0].Todos)
	assert.NotNil(t, plan[0].Todos) // วันว่างตอบ [] ไม่ใช่ null

	require.Len(t, plan[2].Todos, 1)
	assert.Equal(t, "midweek", plan[2].Todos[0].Task)
}

func TestDashboardRecent(t *testing.T) {
	svc, todoSvc := newTestDashboardService()
	ctx := context.Background()
	userID := uuid.New()

	first, err := todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{Task: "first"})
	require.NoError(t, err)
	second, err := todoSvc.Create(ctx, userID, &dto.CreateTodoRequest{Task: "second"})
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, userID)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// ใหม่ก่อนเก่า
	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, first.ID, recent[1].ID)
}
