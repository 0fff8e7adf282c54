package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TodoServiceImpl struct {
	todoRepo repositories.TodoRepository
	events   ports.EventPublisherPort
}

func NewTodoService(todoRepo repositories.TodoRepository, events ports.EventPublisherPort) services.TodoService {
	return &TodoServiceImpl{
		todoRepo: todoRepo,
		events:   events,
	}
}

func (s *TodoServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return nil, services.ErrEmptyTask
	}

	now := time.Now().UnixMilli()

	todo := &models.Todo{
		UserID:    userID,
		ID:        now, // timestamp id: unique ภายใน list ของ user (repo bump ให้ถ้าชน)
		Task:      task,
		Category:  req.Category,
		Priority:  req.Priority,
		Notes:     req.Notes,
		CreatedAt: now,
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due := *req.DueDate
		todo.DueDate = &due
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to create todo", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Todo created", "user_id", userID, "todo_id", todo.ID)
	s.publish(ctx, ports.TaskEventCreated, userID, todo.ID)

	return todo, nil
}

func (s *TodoServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list todos", "user_id", userID, "error", err)
		return nil, err
	}

	// จุดเดียวที่เติม default ให้ record เก่า ทุก consumer เห็น shape เต็มเสมอ
	for i := range todos {
		todos[i].Normalize()
	}
	return todos, nil
}

func (s *TodoServiceImpl) SetCompleted(ctx context.Context, userID uuid.UUID, todoID int64, completed bool) (*models.Todo, error) {
	if err := s.todoRepo.SetCompleted(ctx, userID, todoID, completed); err != nil {
		logger.ErrorContext(ctx, "Failed to update todo status", "user_id", userID, "todo_id", todoID, "error", err)
		return nil, err
	}

	todo, err := s.getUpdated(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		// ไม่มี entry นี้ = no-op ถือว่าสำเร็จ
		logger.InfoContext(ctx, "Status update for missing todo", "user_id", userID, "todo_id", todoID)
		return nil, nil
	}

	logger.InfoContext(ctx, "Todo status updated", "user_id", userID, "todo_id", todoID, "completed", completed)
	s.publish(ctx, ports.TaskEventStatus, userID, todoID)

	return todo, nil
}

func (s *TodoServiceImpl) UpdateFields(ctx context.Context, userID uuid.UUID, todoID int64, fields map[string]any) (*models.Todo, error) {
	if len(fields) == 0 {
		return nil, services.ErrEmptyUpdate
	}

	if err := s.todoRepo.UpdateFields(ctx, userID, todoID, fields); err != nil {
		logger.ErrorContext(ctx, "Failed to update todo", "user_id", userID, "todo_id", todoID, "error", err)
		return nil, err
	}

	todo, err := s.getUpdated(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		logger.InfoContext(ctx, "Update for missing todo", "user_id", userID, "todo_id", todoID)
		return nil, nil
	}

	logger.InfoContext(ctx, "Todo updated", "user_id", userID, "todo_id", todoID)
	s.publish(ctx, ports.TaskEventUpdated, userID, todoID)

	return todo, nil
}

func (s *TodoServiceImpl) Delete(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	todo, err := s.getUpdated(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	if err := s.todoRepo.Delete(ctx, userID, todoID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete todo", "user_id", userID, "todo_id", todoID, "error", err)
		return nil, err
	}

	if todo == nil {
		logger.InfoContext(ctx, "Delete for missing todo", "user_id", userID, "todo_id", todoID)
		return nil, nil
	}

	logger.InfoContext(ctx, "Todo deleted", "user_id", userID, "todo_id", todoID)
	s.publish(ctx, ports.TaskEventDeleted, userID, todoID)

	return todo, nil
}

// getUpdated อ่าน entry หลัง mutation; ไม่เจอ = nil ไม่ใช่ error
func (s *TodoServiceImpl) getUpdated(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	todo, err := s.todoRepo.Get(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	todo.Normalize()
	return todo, nil
}

// publish best-effort: mutation สำเร็จไปแล้ว แค่ log ถ้าส่ง event ไม่ได้
func (s *TodoServiceImpl) publish(ctx context.Context, eventType string, userID uuid.UUID, todoID int64) {
	event := ports.TaskEvent{
		Type:   eventType,
		UserID: userID.String(),
		TodoID: todoID,
		At:     time.Now(),
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Task event publish failed", "type", eventType, "todo_id", todoID, "error", err)
	}
}
