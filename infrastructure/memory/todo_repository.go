package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type TodoRepository struct {
	mu    sync.RWMutex
	todos map[uuid.UUID][]models.Todo // userID -> list เรียงตาม insert
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{
		todos: make(map[uuid.UUID][]models.Todo),
	}
}

func (r *TodoRepository) Create(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.todos[todo.UserID]
	for hasID(list, todo.ID) {
		todo.ID++
	}
	r.todos[todo.UserID] = append(list, *todo)
	return nil
}

func (r *TodoRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Todo(nil), r.todos[userID]...), nil
}

func (r *TodoRepository) Get(_ context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.todos[userID] {
		if t.ID == todoID {
			clone := t
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *TodoRepository) SetCompleted(_ context.Context, userID uuid.UUID, todoID int64, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.todos[userID]
	for i := range list {
		if list[i].ID == todoID {
			list[i].Completed = completed
			break
		}
	}
	return nil
}

func (r *TodoRepository) UpdateFields(_ context.Context, userID uuid.UUID, todoID int64, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.todos[userID]
	for i := range list {
		if list[i].ID != todoID {
			continue
		}
		applyFields(&list[i], fields)
		break
	}
	return nil
}

func (r *TodoRepository) Delete(_ context.Context, userID uuid.UUID, todoID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.todos[userID]
	filtered := list[:0]
	for _, t := range list {
		if t.ID != todoID {
			filtered = append(filtered, t)
		}
	}
	r.todos[userID] = filtered
	return nil
}

func hasID(list []models.Todo, id int64) bool {
	for _, t := range list {
		if t.ID == id {
			return true
		}
	}
	return false
}

// applyFields ใช้ column name ชุดเดียวกับ GORM impl
func applyFields(todo *models.Todo, fields map[string]any) {
	if v, ok := fields["task"].(string); ok {
		todo.Task = v
	}
	if v, ok := fields["category"].(string); ok {
		todo.Category = v
	}
	if v, ok := fields["priority"].(string); ok {
		todo.Priority = v
	}
	if v, ok := fields["due_date"].(string); ok {
		due := v
		todo.DueDate = &due
	}
	if v, ok := fields["notes"].(string); ok {
		todo.Notes = v
	}
	if v, ok := fields["completed"].(bool); ok {
		todo.Completed = v
	}
}
