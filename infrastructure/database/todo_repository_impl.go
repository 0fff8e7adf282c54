package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type TodoRepositoryImpl struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

// Create insert แถวเดียว ไม่อ่าน list ก่อน (atomic append)
// composite key (user_id, id) กันการชนให้ฟรี ถ้าชนก็ bump id แล้วลองใหม่
func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *models.Todo) error {
	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := r.db.WithContext(ctx).Create(todo).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			todo.ID++
			continue
		}
		return err
	}
	return fmt.Errorf("could not allocate todo id for user %s", todo.UserID)
}

func (r *TodoRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&todos).Error
	return todos, err
}

func (r *TodoRepositoryImpl) Get(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, todoID).First(&todo).Error
	if err != nil {
		return nil, translate(err)
	}
	return &todo, nil
}

func (r *TodoRepositoryImpl) SetCompleted(ctx context.Context, userID uuid.UUID, todoID int64, completed bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("user_id = ? AND id = ?", userID, todoID).
		Update("completed", completed).Error
}

func (r *TodoRepositoryImpl) UpdateFields(ctx context.Context, userID uuid.UUID, todoID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	// statement เดียว จะ apply ครบทุก field หรือไม่ apply เลย
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("user_id = ? AND id = ?", userID, todoID).
		Updates(fields).Error
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID, todoID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, todoID).
		Delete(&models.Todo{}).Error
}
