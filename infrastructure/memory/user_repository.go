// Package memory เป็น storage stub สำหรับ dev และ test เท่านั้น
// ข้อมูลหายเมื่อ process ตาย ห้ามใช้เป็น persistence จริง
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*models.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = time.Now()

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, id uuid.UUID, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	clone.ID = id
	r.users[id] = &clone
	return nil
}

func (r *UserRepository) List(_ context.Context, offset, limit int) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		all = append(all, &clone)
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
