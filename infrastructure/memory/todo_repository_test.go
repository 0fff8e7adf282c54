package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

func TestCreateBumpsCollidingID(t *testing.T) {
	repo := NewTodoRepository()
	ctx := context.Background()
	userID := uuid.New()

	first := &models.Todo{UserID: userID, ID: 1000, Task: "first"}
	second := &models.Todo{UserID: userID, ID: 1000, Task: "second"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// id ชนกันต้อง bump ไม่ทับของเดิม
	assert.Equal(t, int64(1000), first.ID)
	assert.Equal(t, int64(1001), second.ID)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCollidingIDAcrossUsersIsFine(t *testing.T) {
	repo := NewTodoRepository()
	ctx := context.Background()

	a := &models.Todo{UserID: uuid.New(), ID: 1000, Task: "a"}
	b := &models.Todo{UserID: uuid.New(), ID: 1000, Task: "b"}

	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	// id unique ต่อ user ไม่ใช่ global
	assert.Equal(t, int64(1000), a.ID)
	assert.Equal(t, int64(1000), b.ID)
}

func TestGetReturnsClone(t *testing.T) {
	repo := NewTodoRepository()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &models.Todo{UserID: userID, ID: 1, Task: "original"}))

	got, err := repo.Get(ctx, userID, 1)
	require.NoError(t, err)

	got.Task = "mutated copy"

	again, err := repo.Get(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Task)
}

func TestGetMissing(t *testing.T) {
	repo := NewTodoRepository()

	_, err := repo.Get(context.Background(), uuid.New(), 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateFieldsAndDelete(t *testing.T) {
	repo := NewTodoRepository()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &models.Todo{UserID: userID, ID: 1, Task: "before"}))

	require.NoError(t, repo.UpdateFields(ctx, userID, 1, map[string]any{
		"task":      "after",
		"completed": true,
	}))

	got, err := repo.Get(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Task)
	assert.True(t, got.Completed)

	require.NoError(t, repo.Delete(ctx, userID, 1))
	_, err = repo.Get(ctx, userID, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// ลบ id ที่ไม่มีก็ไม่ error
	assert.NoError(t, repo.Delete(ctx, userID, 999))
}
