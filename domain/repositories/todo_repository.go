package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// TodoRepository เก็บ list ของ todo แยกตาม userId (partition key)
// ทุก operation atomic ต่อ record ของ user เดียว ไม่มี cross-user transaction
type TodoRepository interface {
	// Create ต้อง append แบบ atomic ห้าม read-modify-write (กัน lost update ข้าม tab)
	// ถ้า id ชน ให้ bump จนกว่าจะ unique ภายใน list ของ user
	Create(ctx context.Context, todo *models.Todo) error

	// ListByUser คืน list เรียงตามลำดับ insert; slice ว่างถ้า user ยังไม่มี record
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)

	Get(ctx context.Context, userID uuid.UUID, todoID int64) (*models.Todo, error)

	// SetCompleted อัปเดต field เดียว; ไม่มี entry = no-op
	SetCompleted(ctx context.Context, userID uuid.UUID, todoID int64, completed bool) error

	// UpdateFields partial update ใน statement เดียว; ไม่มี entry = no-op
	UpdateFields(ctx context.Context, userID uuid.UUID, todoID int64, fields map[string]any) error

	// Delete ลบ entry; ไม่มี entry = no-op
	Delete(ctx context.Context, userID uuid.UUID, todoID int64) error
}
