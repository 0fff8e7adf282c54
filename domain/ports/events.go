package ports

import (
	"context"
	"time"
)

const (
	TaskEventCreated = "created"
	TaskEventStatus  = "status"
	TaskEventUpdated = "updated"
	TaskEventDeleted = "deleted"
)

// TaskEvent ประกาศการเปลี่ยนแปลงใน task list ของ user
type TaskEvent struct {
	Type   string    `json:"type"`
	UserID string    `json:"userId"`
	TodoID int64     `json:"todoId"`
	At     time.Time `json:"at"`
}

// EventPublisherPort ส่ง task event ออกไปนอก process (best-effort)
// mutation ต้องไม่ fail เพราะ publish ไม่สำเร็จ
type EventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event TaskEvent) error
	Close()
}
