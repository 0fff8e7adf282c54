package events

import (
	"context"

	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

// NoopPublisher ใช้เมื่อไม่ได้ตั้งค่า NATS (dev/test)
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task event (noop)",
		"type", event.Type,
		"user_id", event.UserID,
		"todo_id", event.TodoID,
	)
	return nil
}

func (p *NoopPublisher) Close() {}

var _ ports.EventPublisherPort = (*NoopPublisher)(nil)
