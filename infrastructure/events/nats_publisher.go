package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

const taskEventSubject = "taskboard.tasks.events"

// NATSPublisher ส่ง task event ไปที่ NATS subject เดียว
// consumer ฝั่งอื่น (activity feed, notifications) subscribe เอาเอง
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS event publisher initialized", "url", url, "subject", taskEventSubject)

	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) PublishTaskEvent(ctx context.Context, event ports.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(taskEventSubject, payload); err != nil {
		return err
	}
	logger.DebugContext(ctx, "Task event published",
		"type", event.Type,
		"user_id", event.UserID,
		"todo_id", event.TodoID,
	)
	return nil
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		logger.Warn("NATS drain failed", "error", err)
	}
}

var _ ports.EventPublisherPort = (*NATSPublisher)(nil)
