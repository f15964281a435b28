package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// Event subjects.
const (
	SubjectTaskCreated   = "todo.task.created"
	SubjectTaskCompleted = "todo.task.completed"
	SubjectTaskDeleted   = "todo.task.deleted"
)

// NATSPublisher publishes task lifecycle events over core NATS.
// Fire-and-forget: there is no durable stream, no consumer in this repo.
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

	logger.Info("NATS event publisher initialized", "url", url)
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) TaskCreated(ctx context.Context, event *ports.TaskEvent) error {
	return p.publish(ctx, SubjectTaskCreated, event)
}

func (p *NATSPublisher) TaskCompleted(ctx context.Context, event *ports.TaskEvent) error {
	return p.publish(ctx, SubjectTaskCompleted, event)
}

func (p *NATSPublisher) TaskDeleted(ctx context.Context, event *ports.TaskEvent) error {
	return p.publish(ctx, SubjectTaskDeleted, event)
}

func (p *NATSPublisher) publish(ctx context.Context, subject string, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Event publish failed", "subject", subject, "task_id", event.TaskID, "error", err)
		return err
	}

	logger.DebugContext(ctx, "Event published", "subject", subject, "task_id", event.TaskID)
	return nil
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

var _ ports.EventPublisher = (*NATSPublisher)(nil)
