package events

import (
	"context"

	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// NoopPublisher drops events. Used when NATS is not configured and in tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) TaskCreated(ctx context.Context, event *ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task created (noop)", "task_id", event.TaskID)
	return nil
}

func (p *NoopPublisher) TaskCompleted(ctx context.Context, event *ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task completed (noop)", "task_id", event.TaskID)
	return nil
}

func (p *NoopPublisher) TaskDeleted(ctx context.Context, event *ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task deleted (noop)", "task_id", event.TaskID)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

var _ ports.EventPublisher = (*NoopPublisher)(nil)
