package ports

import "context"

// TaskEvent is the payload published on task lifecycle changes. Plain struct,
// no messaging dependency.
type TaskEvent struct {
	TaskID    uint   `json:"task_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// EventPublisher pushes task lifecycle events to interested consumers.
// Publishing is fire-and-forget: failures are logged by implementations and
// never surface to the request path.
type EventPublisher interface {
	TaskCreated(ctx context.Context, event *TaskEvent) error
	TaskCompleted(ctx context.Context, event *TaskEvent) error
	TaskDeleted(ctx context.Context, event *TaskEvent) error
	Close() error
}
