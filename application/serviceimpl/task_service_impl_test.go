package serviceimpl

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"todo-backend/domain/dto"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/infrastructure/events"
	"todo-backend/infrastructure/postgres"
	"todo-backend/pkg/config"
)

const (
	ownerAlice = "mock-alice-0123456789abcdef"
	ownerBob   = "mock-bob-fedcba9876543210"
)

type testEnv struct {
	taskRepo    repositories.TaskRepository
	subtaskRepo repositories.SubtaskRepository
	tasks       services.TaskService
	subtasks    services.SubtaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := postgres.NewDatabase(config.DatabaseConfig{
		Driver:   "sqlite",
		FilePath: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	taskRepo := postgres.NewTaskRepository(db)
	subtaskRepo := postgres.NewSubtaskRepository(db)

	return &testEnv{
		taskRepo:    taskRepo,
		subtaskRepo: subtaskRepo,
		tasks:       NewTaskService(taskRepo, events.NewNoopPublisher()),
		subtasks:    NewSubtaskService(taskRepo, subtaskRepo),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTaskDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.ID == 0 {
		t.Error("expected assigned ID")
	}
	if task.UserID != ownerAlice {
		t.Errorf("expected owner %q, got %q", ownerAlice, task.UserID)
	}
	if task.Completed {
		t.Error("new task must not be completed")
	}
	if task.Priority != "medium" {
		t.Errorf("expected default priority medium, got %q", task.Priority)
	}
	if task.DueDate != nil {
		t.Errorf("expected nil due date, got %v", task.DueDate)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("expected equal timestamps on create, got %v / %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestTaskOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Alice's task"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Another owner sees not-found, never someone else's task
	if _, err := env.tasks.GetTask(ctx, ownerBob, task.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}
	if _, err := env.tasks.UpdateTask(ctx, ownerBob, task.ID, &dto.UpdateTaskRequest{Title: strPtr("stolen")}); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign update, got %v", err)
	}
	if _, err := env.tasks.ToggleComplete(ctx, ownerBob, task.ID, true); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign toggle, got %v", err)
	}
	if err := env.tasks.DeleteTask(ctx, ownerBob, task.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign delete, got %v", err)
	}

	// Listings never cross owners
	bobTasks, err := env.tasks.ListTasks(ctx, ownerBob)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(bobTasks) != 0 {
		t.Errorf("expected empty list for other owner, got %d tasks", len(bobTasks))
	}

	// The rightful owner still has it, untouched
	got, err := env.tasks.GetTask(ctx, ownerAlice, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "Alice's task" || got.Completed {
		t.Errorf("task was modified by a foreign owner: %+v", got)
	}
}

func TestUpdateTaskMergePatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{
		Title:       "Original",
		Description: "Some notes",
		Priority:    "high",
		Category:    "work",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Only the title is present in the patch
	updated, err := env.tasks.UpdateTask(ctx, ownerAlice, task.ID, &dto.UpdateTaskRequest{
		Title: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("expected renamed title, got %q", updated.Title)
	}
	if updated.Description != "Some notes" || updated.Priority != "high" || updated.Category != "work" {
		t.Errorf("omitted fields were touched: %+v", updated)
	}

	// An explicit empty string clears a clearable field
	cleared, err := env.tasks.UpdateTask(ctx, ownerAlice, task.ID, &dto.UpdateTaskRequest{
		Description: strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if cleared.Description != "" {
		t.Errorf("expected cleared description, got %q", cleared.Description)
	}

	// The clear survives a round-trip through the database
	got, err := env.tasks.GetTask(ctx, ownerAlice, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Description != "" || got.Title != "Renamed" {
		t.Errorf("stored task does not match patch result: %+v", got)
	}
}

func TestToggleCompleteDoesNotTouchUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Toggle me"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	created := task.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	toggled, err := env.tasks.ToggleComplete(ctx, ownerAlice, task.ID, true)
	if err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected completed=true after toggle")
	}
	if !toggled.UpdatedAt.Equal(created) {
		t.Errorf("toggle must not advance updated_at: had %v, got %v", created, toggled.UpdatedAt)
	}

	// Toggling back off also leaves the timestamp alone
	toggled, err = env.tasks.ToggleComplete(ctx, ownerAlice, task.ID, false)
	if err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	if toggled.Completed {
		t.Error("expected completed=false after toggle")
	}
	if !toggled.UpdatedAt.Equal(created) {
		t.Errorf("toggle must not advance updated_at: had %v, got %v", created, toggled.UpdatedAt)
	}

	// A content update does advance it
	updated, err := env.tasks.UpdateTask(ctx, ownerAlice, task.ID, &dto.UpdateTaskRequest{Title: strPtr("Edited")})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !updated.UpdatedAt.After(created) {
		t.Errorf("content update must advance updated_at: had %v, got %v", created, updated.UpdatedAt)
	}
}

func TestDeleteTaskCascadesSubtasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Parent"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	for _, title := range []string{"step one", "step two"} {
		if _, err := env.subtasks.CreateSubtask(ctx, ownerAlice, task.ID, &dto.CreateSubtaskRequest{Title: title}); err != nil {
			t.Fatalf("CreateSubtask failed: %v", err)
		}
	}

	if err := env.tasks.DeleteTask(ctx, ownerAlice, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	if _, err := env.tasks.GetTask(ctx, ownerAlice, task.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	// No orphans left behind
	orphans, err := env.subtaskRepo.ListByTaskID(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListByTaskID failed: %v", err)
	}
	if len(orphans) != 0 {
		t.Errorf("expected cascade to remove subtasks, found %d", len(orphans))
	}
}
