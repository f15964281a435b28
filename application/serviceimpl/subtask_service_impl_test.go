package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"todo-backend/domain/dto"
	"todo-backend/domain/repositories"
)

func TestSubtaskParentOwnershipCheck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Parent"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	sub, err := env.subtasks.CreateSubtask(ctx, ownerAlice, task.ID, &dto.CreateSubtaskRequest{Title: "child"})
	if err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	// Another owner hits the parent check on every operation
	if _, err := env.subtasks.ListSubtasks(ctx, ownerBob, task.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign list, got %v", err)
	}
	if _, err := env.subtasks.CreateSubtask(ctx, ownerBob, task.ID, &dto.CreateSubtaskRequest{Title: "nope"}); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign create, got %v", err)
	}
	if _, err := env.subtasks.UpdateSubtask(ctx, ownerBob, task.ID, sub.ID, &dto.UpdateSubtaskRequest{Title: strPtr("nope")}); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign update, got %v", err)
	}
	if err := env.subtasks.DeleteSubtask(ctx, ownerBob, task.ID, sub.ID); !errors.Is(err, repositories.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on foreign delete, got %v", err)
	}
}

func TestSubtaskScopedToParentTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "First"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	second, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Second"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	sub, err := env.subtasks.CreateSubtask(ctx, ownerAlice, first.ID, &dto.CreateSubtaskRequest{Title: "belongs to first"})
	if err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	// Addressing the subtask through the wrong parent is a miss even for
	// the rightful owner
	if _, err := env.subtasks.UpdateSubtask(ctx, ownerAlice, second.ID, sub.ID, &dto.UpdateSubtaskRequest{Title: strPtr("moved?")}); !errors.Is(err, repositories.ErrSubtaskNotFound) {
		t.Errorf("expected ErrSubtaskNotFound via wrong parent, got %v", err)
	}
	if err := env.subtasks.DeleteSubtask(ctx, ownerAlice, second.ID, sub.ID); !errors.Is(err, repositories.ErrSubtaskNotFound) {
		t.Errorf("expected ErrSubtaskNotFound via wrong parent, got %v", err)
	}

	listed, err := env.subtasks.ListSubtasks(ctx, ownerAlice, second.ID)
	if err != nil {
		t.Fatalf("ListSubtasks failed: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected no subtasks under second task, got %d", len(listed))
	}
}

func TestUpdateSubtaskMergePatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Parent"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	sub, err := env.subtasks.CreateSubtask(ctx, ownerAlice, task.ID, &dto.CreateSubtaskRequest{Title: "draft"})
	if err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}
	if sub.Completed {
		t.Error("new subtask must not be completed")
	}

	// Complete it without touching the title
	updated, err := env.subtasks.UpdateSubtask(ctx, ownerAlice, task.ID, sub.ID, &dto.UpdateSubtaskRequest{
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateSubtask failed: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed=true")
	}
	if updated.Title != "draft" {
		t.Errorf("title must be untouched, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(sub.UpdatedAt) && !updated.UpdatedAt.Equal(sub.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v -> %v", sub.UpdatedAt, updated.UpdatedAt)
	}

	// Rename without touching completion
	renamed, err := env.subtasks.UpdateSubtask(ctx, ownerAlice, task.ID, sub.ID, &dto.UpdateSubtaskRequest{
		Title: strPtr("final"),
	})
	if err != nil {
		t.Fatalf("UpdateSubtask failed: %v", err)
	}
	if renamed.Title != "final" || !renamed.Completed {
		t.Errorf("merge-patch result wrong: %+v", renamed)
	}
}

func TestDeleteSubtask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, ownerAlice, &dto.CreateTaskRequest{Title: "Parent"})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	sub, err := env.subtasks.CreateSubtask(ctx, ownerAlice, task.ID, &dto.CreateSubtaskRequest{Title: "child"})
	if err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	if err := env.subtasks.DeleteSubtask(ctx, ownerAlice, task.ID, sub.ID); err != nil {
		t.Fatalf("DeleteSubtask failed: %v", err)
	}

	if err := env.subtasks.DeleteSubtask(ctx, ownerAlice, task.ID, sub.ID); !errors.Is(err, repositories.ErrSubtaskNotFound) {
		t.Errorf("expected ErrSubtaskNotFound on second delete, got %v", err)
	}

	// Parent task is untouched
	if _, err := env.tasks.GetTask(ctx, ownerAlice, task.ID); err != nil {
		t.Errorf("parent task should survive subtask delete: %v", err)
	}
}
