package serviceimpl

import (
	"context"
	"testing"

	"todo-backend/domain/dto"
	"todo-backend/infrastructure/memory"
	"todo-backend/pkg/identity"
	"todo-backend/pkg/utils"
)

const authTestSecret = "auth-test-secret"

func TestRegisterIsDeterministicAndIdempotent(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewAuthService(store, authTestSecret, 60)
	ctx := context.Background()

	first, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "whatever",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if first.ID != identity.SubjectID("alice@example.com") {
		t.Errorf("ID must be derived from email, got %q", first.ID)
	}
	if first.Name != "Alice" || first.Email != "alice@example.com" {
		t.Errorf("unexpected profile: %+v", first)
	}

	// Registering again with the same email keeps the ID and overwrites
	// the profile
	second, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "different",
		Name:     "Alice Cooper",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-register changed the ID: %q -> %q", first.ID, second.ID)
	}

	stored, err := store.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Name != "Alice Cooper" {
		t.Errorf("expected overwritten name, got %q", stored.Name)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewAuthService(store, authTestSecret, 60)
	ctx := context.Background()

	token, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "bob@example.com",
		Password: "anything",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	subject, err := utils.ValidateToken(token, authTestSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if subject.ID != identity.SubjectID("bob@example.com") {
		t.Errorf("token subject %q does not match derived ID", subject.ID)
	}
	if subject.Email != "bob@example.com" {
		t.Errorf("token email %q", subject.Email)
	}

	// Token signed with one secret is rejected under another
	if _, err := utils.ValidateToken(token, "other-secret"); err == nil {
		t.Error("token accepted under wrong secret")
	}
}

func TestLoginSeedsDirectoryForUnseenEmail(t *testing.T) {
	store := memory.NewProfileStore()
	svc := NewAuthService(store, authTestSecret, 60)
	ctx := context.Background()

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "carol@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	profile, err := store.Get(ctx, identity.SubjectID("carol@example.com"))
	if err != nil {
		t.Fatalf("expected seeded profile: %v", err)
	}
	if profile.Name != "carol" {
		t.Errorf("seeded name should be the email local part, got %q", profile.Name)
	}

	// A registered name is not clobbered by a later login
	if _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "carol@example.com", Password: "pw", Name: "Carol D."}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "carol@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	profile, err = store.Get(ctx, identity.SubjectID("carol@example.com"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.Name != "Carol D." {
		t.Errorf("login overwrote a registered profile: %q", profile.Name)
	}
}
