package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wildwall/wall-api/internal/auth"
	"github.com/wildwall/wall-api/internal/core/domain"
)

func TestUserService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.RoleCode != domain.RoleWilder {
		t.Fatalf("new accounts must be wilders, got %s", user.RoleCode)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("password must be hashed")
	}
	if !auth.CheckPassword("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "carol", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(&domain.User{Username: "alice", RoleCode: domain.RoleAdmin})
	repo.seed(&domain.User{Username: "bob", RoleCode: domain.RoleWilder})

	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.Role != "admin" && u.Role != "wilder" {
			t.Fatalf("summaries must carry role display names, got %q", u.Role)
		}
	}
}

func TestUserService_Get(t *testing.T) {
	repo := newStubUserRepo()
	alice := repo.seed(&domain.User{Username: "alice", RoleCode: domain.RoleWilder})
	bob := repo.seed(&domain.User{Username: "bob", RoleCode: domain.RoleWilder})

	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	self := domain.Identity{UserID: alice.ID, RoleCode: domain.RoleWilder}
	if _, err := svc.Get(ctx, self, alice.ID); err != nil {
		t.Fatalf("self lookup failed: %v", err)
	}

	if _, err := svc.Get(ctx, self, bob.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign lookup, got %v", err)
	}

	admin := domain.Identity{UserID: 99, RoleCode: domain.RoleAdmin}
	if _, err := svc.Get(ctx, admin, bob.ID); err != nil {
		t.Fatalf("admin lookup failed: %v", err)
	}

	// Existence resolves before policy: a 404 never turns into a 403.
	if _, err := svc.Get(ctx, self, 12345); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	bob := repo.seed(&domain.User{Username: "bob", RoleCode: domain.RoleWilder})

	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	if err := svc.UpdateRole(ctx, bob.ID, "delegate"); err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	updated, _ := repo.FindByID(ctx, bob.ID)
	if updated.RoleCode != domain.RoleDelegate {
		t.Fatalf("role not updated: %s", updated.RoleCode)
	}

	if err := svc.UpdateRole(ctx, bob.ID, "overlord"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	if err := svc.UpdateRole(ctx, 12345, "admin"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	bob := repo.seed(&domain.User{Username: "bob", RoleCode: domain.RoleWilder})

	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Delete(ctx, bob.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, bob.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}

	if err := svc.Delete(ctx, bob.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deleting a missing user must be a clean not-found, got %v", err)
	}
}
