package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

func TestUserService_Me(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user_1", domain.RoleUser, true)
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Me(context.Background(), domain.CallerIdentity{ID: "user_1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.ID != "user_1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "user_1", domain.RoleUser, true)
	seedUser(repo, "admin_1", domain.RoleAdmin, true)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), domain.CallerIdentity{ID: "user_1", Role: domain.RoleUser}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	users, err := svc.List(context.Background(), domain.CallerIdentity{ID: "admin_1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
