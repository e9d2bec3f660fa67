package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/theotechtrad/taskboard/internal/core/auth"
	"github.com/theotechtrad/taskboard/internal/core/domain"
	"github.com/theotechtrad/taskboard/internal/core/ports"
)

// UserService exposes account lookups: the caller's own profile, and an
// admin-only listing of every account.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Me(ctx context.Context, caller domain.CallerIdentity) (*domain.User, error) {
	return s.users.FindByID(ctx, caller.ID)
}

func (s *UserService) List(ctx context.Context, caller domain.CallerIdentity) ([]*domain.User, error) {
	if !auth.RequireAdmin(caller) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}
