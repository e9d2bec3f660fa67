package ports

import (
	"context"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

// UserRepository defines the credential store consumed by the authenticator
// and the identity resolver.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
