package ports

import (
	"context"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// IdentityResolver turns an inbound bearer token into the caller's current
// identity, re-fetching the role from the credential store so a demotion or
// deactivation takes effect on the very next request.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.CallerIdentity, error)
}
