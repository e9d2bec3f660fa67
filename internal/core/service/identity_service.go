package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/theotechtrad/taskboard/internal/core/auth"
	"github.com/theotechtrad/taskboard/internal/core/domain"
	"github.com/theotechtrad/taskboard/internal/core/ports"
)

// IdentityService resolves a bearer token into the caller's current
// identity. It re-fetches the user on every call instead of trusting the
// token's embedded role, so a role change or deactivation is effective
// immediately, not at token expiry. Read-only; invoked once per request.
type IdentityService struct {
	codec *auth.TokenCodec
	users ports.UserRepository
	log   zerolog.Logger
}

func NewIdentityService(codec *auth.TokenCodec, users ports.UserRepository, log zerolog.Logger) *IdentityService {
	return &IdentityService{codec: codec, users: users, log: log}
}

func (s *IdentityService) Resolve(ctx context.Context, token string) (domain.CallerIdentity, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		// Malformed, bad signature, and expired are deliberately collapsed
		// so callers cannot probe which one failed.
		s.log.Debug().Err(err).Msg("token verification failed")
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.CallerIdentity{}, domain.ErrUnauthenticated
		}
		return domain.CallerIdentity{}, err
	}
	if !user.IsActive {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	return domain.CallerIdentity{ID: user.ID, Role: user.Role}, nil
}
