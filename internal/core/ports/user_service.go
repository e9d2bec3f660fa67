package ports

import (
	"context"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

type UserService interface {
	Me(ctx context.Context, caller domain.CallerIdentity) (*domain.User, error)
	List(ctx context.Context, caller domain.CallerIdentity) ([]*domain.User, error)
}
