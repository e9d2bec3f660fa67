package ports

import (
	"context"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

// TaskFilter narrows a List call. Empty fields mean "no filter"; the task
// service sets OwnerID from the authorization guard so non-admin callers
// can never see tasks they do not own.
type TaskFilter struct {
	OwnerID string
	Status  string
}

// TaskPatch carries a partial update. Nil fields are left untouched;
// owner_id is deliberately absent, ownership is set once at creation.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
