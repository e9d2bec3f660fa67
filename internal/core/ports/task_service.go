package ports

import (
	"context"

	"github.com/theotechtrad/taskboard/internal/core/domain"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput applies only the fields that were provided: nil means
// "leave unchanged", mirroring a JSON body where the key was omitted.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

type ListTasksInput struct {
	Status string
}

type TaskService interface {
	Create(ctx context.Context, caller domain.CallerIdentity, in CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, caller domain.CallerIdentity, id string) (*domain.Task, error)
	List(ctx context.Context, caller domain.CallerIdentity, in ListTasksInput) ([]*domain.Task, error)
	Update(ctx context.Context, caller domain.CallerIdentity, id string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, caller domain.CallerIdentity, id string) error
}
