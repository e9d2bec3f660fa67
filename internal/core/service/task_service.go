package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/theotechtrad/taskboard/internal/core/auth"
	"github.com/theotechtrad/taskboard/internal/core/domain"
	"github.com/theotechtrad/taskboard/internal/core/ports"
)

// TaskService implements task CRUD gated by the authorization guard.
//
// Access order on single-task operations is existence first, then
// ownership: a non-owner gets 404 when the task is absent and 403 when it
// exists but belongs to someone else. This ordering is observable and kept
// for compatibility with the original behaviour.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) Create(ctx context.Context, caller domain.CallerIdentity, in ports.CreateTaskInput) (*domain.Task, error) {
	status := domain.TaskStatus(in.Status)
	if in.Status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		OwnerID:     caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("owner_id", caller.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, caller domain.CallerIdentity, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(caller, task.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// List returns the caller's tasks, or every task when the caller is an
// admin. The scoping happens in the repository filter, never client-side.
func (s *TaskService) List(ctx context.Context, caller domain.CallerIdentity, in ports.ListTasksInput) ([]*domain.Task, error) {
	if in.Status != "" && !domain.TaskStatus(in.Status).Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, ports.TaskFilter{
		OwnerID: auth.OwnedBy(caller),
		Status:  in.Status,
	})
}

func (s *TaskService) Update(ctx context.Context, caller domain.CallerIdentity, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanAccess(caller, task.OwnerID) {
		return nil, domain.ErrForbidden
	}
	if in.Status != nil && !domain.TaskStatus(*in.Status).Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, id, ports.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		s.log.Error().Err(err).Str("task_id", id).Msg("failed to update task")
		return nil, err
	}

	s.log.Info().Str("task_id", id).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, caller domain.CallerIdentity, id string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanAccess(caller, task.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("task_id", id).Msg("failed to delete task")
		return err
	}

	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}
