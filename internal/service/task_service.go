package service

import (
	"context"
	"errors"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"

	"github.com/rs/zerolog/log"
)

type TaskService interface {
	Create(ctx context.Context, description, storeName string) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByStore(ctx context.Context, storeName string) ([]model.Task, error)
	Get(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	// Complete marks the task done by the given worker. Completing a task
	// that is already completed overwrites completed_by and completed_at.
	Complete(ctx context.Context, taskID, workerID string) (*model.Task, error)
}

type taskService struct {
	repo    repository.TaskRepository
	workers repository.WorkerRepository
	clock   Clock
}

func NewTaskService(repo repository.TaskRepository, workers repository.WorkerRepository, clock Clock) TaskService {
	return &taskService{repo: repo, workers: workers, clock: clock}
}

func (s *taskService) Create(ctx context.Context, description, storeName string) (*model.Task, error) {
	t := &model.Task{
		ID:          s.clock.NewID(),
		StoreName:   storeName,
		Description: description,
		Status:      model.TaskPending,
		CreatedAt:   model.FormatTimestamp(s.clock.Now()),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ListByStore(ctx context.Context, storeName string) ([]model.Task, error) {
	return s.repo.ListByStore(ctx, storeName)
}

func (s *taskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return mapTaskErr(s.repo.FindByID(ctx, id))
}

// Update overwrites only the fields that are supplied and non-empty.
func (s *taskService) Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	return mapTaskErr(s.repo.Update(ctx, id, func(t *model.Task) {
		if req.Description != nil && *req.Description != "" {
			t.Description = *req.Description
		}
		if req.StoreName != nil && *req.StoreName != "" {
			t.StoreName = *req.StoreName
		}
	}))
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func (s *taskService) Complete(ctx context.Context, taskID, workerID string) (*model.Task, error) {
	if _, err := s.Get(ctx, taskID); err != nil {
		return nil, err
	}
	worker, err := mapWorkerErr(s.workers.FindByID(ctx, workerID))
	if err != nil {
		return nil, err
	}

	completedAt := model.FormatTimestamp(s.clock.Now())
	t, err := mapTaskErr(s.repo.Update(ctx, taskID, func(t *model.Task) {
		if t.Status == model.TaskCompleted {
			log.Info().Str("task_id", t.ID).Str("previous_completed_by", t.CompletedBy).Msg("task re-completed")
		}
		t.Status = model.TaskCompleted
		t.CompletedBy = worker.FullName()
		t.CompletedAt = completedAt
	}))
	if err != nil {
		return nil, err
	}
	return t, nil
}

func mapTaskErr(t *model.Task, err error) (*model.Task, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
