package service

import (
	"context"
	"errors"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"

	"github.com/rs/zerolog/log"
)

type PenaltyService interface {
	Add(ctx context.Context, req dto.CreatePenaltyRequest) (*model.Penalty, error)
	List(ctx context.Context) ([]model.Penalty, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.Penalty, error)
	Delete(ctx context.Context, id string) error
}

type penaltyService struct {
	repo    repository.PenaltyRepository
	workers repository.WorkerRepository
	clock   Clock
}

func NewPenaltyService(repo repository.PenaltyRepository, workers repository.WorkerRepository, clock Clock) PenaltyService {
	return &penaltyService{repo: repo, workers: workers, clock: clock}
}

func (s *penaltyService) Add(ctx context.Context, req dto.CreatePenaltyRequest) (*model.Penalty, error) {
	if err := requireWorker(ctx, s.workers, req.WorkerID); err != nil {
		return nil, err
	}
	at, err := ledgerTime(req.Time, s.clock)
	if err != nil {
		return nil, err
	}
	p := &model.Penalty{
		ID:          s.clock.NewID(),
		WorkerID:    req.WorkerID,
		Description: req.Description,
		Amount:      req.Amount,
		Time:        at,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Str("worker_id", p.WorkerID).Str("penalty_id", p.ID).Str("amount", p.Amount.String()).Msg("penalty recorded")
	return p, nil
}

func (s *penaltyService) List(ctx context.Context) ([]model.Penalty, error) {
	return s.repo.List(ctx)
}

func (s *penaltyService) ListByWorker(ctx context.Context, workerID string) ([]model.Penalty, error) {
	return s.repo.ListByWorker(ctx, workerID)
}

func (s *penaltyService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPenaltyNotFound
	}
	return err
}

// requireWorker fails with ErrWorkerNotFound unless id names a stored worker.
func requireWorker(ctx context.Context, workers repository.WorkerRepository, id string) error {
	_, err := mapWorkerErr(workers.FindByID(ctx, id))
	return err
}

// ledgerTime normalizes a caller-supplied ledger time to minute precision,
// stamping the current minute when none is given.
func ledgerTime(raw string, clock Clock) (string, error) {
	if raw == "" {
		return model.FormatMinute(clock.Now()), nil
	}
	t, err := model.ParseTimestamp(raw)
	if err != nil {
		return "", ErrInvalidLedgerTime
	}
	return model.FormatMinute(t), nil
}
