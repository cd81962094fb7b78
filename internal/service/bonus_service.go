package service

import (
	"context"
	"errors"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"

	"github.com/rs/zerolog/log"
)

type BonusService interface {
	Add(ctx context.Context, req dto.CreateBonusRequest) (*model.Bonus, error)
	List(ctx context.Context) ([]model.Bonus, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.Bonus, error)
	Delete(ctx context.Context, id string) error
}

type bonusService struct {
	repo    repository.BonusRepository
	workers repository.WorkerRepository
	clock   Clock
}

func NewBonusService(repo repository.BonusRepository, workers repository.WorkerRepository, clock Clock) BonusService {
	return &bonusService{repo: repo, workers: workers, clock: clock}
}

func (s *bonusService) Add(ctx context.Context, req dto.CreateBonusRequest) (*model.Bonus, error) {
	if err := requireWorker(ctx, s.workers, req.WorkerID); err != nil {
		return nil, err
	}
	at, err := ledgerTime(req.Time, s.clock)
	if err != nil {
		return nil, err
	}
	b := &model.Bonus{
		ID:       s.clock.NewID(),
		WorkerID: req.WorkerID,
		Amount:   req.Amount,
		Time:     at,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	log.Info().Str("worker_id", b.WorkerID).Str("bonus_id", b.ID).Str("amount", b.Amount.String()).Msg("bonus recorded")
	return b, nil
}

func (s *bonusService) List(ctx context.Context) ([]model.Bonus, error) {
	return s.repo.List(ctx)
}

func (s *bonusService) ListByWorker(ctx context.Context, workerID string) ([]model.Bonus, error) {
	return s.repo.ListByWorker(ctx, workerID)
}

func (s *bonusService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBonusNotFound
	}
	return err
}
