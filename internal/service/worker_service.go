package service

import (
	"context"
	"errors"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"
)

type WorkerService interface {
	List(ctx context.Context) ([]model.Worker, error)
	Get(ctx context.Context, id string) (*model.Worker, error)
	GetByQRCode(ctx context.Context, code string) (*model.Worker, error)
	Create(ctx context.Context, req dto.CreateWorkerRequest) (*model.Worker, error)
	Update(ctx context.Context, id string, req dto.UpdateWorkerRequest) (*model.Worker, error)
	// Delete removes the worker only. Their histories, penalties and
	// bonuses stay in place.
	Delete(ctx context.Context, id string) error
}

type workerService struct {
	repo  repository.WorkerRepository
	clock Clock
}

func NewWorkerService(repo repository.WorkerRepository, clock Clock) WorkerService {
	return &workerService{repo: repo, clock: clock}
}

func (s *workerService) List(ctx context.Context) ([]model.Worker, error) {
	return s.repo.List(ctx)
}

func (s *workerService) Get(ctx context.Context, id string) (*model.Worker, error) {
	return mapWorkerErr(s.repo.FindByID(ctx, id))
}

func (s *workerService) GetByQRCode(ctx context.Context, code string) (*model.Worker, error) {
	return mapWorkerErr(s.repo.FindByQRCode(ctx, code))
}

func (s *workerService) Create(ctx context.Context, req dto.CreateWorkerRequest) (*model.Worker, error) {
	w := &model.Worker{
		ID:                   req.ID,
		Name:                 req.Name,
		LastName:             req.LastName,
		Age:                  req.Age,
		Position:             req.Position,
		HoursToWork:          req.HoursToWork,
		MonthlySalary:        req.MonthlySalary,
		StatusWorking:        req.StatusWorking,
		MonthlyWorkedMinutes: req.MonthlyWorkedMinutes,
		QRCodeText:           req.QRCodeText,
		CreatedAt:            model.FormatTimestamp(s.clock.Now()),
	}
	if w.ID == "" {
		w.ID = s.clock.NewID()
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return mapWorkerErr(nil, err)
	}
	return w, nil
}

func (s *workerService) Update(ctx context.Context, id string, req dto.UpdateWorkerRequest) (*model.Worker, error) {
	return mapWorkerErr(s.repo.Update(ctx, id, func(w *model.Worker) {
		if req.Name != nil {
			w.Name = *req.Name
		}
		if req.LastName != nil {
			w.LastName = *req.LastName
		}
		if req.Age != nil {
			w.Age = *req.Age
		}
		if req.Position != nil {
			w.Position = *req.Position
		}
		if req.HoursToWork != nil {
			w.HoursToWork = *req.HoursToWork
		}
		if req.MonthlySalary != nil {
			w.MonthlySalary = *req.MonthlySalary
		}
		if req.QRCodeText != nil {
			w.QRCodeText = *req.QRCodeText
		}
	}))
}

func (s *workerService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkerNotFound
	}
	return err
}

func mapWorkerErr(w *model.Worker, err error) (*model.Worker, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWorkerNotFound
	}
	if errors.Is(err, repository.ErrQRCodeInUse) {
		return nil, ErrQRCodeTaken
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
