package repository

import (
	"context"

	"rebowork/internal/model"
	"rebowork/internal/store"
)

// HistoryRepository stores attendance scans. Records are append-only apart
// from delete by id.
type HistoryRepository interface {
	Create(ctx context.Context, h *model.History) error
	List(ctx context.Context) ([]model.History, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.History, error)
	// LatestByWorker returns the last record of the given type for the
	// worker in append order.
	LatestByWorker(ctx context.Context, workerID string, scanType model.ScanType) (*model.History, error)
	Delete(ctx context.Context, id string) error
}

type historyRepo struct {
	coll *store.Collection[model.History]
}

func NewHistoryRepository(b store.Backend) HistoryRepository {
	return &historyRepo{coll: store.NewCollection[model.History](b, store.Histories)}
}

func (r *historyRepo) Create(ctx context.Context, h *model.History) error {
	return r.coll.Update(ctx, func(items []model.History) ([]model.History, error) {
		return append(items, *h), nil
	})
}

func (r *historyRepo) List(ctx context.Context) ([]model.History, error) {
	return r.coll.Load(ctx)
}

func (r *historyRepo) ListByWorker(ctx context.Context, workerID string) ([]model.History, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(h model.History) bool { return h.WorkerID == workerID }), nil
}

func (r *historyRepo) LatestByWorker(ctx context.Context, workerID string, scanType model.ScanType) (*model.History, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].WorkerID == workerID && items[i].StatusType == scanType {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *historyRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Update(ctx, func(items []model.History) ([]model.History, error) {
		kept := filter(items, func(h model.History) bool { return h.ID != id })
		if len(kept) == len(items) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
