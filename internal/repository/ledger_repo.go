package repository

import (
	"context"

	"rebowork/internal/model"
	"rebowork/internal/store"
)

type PenaltyRepository interface {
	Create(ctx context.Context, p *model.Penalty) error
	List(ctx context.Context) ([]model.Penalty, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.Penalty, error)
	Delete(ctx context.Context, id string) error
}

type penaltyRepo struct {
	coll *store.Collection[model.Penalty]
}

func NewPenaltyRepository(b store.Backend) PenaltyRepository {
	return &penaltyRepo{coll: store.NewCollection[model.Penalty](b, store.Penalties)}
}

func (r *penaltyRepo) Create(ctx context.Context, p *model.Penalty) error {
	return r.coll.Update(ctx, func(items []model.Penalty) ([]model.Penalty, error) {
		return append(items, *p), nil
	})
}

func (r *penaltyRepo) List(ctx context.Context) ([]model.Penalty, error) {
	return r.coll.Load(ctx)
}

func (r *penaltyRepo) ListByWorker(ctx context.Context, workerID string) ([]model.Penalty, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(p model.Penalty) bool { return p.WorkerID == workerID }), nil
}

func (r *penaltyRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Update(ctx, func(items []model.Penalty) ([]model.Penalty, error) {
		kept := filter(items, func(p model.Penalty) bool { return p.ID != id })
		if len(kept) == len(items) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}

type BonusRepository interface {
	Create(ctx context.Context, b *model.Bonus) error
	List(ctx context.Context) ([]model.Bonus, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.Bonus, error)
	Delete(ctx context.Context, id string) error
}

type bonusRepo struct {
	coll *store.Collection[model.Bonus]
}

func NewBonusRepository(b store.Backend) BonusRepository {
	return &bonusRepo{coll: store.NewCollection[model.Bonus](b, store.Bonuses)}
}

func (r *bonusRepo) Create(ctx context.Context, b *model.Bonus) error {
	return r.coll.Update(ctx, func(items []model.Bonus) ([]model.Bonus, error) {
		return append(items, *b), nil
	})
}

func (r *bonusRepo) List(ctx context.Context) ([]model.Bonus, error) {
	return r.coll.Load(ctx)
}

func (r *bonusRepo) ListByWorker(ctx context.Context, workerID string) ([]model.Bonus, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(b model.Bonus) bool { return b.WorkerID == workerID }), nil
}

func (r *bonusRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Update(ctx, func(items []model.Bonus) ([]model.Bonus, error) {
		kept := filter(items, func(b model.Bonus) bool { return b.ID != id })
		if len(kept) == len(items) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
