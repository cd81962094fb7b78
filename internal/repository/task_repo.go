package repository

import (
	"context"

	"rebowork/internal/model"
	"rebowork/internal/store"
)

type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) error
	List(ctx context.Context) ([]model.Task, error)
	ListByStore(ctx context.Context, storeName string) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, id string, patch func(t *model.Task)) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskRepo struct {
	coll *store.Collection[model.Task]
}

func NewTaskRepository(b store.Backend) TaskRepository {
	return &taskRepo{coll: store.NewCollection[model.Task](b, store.Tasks)}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.coll.Update(ctx, func(items []model.Task) ([]model.Task, error) {
		return append(items, *t), nil
	})
}

func (r *taskRepo) List(ctx context.Context) ([]model.Task, error) {
	return r.coll.Load(ctx)
}

func (r *taskRepo) ListByStore(ctx context.Context, storeName string) ([]model.Task, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(t model.Task) bool { return t.StoreName == storeName }), nil
}

func (r *taskRepo) FindByID(ctx context.Context, id string) (*model.Task, error) {
	items, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(items, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	return &items[i], nil
}

func (r *taskRepo) Update(ctx context.Context, id string, patch func(t *model.Task)) (*model.Task, error) {
	var updated model.Task
	err := r.coll.Update(ctx, func(items []model.Task) ([]model.Task, error) {
		i := indexOf(items, func(t model.Task) bool { return t.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}
		patch(&items[i])
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Update(ctx, func(items []model.Task) ([]model.Task, error) {
		kept := filter(items, func(t model.Task) bool { return t.ID != id })
		if len(kept) == len(items) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
