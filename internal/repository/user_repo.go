package repository

import (
	"context"

	"rebowork/internal/model"
	"rebowork/internal/store"
)

// UserRepository is keyed by username. Create does not enforce uniqueness;
// callers check FindByUsername first.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, username string, patch func(u *model.User)) (*model.User, error)
	Delete(ctx context.Context, username string) error
}

type userRepo struct {
	coll *store.Collection[model.User]
}

func NewUserRepository(b store.Backend) UserRepository {
	return &userRepo{coll: store.NewCollection[model.User](b, store.Users)}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.coll.Update(ctx, func(users []model.User) ([]model.User, error) {
		return append(users, *u), nil
	})
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(users, func(u model.User) bool { return u.Username == username })
	if i < 0 {
		return nil, ErrNotFound
	}
	return &users[i], nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	return r.coll.Load(ctx)
}

func (r *userRepo) Update(ctx context.Context, username string, patch func(u *model.User)) (*model.User, error) {
	var updated model.User
	err := r.coll.Update(ctx, func(users []model.User) ([]model.User, error) {
		i := indexOf(users, func(u model.User) bool { return u.Username == username })
		if i < 0 {
			return nil, ErrNotFound
		}
		patch(&users[i])
		updated = users[i]
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *userRepo) Delete(ctx context.Context, username string) error {
	return r.coll.Update(ctx, func(users []model.User) ([]model.User, error) {
		kept := filter(users, func(u model.User) bool { return u.Username != username })
		if len(kept) == len(users) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
