package repository

import (
	"context"

	"rebowork/internal/model"
	"rebowork/internal/store"
)

// WorkerRepository is the worker registry. Other services read and mutate
// workers only through it.
type WorkerRepository interface {
	List(ctx context.Context) ([]model.Worker, error)
	FindByID(ctx context.Context, id string) (*model.Worker, error)
	FindByQRCode(ctx context.Context, code string) (*model.Worker, error)
	// Create appends w as given. Callers supply a fresh id; duplicate ids
	// are not checked. A QR code held by another worker fails with
	// ErrQRCodeInUse.
	Create(ctx context.Context, w *model.Worker) error
	// Update applies patch and saves. A patch that leaves the worker with
	// another worker's QR code fails with ErrQRCodeInUse and writes nothing.
	Update(ctx context.Context, id string, patch func(w *model.Worker)) (*model.Worker, error)
	Delete(ctx context.Context, id string) error
	SetWorkingStatus(ctx context.Context, id string, status model.WorkStatus) (*model.Worker, error)
	AddWorkedMinutes(ctx context.Context, id string, delta int) (*model.Worker, error)
	// ApplyScan sets the work status and credits delta minutes in a single
	// write.
	ApplyScan(ctx context.Context, id string, status model.WorkStatus, delta int) (*model.Worker, error)
}

type workerRepo struct {
	coll *store.Collection[model.Worker]
}

func NewWorkerRepository(b store.Backend) WorkerRepository {
	return &workerRepo{coll: store.NewCollection[model.Worker](b, store.Workers)}
}

func (r *workerRepo) List(ctx context.Context) ([]model.Worker, error) {
	return r.coll.Load(ctx)
}

func (r *workerRepo) FindByID(ctx context.Context, id string) (*model.Worker, error) {
	return r.find(ctx, func(w model.Worker) bool { return w.ID == id })
}

func (r *workerRepo) FindByQRCode(ctx context.Context, code string) (*model.Worker, error) {
	return r.find(ctx, func(w model.Worker) bool { return w.QRCodeText == code })
}

func (r *workerRepo) find(ctx context.Context, pred func(model.Worker) bool) (*model.Worker, error) {
	workers, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(workers, pred)
	if i < 0 {
		return nil, ErrNotFound
	}
	return &workers[i], nil
}

func (r *workerRepo) Create(ctx context.Context, w *model.Worker) error {
	return r.coll.Update(ctx, func(workers []model.Worker) ([]model.Worker, error) {
		if qrTaken(workers, -1, w.QRCodeText) {
			return nil, ErrQRCodeInUse
		}
		return append(workers, *w), nil
	})
}

func (r *workerRepo) Update(ctx context.Context, id string, patch func(w *model.Worker)) (*model.Worker, error) {
	var updated model.Worker
	err := r.coll.Update(ctx, func(workers []model.Worker) ([]model.Worker, error) {
		i := indexOf(workers, func(w model.Worker) bool { return w.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}
		patch(&workers[i])
		if qrTaken(workers, i, workers[i].QRCodeText) {
			return nil, ErrQRCodeInUse
		}
		updated = workers[i]
		return workers, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *workerRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Update(ctx, func(workers []model.Worker) ([]model.Worker, error) {
		kept := filter(workers, func(w model.Worker) bool { return w.ID != id })
		if len(kept) == len(workers) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}

func (r *workerRepo) SetWorkingStatus(ctx context.Context, id string, status model.WorkStatus) (*model.Worker, error) {
	return r.Update(ctx, id, func(w *model.Worker) { w.StatusWorking = status })
}

func (r *workerRepo) AddWorkedMinutes(ctx context.Context, id string, delta int) (*model.Worker, error) {
	return r.Update(ctx, id, func(w *model.Worker) { w.MonthlyWorkedMinutes += delta })
}

func (r *workerRepo) ApplyScan(ctx context.Context, id string, status model.WorkStatus, delta int) (*model.Worker, error) {
	return r.Update(ctx, id, func(w *model.Worker) {
		w.StatusWorking = status
		w.MonthlyWorkedMinutes += delta
	})
}

// qrTaken reports whether a worker other than the one at skip holds code.
// An empty code is never taken.
func qrTaken(workers []model.Worker, skip int, code string) bool {
	if code == "" {
		return false
	}
	for i, w := range workers {
		if i != skip && w.QRCodeText == code {
			return true
		}
	}
	return false
}
