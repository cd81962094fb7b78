package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rebowork/internal/model"
	"rebowork/internal/repository"
	"rebowork/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a settable time and sequential ids.
type fakeClock struct {
	now time.Time
	seq int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) NewID() string {
	c.seq++
	return fmt.Sprintf("id-%d", c.seq)
}

// fixture bundles repositories over one in-memory backend.
type fixture struct {
	backend   *store.MemoryBackend
	workers   repository.WorkerRepository
	histories repository.HistoryRepository
	penalties repository.PenaltyRepository
	bonuses   repository.BonusRepository
	tasks     repository.TaskRepository
	users     repository.UserRepository
	clock     *fakeClock
}

func newFixture() *fixture {
	b := store.NewMemoryBackend()
	return &fixture{
		backend:   b,
		workers:   repository.NewWorkerRepository(b),
		histories: repository.NewHistoryRepository(b),
		penalties: repository.NewPenaltyRepository(b),
		bonuses:   repository.NewBonusRepository(b),
		tasks:     repository.NewTaskRepository(b),
		users:     repository.NewUserRepository(b),
		clock:     newFakeClock(),
	}
}

func (f *fixture) addWorker(t *testing.T, id string, status model.WorkStatus) {
	t.Helper()
	require.NoError(t, f.workers.Create(context.Background(), &model.Worker{
		ID:            id,
		Name:          "Ali",
		LastName:      "Valiyev",
		Age:           30,
		Position:      "cashier",
		HoursToWork:   "8",
		MonthlySalary: decimal.NewFromInt(3000),
		StatusWorking: status,
		QRCodeText:    "qr-" + id,
	}))
}

func (f *fixture) worker(t *testing.T, id string) *model.Worker {
	t.Helper()
	w, err := f.workers.FindByID(context.Background(), id)
	require.NoError(t, err)
	return w
}
