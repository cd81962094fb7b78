package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"
	"rebowork/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(workerID, at string, typ model.ScanType) dto.CreateHistoryRequest {
	return dto.CreateHistoryRequest{WorkerID: workerID, WorkPlaceName: "Store A", ScanTime: at, StatusType: typ}
}

func TestAttendance_FirstEnterStartsWork(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	h, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)
	assert.Equal(t, "w1", h.WorkerID)
	assert.NotEmpty(t, h.ID)

	assert.Equal(t, model.StatusWorking, f.worker(t, "w1").StatusWorking)
	all, _ := svc.List(ctx)
	assert.Len(t, all, 1)
}

func TestAttendance_DuplicateEnterRejectedWithoutSideEffects(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)

	_, err = svc.Record(ctx, scan("w1", "2024-03-01T09:05:00Z", model.ScanEnter))
	assert.ErrorIs(t, err, ErrDuplicateScan)
	assert.ErrorIs(t, err, ErrConflict)

	all, _ := svc.List(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, model.StatusWorking, f.worker(t, "w1").StatusWorking)
}

func TestAttendance_ExitWhileNotWorkingRejected(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)

	_, err := svc.Record(context.Background(), scan("w1", "2024-03-01T17:00:00Z", model.ScanExit))
	assert.ErrorIs(t, err, ErrDuplicateScan)
}

func TestAttendance_FullShiftAccruesMinutes(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T17:00:00Z", model.ScanExit))
	require.NoError(t, err)

	w := f.worker(t, "w1")
	assert.Equal(t, model.StatusNotWorking, w.StatusWorking)
	assert.Equal(t, 480, w.MonthlyWorkedMinutes)

	hs, _ := svc.ListByWorker(ctx, "w1")
	require.Len(t, hs, 2)
	assert.Equal(t, model.ScanEnter, hs[0].StatusType)
	assert.Equal(t, model.ScanExit, hs[1].StatusType)
}

func TestAttendance_AccrualFloorsPartialMinutes(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T09:10:59.999Z", model.ScanExit))
	require.NoError(t, err)

	assert.Equal(t, 10, f.worker(t, "w1").MonthlyWorkedMinutes)
}

func TestAttendance_AccrualUsesLatestEnter(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	for _, s := range []dto.CreateHistoryRequest{
		scan("w1", "2024-03-01T08:00:00Z", model.ScanEnter),
		scan("w1", "2024-03-01T09:00:00Z", model.ScanExit),
		scan("w1", "2024-03-01T13:00:00Z", model.ScanEnter),
		scan("w1", "2024-03-01T13:30:00Z", model.ScanExit),
	} {
		_, err := svc.Record(ctx, s)
		require.NoError(t, err)
	}

	assert.Equal(t, 90, f.worker(t, "w1").MonthlyWorkedMinutes)
}

func TestAttendance_ExitWithoutEnterCreditsNothing(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)

	_, err := svc.Record(context.Background(), scan("w1", "2024-03-01T17:00:00Z", model.ScanExit))
	require.NoError(t, err)

	w := f.worker(t, "w1")
	assert.Equal(t, model.StatusNotWorking, w.StatusWorking)
	assert.Equal(t, 0, w.MonthlyWorkedMinutes)
}

func TestAttendance_ExitBeforeEnterNeverDecreasesMinutes(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("w1", "2024-03-01T17:00:00Z", model.ScanEnter))
	require.NoError(t, err)
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanExit))
	require.NoError(t, err)

	assert.Equal(t, 0, f.worker(t, "w1").MonthlyWorkedMinutes)
}

func TestAttendance_UnknownWorker(t *testing.T) {
	f := newFixture()
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("ghost", "2024-03-01T09:00:00Z", model.ScanEnter))
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	all, _ := svc.List(ctx)
	assert.Empty(t, all)
}

func TestAttendance_ResolvesByQRCode(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)

	h, err := svc.Record(context.Background(), dto.CreateHistoryRequest{
		QRCodeText: "qr-w1", WorkPlaceName: "Store A", StatusType: model.ScanEnter,
	})
	require.NoError(t, err)
	assert.Equal(t, "w1", h.WorkerID)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", h.ScanTime, "missing scan_time is stamped by the clock")
}

func TestAttendance_MismatchedIDAndQRCode(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	f.addWorker(t, "w2", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)

	_, err := svc.Record(context.Background(), dto.CreateHistoryRequest{
		WorkerID: "w1", QRCodeText: "qr-w2", WorkPlaceName: "Store A", StatusType: model.ScanEnter,
	})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestAttendance_BadScanTime(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)

	_, err := svc.Record(context.Background(), scan("w1", "yesterday", model.ScanEnter))
	assert.ErrorIs(t, err, ErrInvalidScanTime)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, model.StatusNotWorking, f.worker(t, "w1").StatusWorking)
}

func TestAttendance_ConcurrentEntersAcceptOnlyOne(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, SystemClock())
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter)); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	all, _ := svc.List(ctx)
	assert.Len(t, all, 1)
}

func TestAttendance_Delete(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	h, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, h.ID))
	assert.ErrorIs(t, svc.Delete(ctx, h.ID), ErrHistoryNotFound)
}

var errDiskFull = errors.New("disk full")

// failingWrites rejects writes to one collection while failing is set.
type failingWrites struct {
	store.Backend
	collection string
	failing    bool
}

func (b *failingWrites) Write(ctx context.Context, name string, doc []byte) error {
	if b.failing && name == b.collection {
		return errDiskFull
	}
	return b.Backend.Write(ctx, name, doc)
}

func TestAttendance_FailedWorkerWriteLeavesNoHistory(t *testing.T) {
	b := &failingWrites{Backend: store.NewMemoryBackend(), collection: store.Workers}
	f := newFixture()
	f.workers = repository.NewWorkerRepository(b)
	f.histories = repository.NewHistoryRepository(b)
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	b.failing = true
	_, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	assert.ErrorIs(t, err, errDiskFull)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, model.StatusNotWorking, f.worker(t, "w1").StatusWorking)

	b.failing = false
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T09:01:00Z", model.ScanEnter))
	require.NoError(t, err)
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T09:02:00Z", model.ScanEnter))
	assert.ErrorIs(t, err, ErrDuplicateScan)

	all, _ = svc.List(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, model.StatusWorking, f.worker(t, "w1").StatusWorking)
}

func TestAttendance_ExitUpdatesStatusAndMinutesTogether(t *testing.T) {
	b := &failingWrites{Backend: store.NewMemoryBackend(), collection: store.Workers}
	f := newFixture()
	f.workers = repository.NewWorkerRepository(b)
	f.histories = repository.NewHistoryRepository(b)
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewAttendanceService(f.histories, f.workers, f.clock)
	ctx := context.Background()

	_, err := svc.Record(ctx, scan("w1", "2024-03-01T09:00:00Z", model.ScanEnter))
	require.NoError(t, err)

	b.failing = true
	_, err = svc.Record(ctx, scan("w1", "2024-03-01T17:00:00Z", model.ScanExit))
	assert.ErrorIs(t, err, errDiskFull)
	b.failing = false

	w := f.worker(t, "w1")
	assert.Equal(t, model.StatusWorking, w.StatusWorking)
	assert.Equal(t, 0, w.MonthlyWorkedMinutes)
	hs, _ := svc.ListByWorker(ctx, "w1")
	assert.Len(t, hs, 1)

	_, err = svc.Record(ctx, scan("w1", "2024-03-01T17:00:00Z", model.ScanExit))
	require.NoError(t, err)
	w = f.worker(t, "w1")
	assert.Equal(t, model.StatusNotWorking, w.StatusWorking)
	assert.Equal(t, 480, w.MonthlyWorkedMinutes)
}
