package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rebowork/internal/dto"
	"rebowork/internal/model"
	"rebowork/internal/repository"

	"github.com/rs/zerolog/log"
)

// AttendanceService records scanner events and keeps each worker's work
// status and monthly minutes in step with them.
type AttendanceService interface {
	Record(ctx context.Context, req dto.CreateHistoryRequest) (*model.History, error)
	List(ctx context.Context) ([]model.History, error)
	ListByWorker(ctx context.Context, workerID string) ([]model.History, error)
	Delete(ctx context.Context, id string) error
}

type attendanceService struct {
	histories repository.HistoryRepository
	workers   repository.WorkerRepository
	clock     Clock
	// mu serializes scans so the duplicate-state check and the status flip
	// happen as one step.
	mu sync.Mutex
}

func NewAttendanceService(histories repository.HistoryRepository, workers repository.WorkerRepository, clock Clock) AttendanceService {
	return &attendanceService{histories: histories, workers: workers, clock: clock}
}

// ── Record ────────────────────────────────────────────────────────────────────
// enter → working, exit → not_working. A scan whose target state equals the
// worker's current state is rejected and nothing is written. An accepted
// exit credits floor((exit − last enter) / 1m) to monthly_worked_minutes.

func (s *attendanceService) Record(ctx context.Context, req dto.CreateHistoryRequest) (*model.History, error) {
	scanTime := req.ScanTime
	if scanTime == "" {
		scanTime = model.FormatTimestamp(s.clock.Now())
	}
	scannedAt, err := model.ParseTimestamp(scanTime)
	if err != nil {
		return nil, ErrInvalidScanTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	worker, err := s.resolveWorker(ctx, req.WorkerID, req.QRCodeText)
	if err != nil {
		return nil, err
	}

	target := req.StatusType.TargetStatus()
	if worker.StatusWorking == target {
		log.Info().
			Str("worker_id", worker.ID).
			Str("status_type", string(req.StatusType)).
			Str("status_working", string(worker.StatusWorking)).
			Msg("attendance: duplicate scan rejected")
		return nil, ErrDuplicateScan
	}

	var minutes int
	if req.StatusType == model.ScanExit {
		minutes, err = s.workedMinutes(ctx, worker.ID, scannedAt)
		if err != nil {
			return nil, err
		}
	}

	h := &model.History{
		ID:            s.clock.NewID(),
		WorkerID:      worker.ID,
		WorkPlaceName: req.WorkPlaceName,
		ScanTime:      scanTime,
		StatusType:    req.StatusType,
		QRCodeText:    req.QRCodeText,
	}
	if err := s.histories.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("attendance: append history: %w", err)
	}
	if _, err := s.workers.ApplyScan(ctx, worker.ID, target, minutes); err != nil {
		// A stored event must always match the worker's state.
		if derr := s.histories.Delete(ctx, h.ID); derr != nil {
			log.Error().
				Err(derr).
				Str("worker_id", worker.ID).
				Str("history_id", h.ID).
				Msg("attendance: could not withdraw history after failed worker update")
		}
		return nil, fmt.Errorf("attendance: update worker: %w", err)
	}

	log.Info().
		Str("worker_id", worker.ID).
		Str("history_id", h.ID).
		Str("status_type", string(h.StatusType)).
		Int("minutes", minutes).
		Msg("attendance: scan recorded")
	return h, nil
}

// resolveWorker finds the worker by id, by QR code text, or by both. When
// both are given they must name the same worker.
func (s *attendanceService) resolveWorker(ctx context.Context, workerID, qrCode string) (*model.Worker, error) {
	var (
		w   *model.Worker
		err error
	)
	if workerID != "" {
		w, err = s.workers.FindByID(ctx, workerID)
	} else {
		w, err = s.workers.FindByQRCode(ctx, qrCode)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	if workerID != "" && qrCode != "" && w.QRCodeText != qrCode {
		return nil, ErrWorkerNotFound
	}
	return w, nil
}

// workedMinutes measures the session closed by an exit at exitAt. With no
// earlier enter on record, or an enter that does not precede the exit,
// nothing is credited.
func (s *attendanceService) workedMinutes(ctx context.Context, workerID string, exitAt time.Time) (int, error) {
	enter, err := s.histories.LatestByWorker(ctx, workerID, model.ScanEnter)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("worker_id", workerID).Msg("attendance: exit without prior enter, no minutes credited")
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	enterAt, err := model.ParseTimestamp(enter.ScanTime)
	if err != nil {
		log.Warn().Str("worker_id", workerID).Str("history_id", enter.ID).Msg("attendance: unreadable enter time, no minutes credited")
		return 0, nil
	}
	elapsed := exitAt.Sub(enterAt)
	if elapsed < 0 {
		log.Warn().Str("worker_id", workerID).Str("history_id", enter.ID).Msg("attendance: exit precedes enter, no minutes credited")
		return 0, nil
	}
	return int(elapsed / time.Minute), nil
}

func (s *attendanceService) List(ctx context.Context) ([]model.History, error) {
	return s.histories.List(ctx)
}

func (s *attendanceService) ListByWorker(ctx context.Context, workerID string) ([]model.History, error) {
	return s.histories.ListByWorker(ctx, workerID)
}

func (s *attendanceService) Delete(ctx context.Context, id string) error {
	err := s.histories.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrHistoryNotFound
	}
	return err
}
