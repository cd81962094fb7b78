package service

import (
	"context"
	"testing"
	"time"

	"rebowork/internal/dto"
	"rebowork/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTask_CreateIsPending(t *testing.T) {
	f := newFixture()
	svc := NewTaskService(f.tasks, f.workers, f.clock)

	task, err := svc.Create(context.Background(), "restock shelves", "Store A")
	require.NoError(t, err)
	assert.Equal(t, model.TaskPending, task.Status)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", task.CreatedAt)
	assert.Empty(t, task.CompletedBy)
}

func TestTask_UpdateMergesNonEmptyFields(t *testing.T) {
	f := newFixture()
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	task, err := svc.Create(ctx, "restock shelves", "Store A")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, task.ID, dto.UpdateTaskRequest{Description: strPtr("clean floor"), StoreName: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "clean floor", updated.Description)
	assert.Equal(t, "Store A", updated.StoreName)

	_, err = svc.Update(ctx, "nope", dto.UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTask_ListByStore(t *testing.T) {
	f := newFixture()
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	_, _ = svc.Create(ctx, "a", "Store A")
	_, _ = svc.Create(ctx, "b", "Store B")
	_, _ = svc.Create(ctx, "c", "Store A")

	tasks, err := svc.ListByStore(ctx, "Store A")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	none, err := svc.ListByStore(ctx, "Store Z")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTask_CompleteRecordsWorkerName(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	task, _ := svc.Create(ctx, "restock", "Store A")

	done, err := svc.Complete(ctx, task.ID, "w1")
	require.NoError(t, err)
	assert.Equal(t, model.TaskCompleted, done.Status)
	assert.Equal(t, "Ali Valiyev", done.CompletedBy)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", done.CompletedAt)
}

func TestTask_RecompletionOverwrites(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	require.NoError(t, f.workers.Create(context.Background(), &model.Worker{ID: "w2", Name: "Olim", LastName: "Karimov", QRCodeText: "qr-w2"}))
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	task, _ := svc.Create(ctx, "restock", "Store A")

	_, err := svc.Complete(ctx, task.ID, "w1")
	require.NoError(t, err)
	f.clock.now = f.clock.now.Add(time.Hour)

	again, err := svc.Complete(ctx, task.ID, "w2")
	require.NoError(t, err)
	assert.Equal(t, "Olim Karimov", again.CompletedBy)
	assert.Equal(t, "2024-03-01T13:00:00.000Z", again.CompletedAt)

	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Olim Karimov", stored.CompletedBy)
}

func TestTask_CompleteFailures(t *testing.T) {
	f := newFixture()
	f.addWorker(t, "w1", model.StatusNotWorking)
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	task, _ := svc.Create(ctx, "restock", "Store A")

	_, err := svc.Complete(ctx, "nope", "w1")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Complete(ctx, task.ID, "ghost")
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	stored, _ := svc.Get(ctx, task.ID)
	assert.Equal(t, model.TaskPending, stored.Status)
}

func TestTask_Delete(t *testing.T) {
	f := newFixture()
	svc := NewTaskService(f.tasks, f.workers, f.clock)
	ctx := context.Background()
	task, _ := svc.Create(ctx, "restock", "Store A")

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrTaskNotFound)
}
