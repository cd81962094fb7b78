package model

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Task is an ad-hoc job posted for a store.
type Task struct {
	ID          string     `json:"id"`
	StoreName   string     `json:"store_name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt string     `json:"completed_at,omitempty"`
	CreatedAt   string     `json:"created_at"`
}
