package dto

// ─── Tasks ───────────────────────────────────────────────────────────────────

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
	StoreName   string `json:"store_name"  validate:"required"`
}

// UpdateTaskRequest — empty or missing fields keep their stored values.
type UpdateTaskRequest struct {
	Description *string `json:"description"`
	StoreName   *string `json:"store_name"`
}

type CompleteTaskRequest struct {
	WorkerID string `json:"workerId" validate:"required"`
}

// MessageResponse is the body of operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
