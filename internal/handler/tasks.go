package handler

import (
	"net/http"

	"rebowork/internal/dto"
	"rebowork/internal/service"

	"github.com/gin-gonic/gin"
)

type TasksHandler struct{ svc service.TaskService }

func NewTasksHandler(svc service.TaskService) *TasksHandler {
	return &TasksHandler{svc: svc}
}

// Create godoc
// @Summary Post a task for a store
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTaskRequest true "Task"
// @Success 201 {object} model.Task
// @Failure 400 {object} apierror.ValidationError
// @Router /tasks [post]
func (h *TasksHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Description, req.StoreName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List godoc
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TasksHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByStore godoc
// @Summary List the tasks of one store
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param store_name path string true "Store name"
// @Success 200 {array} model.Task
// @Router /tasks/{store_name} [get]
func (h *TasksHandler) ListByStore(c *gin.Context) {
	items, err := h.svc.ListByStore(c.Request.Context(), c.Param("store_name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Update godoc
// @Summary Edit a task
// @Description Empty or missing fields keep their stored values.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param body body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} model.Task
// @Failure 404 {object} apierror.APIError
// @Router /tasks/{taskId} [patch]
func (h *TasksHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("taskId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /tasks/{taskId} [delete]
func (h *TasksHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("taskId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("task deleted"))
}

// Complete godoc
// @Summary Mark a task completed by a worker
// @Description Completing an already completed task overwrites completed_by and completed_at.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param body body dto.CompleteTaskRequest true "Completing worker"
// @Success 200 {object} model.Task
// @Failure 404 {object} apierror.APIError
// @Router /complete/{taskId} [post]
func (h *TasksHandler) Complete(c *gin.Context) {
	var req dto.CompleteTaskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Complete(c.Request.Context(), c.Param("taskId"), req.WorkerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
