package handler

import (
	"net/http"

	"rebowork/internal/dto"
	"rebowork/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkersHandler struct{ svc service.WorkerService }

func NewWorkersHandler(svc service.WorkerService) *WorkersHandler {
	return &WorkersHandler{svc: svc}
}

// List godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Worker
// @Router /workers [get]
func (h *WorkersHandler) List(c *gin.Context) {
	workers, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

// Get godoc
// @Summary Get a worker by id
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Success 200 {object} model.Worker
// @Failure 404 {object} apierror.APIError
// @Router /worker/{id} [get]
func (h *WorkersHandler) Get(c *gin.Context) {
	w, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GetByQRCode godoc
// @Summary Get a worker by badge QR code text
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param code path string true "QR code text"
// @Success 200 {object} model.Worker
// @Failure 404 {object} apierror.APIError
// @Router /worker/qr/{code} [get]
func (h *WorkersHandler) GetByQRCode(c *gin.Context) {
	w, err := h.svc.GetByQRCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Create godoc
// @Summary Register a worker
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateWorkerRequest true "Worker"
// @Success 201 {object} model.Worker
// @Failure 400 {object} apierror.ValidationError
// @Failure 409 {object} apierror.APIError
// @Router /worker [post]
func (h *WorkersHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	w, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// Update godoc
// @Summary Edit a worker's profile
// @Description Work status and worked minutes are owned by attendance scans and cannot be set here.
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Param body body dto.UpdateWorkerRequest true "Fields to change"
// @Success 200 {object} model.Worker
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /worker/{id} [patch]
func (h *WorkersHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	w, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Delete godoc
// @Summary Delete a worker
// @Description Their histories, penalties and bonuses are kept.
// @Tags workers
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /worker/{id} [delete]
func (h *WorkersHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
