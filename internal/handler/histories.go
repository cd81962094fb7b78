package handler

import (
	"net/http"

	"rebowork/internal/dto"
	"rebowork/internal/service"

	"github.com/gin-gonic/gin"
)

type HistoriesHandler struct{ svc service.AttendanceService }

func NewHistoriesHandler(svc service.AttendanceService) *HistoriesHandler {
	return &HistoriesHandler{svc: svc}
}

// Record godoc
// @Summary Record an attendance scan
// @Description enter moves the worker to working, exit to not_working and credits the minutes since the last enter.
// @Description A scan into the state the worker is already in is rejected with 409.
// @Tags histories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateHistoryRequest true "Scan"
// @Success 201 {object} model.History
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /history [post]
func (h *HistoriesHandler) Record(c *gin.Context) {
	var req dto.CreateHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// List godoc
// @Summary List attendance scans
// @Tags histories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.History
// @Router /histories [get]
func (h *HistoriesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByWorker godoc
// @Summary List one worker's attendance scans
// @Tags histories
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "Worker ID"
// @Success 200 {array} model.History
// @Router /histories/worker/{workerId} [get]
func (h *HistoriesHandler) ListByWorker(c *gin.Context) {
	items, err := h.svc.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete godoc
// @Summary Delete an attendance scan
// @Description Worker status and minutes are not recomputed.
// @Tags histories
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /history/{id} [delete]
func (h *HistoriesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("history deleted"))
}
