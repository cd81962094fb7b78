package handler

import (
	"net/http"

	"rebowork/internal/dto"
	"rebowork/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Penalties ─────────────────────────────────────────────────────────────────

type PenaltiesHandler struct{ svc service.PenaltyService }

func NewPenaltiesHandler(svc service.PenaltyService) *PenaltiesHandler {
	return &PenaltiesHandler{svc: svc}
}

// Add godoc
// @Summary Record a penalty against a worker
// @Tags penalties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreatePenaltyRequest true "Penalty"
// @Success 201 {object} model.Penalty
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /penalty [post]
func (h *PenaltiesHandler) Add(c *gin.Context) {
	var req dto.CreatePenaltyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary List all penalties
// @Tags penalties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Penalty
// @Router /penalties [get]
func (h *PenaltiesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByWorker godoc
// @Summary List one worker's penalties
// @Tags penalties
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "Worker ID"
// @Success 200 {array} model.Penalty
// @Router /penalties/worker/{workerId} [get]
func (h *PenaltiesHandler) ListByWorker(c *gin.Context) {
	items, err := h.svc.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete godoc
// @Summary Delete a penalty
// @Tags penalties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Penalty ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /penalty/{id} [delete]
func (h *PenaltiesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("penalty deleted"))
}

// ── Bonuses ───────────────────────────────────────────────────────────────────

type BonusesHandler struct{ svc service.BonusService }

func NewBonusesHandler(svc service.BonusService) *BonusesHandler {
	return &BonusesHandler{svc: svc}
}

// Add godoc
// @Summary Record a bonus for a worker
// @Tags bonuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateBonusRequest true "Bonus"
// @Success 201 {object} model.Bonus
// @Failure 400 {object} apierror.ValidationError
// @Failure 404 {object} apierror.APIError
// @Router /bonus [post]
func (h *BonusesHandler) Add(c *gin.Context) {
	var req dto.CreateBonusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	b, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// List godoc
// @Summary List all bonuses
// @Tags bonuses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Bonus
// @Router /bonuses [get]
func (h *BonusesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByWorker godoc
// @Summary List one worker's bonuses
// @Tags bonuses
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "Worker ID"
// @Success 200 {array} model.Bonus
// @Router /bonuses/worker/{workerId} [get]
func (h *BonusesHandler) ListByWorker(c *gin.Context) {
	items, err := h.svc.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete godoc
// @Summary Delete a bonus
// @Tags bonuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bonus ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /bonus/{id} [delete]
func (h *BonusesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, message("bonus deleted"))
}
