package handler

import (
	"context"
	"net/http"
	"time"

	"rebowork/internal/infra"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response.
// Pings the record store; never exposes credentials or internals.
//
// @Summary Service health
// @Description Reports store connectivity, the store driver and, for remote drivers, the breaker state.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func Health(b *infra.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		if b.Ping(ctx) != nil {
			storeStatus = "error"
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{
			"ok":     status == http.StatusOK,
			"store":  storeStatus,
			"driver": b.Driver,
		}
		if b.Breaker != nil {
			body["breaker"] = b.Breaker.State().String()
		}
		c.JSON(status, body)
	}
}
