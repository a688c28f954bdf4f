package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// Counter reports the size of a collection
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler reports liveness and loaded data sizes
type HealthHandler struct {
	BaseHandler
	invoices  Counter
	processes Counter
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(invoices, processes Counter) *HealthHandler {
	return &HealthHandler{invoices: invoices, processes: processes}
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	invoices, err := h.invoices.Count(ctx)
	if err != nil {
		_ = c.Error(err)
		h.Error(c, http.StatusServiceUnavailable, "Invoice data unavailable")
		return
	}
	processes, err := h.processes.Count(ctx)
	if err != nil {
		_ = c.Error(err)
		h.Error(c, http.StatusServiceUnavailable, "Process data unavailable")
		return
	}

	h.Success(c, dto.HealthResponse{
		Status:    "healthy",
		Time:      time.Now().UTC().Format(time.RFC3339),
		Invoices:  invoices,
		Processes: processes,
	})
}
