// Package handler holds the gin handlers of the Invoice API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoiceapi/backend/internal/domain/shared"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	// ErrorMode decides the status of lookup failures. Zero value is strict.
	ErrorMode dto.ErrorMode
}

// Success sends data as-is with 200
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error body with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// InternalError sends a 500 without leaking err's text
func (h *BaseHandler) InternalError(c *gin.Context) {
	h.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// HandleError converts domain errors to HTTP responses.
// The error is also recorded on the gin context for logging and tracing.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, h.ErrorMode.StatusFor(domainErr.Code), domainErr.Message)
		return
	}
	h.InternalError(c)
}
