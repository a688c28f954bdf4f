package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// WelcomeMessage is returned by the root endpoint
const WelcomeMessage = "Welcome to the Invoice API"

// RootHandler serves the greeting at /
type RootHandler struct {
	BaseHandler
}

// NewRootHandler creates a new RootHandler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Welcome godoc
// @ID           getRoot
// @Summary      Greeting
// @Description  Confirms the API is reachable
// @Tags         root
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       / [get]
func (h *RootHandler) Welcome(c *gin.Context) {
	h.Success(c, dto.MessageResponse{Message: WelcomeMessage})
}
