package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoiceapi/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects requests whose body exceeds maxBytes.
// The API is read-only, so any sizeable body is unexpected.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
