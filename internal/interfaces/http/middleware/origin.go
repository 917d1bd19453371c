package middleware

import (
	"net/http"
	"strings"

	"github.com/clientesvc/backend/internal/domain/shared"
	"github.com/clientesvc/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// OriginSystemHeader identifies the calling system on read operations
const OriginSystemHeader = "sistemaOrigem"

// RequireOriginSystem rejects requests that do not carry a non-blank
// sistemaOrigem header. Applied to read routes only; writes are exempt.
func RequireOriginSystem() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(OriginSystemHeader)) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(http.StatusBadRequest,
					shared.ErrMissingHeader.Message,
					c.Request.URL.Path))
			return
		}
		c.Next()
	}
}
