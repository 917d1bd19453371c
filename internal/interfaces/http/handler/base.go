package handler

import (
	"errors"
	"net/http"

	"github.com/clientesvc/backend/internal/domain/shared"
	"github.com/clientesvc/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the given body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(http.StatusBadRequest, message, c.Request.URL.Path))
}

// ValidationError sends a 400 response with one detail per violated field
func (h *BaseHandler) ValidationError(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest,
		dto.NewValidationErrorResponse(c.Request.URL.Path, details))
}

// HandleDomainError converts domain errors to HTTP responses. The status
// code is derived from the error code; unknown errors become a 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(status, domainErr.Message, c.Request.URL.Path))
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(http.StatusInternalServerError,
			shared.ErrInternal.Message, c.Request.URL.Path))
}
