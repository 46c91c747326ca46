package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// DeleteResponse reports whether a delete removed a row.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// BaseHandler carries the shared handler helpers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs a handler entry with request context.
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

// LogError logs an unexpected handler error.
func (h *BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.FromContext(c.Request.Context(), h.logger).Error(msg,
		"error", err,
		"path", c.Request.URL.Path)
}

// parseIDParam parses a numeric path parameter, writing a 400 on failure.
// A zero return means the response has already been written.
func (h *BaseHandler) parseIDParam(c *gin.Context, param string) uint {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "must be a positive integer",
		})
		return 0
	}
	return uint(id)
}

// handleServiceError maps service errors to HTTP responses: missing
// resources are 404, bad references and validation failures are 400,
// uniqueness violations are 409.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var invalidRef *services.InvalidReferenceError
	if errors.As(err, &invalidRef) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: invalidRef.Error(),
			Details: map[string]interface{}{
				"resource":  invalidRef.Resource,
				"reference": invalidRef.Reference,
			},
		})
		return
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: conflict.Error(),
			Details: map[string]interface{}{
				"resource": conflict.Resource,
				"field":    conflict.Field,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrRolNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Rol not found"})
	case errors.Is(err, services.ErrUsuarioNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Usuario not found"})
	case errors.Is(err, services.ErrCursoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Curso not found"})
	case errors.Is(err, services.ErrEvaluacionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Evaluacion not found"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
