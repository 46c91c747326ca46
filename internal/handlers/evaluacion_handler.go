package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

type EvaluacionHandler struct {
	BaseHandler
	evaluacionService services.EvaluacionService
}

func NewEvaluacionHandler(evaluacionService services.EvaluacionService, logger utils.Logger) *EvaluacionHandler {
	return &EvaluacionHandler{
		BaseHandler:       NewBaseHandler(logger),
		evaluacionService: evaluacionService,
	}
}

// ListEvaluaciones returns every assessment
func (h *EvaluacionHandler) ListEvaluaciones(c *gin.Context) {
	evaluaciones, err := h.evaluacionService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluaciones)
}

// GetEvaluacion returns one assessment by ID
func (h *EvaluacionHandler) GetEvaluacion(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	evaluacion, err := h.evaluacionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluacion)
}

// ListByCurso returns the assessments of one course
func (h *EvaluacionHandler) ListByCurso(c *gin.Context) {
	cursoID := h.parseIDParam(c, "cursoId")
	if cursoID == 0 {
		return
	}

	evaluaciones, err := h.evaluacionService.ListByCurso(c.Request.Context(), cursoID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluaciones)
}

// CreateEvaluacion schedules an assessment for an existing course
func (h *EvaluacionHandler) CreateEvaluacion(c *gin.Context) {
	var req validator.EvaluacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating evaluacion", "nombre", req.Nombre, "curso_id", req.CursoID)

	evaluacion, err := h.evaluacionService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, evaluacion)
}

// UpdateEvaluacion replaces every mutable field of an assessment
func (h *EvaluacionHandler) UpdateEvaluacion(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.EvaluacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating evaluacion", "evaluacion_id", id)

	evaluacion, err := h.evaluacionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluacion)
}

// DeleteEvaluacion removes an assessment. Deleting an id that never existed
// is a 404.
func (h *EvaluacionHandler) DeleteEvaluacion(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting evaluacion", "evaluacion_id", id)

	deleted, err := h.evaluacionService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Evaluacion not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evaluacion eliminada", "deleted": true})
}
