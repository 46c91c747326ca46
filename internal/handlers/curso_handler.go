package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

type CursoHandler struct {
	BaseHandler
	cursoService services.CursoService
}

func NewCursoHandler(cursoService services.CursoService, logger utils.Logger) *CursoHandler {
	return &CursoHandler{
		BaseHandler:  NewBaseHandler(logger),
		cursoService: cursoService,
	}
}

// ListCursos returns the full catalog
func (h *CursoHandler) ListCursos(c *gin.Context) {
	cursos, err := h.cursoService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cursos)
}

// GetCurso returns one course by ID
func (h *CursoHandler) GetCurso(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	curso, err := h.cursoService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, curso)
}

// CreateCurso adds a course to the catalog
func (h *CursoHandler) CreateCurso(c *gin.Context) {
	var req validator.CursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating curso", "titulo", req.Titulo)

	curso, err := h.cursoService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, curso)
}

// UpdateCurso replaces every mutable field of a course
func (h *CursoHandler) UpdateCurso(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.CursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating curso", "curso_id", id)

	curso, err := h.cursoService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, curso)
}

// DeleteCurso removes a course. Deleting an id that never existed is a 404.
func (h *CursoHandler) DeleteCurso(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting curso", "curso_id", id)

	deleted, err := h.cursoService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Curso not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curso eliminado", "deleted": true})
}
