package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

type RolHandler struct {
	BaseHandler
	rolService services.RolService
}

func NewRolHandler(rolService services.RolService, logger utils.Logger) *RolHandler {
	return &RolHandler{
		BaseHandler: NewBaseHandler(logger),
		rolService:  rolService,
	}
}

// ListRoles returns every role
func (h *RolHandler) ListRoles(c *gin.Context) {
	roles, err := h.rolService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}

// GetRol returns one role by ID
func (h *RolHandler) GetRol(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	rol, err := h.rolService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rol)
}

// CreateRol creates a new role
func (h *RolHandler) CreateRol(c *gin.Context) {
	var req validator.RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating rol", "nombre", req.Nombre)

	rol, err := h.rolService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rol)
}

// UpdateRol renames an existing role
func (h *RolHandler) UpdateRol(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating rol", "rol_id", id)

	rol, err := h.rolService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rol)
}

// DeleteRol removes a role. Deleting an id that never existed is a 404.
func (h *RolHandler) DeleteRol(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting rol", "rol_id", id)

	deleted, err := h.rolService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Rol not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol eliminado", "deleted": true})
}
