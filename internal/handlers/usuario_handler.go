package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

type UsuarioHandler struct {
	BaseHandler
	usuarioService services.UsuarioService
}

func NewUsuarioHandler(usuarioService services.UsuarioService, logger utils.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		BaseHandler:    NewBaseHandler(logger),
		usuarioService: usuarioService,
	}
}

// ListUsuarios returns every user with their role
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	usuarios, err := h.usuarioService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// GetUsuario returns one user by ID
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	usuario, err := h.usuarioService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// CreateUsuario registers a user. The role in the request, if any, is
// ignored; the default role is always assigned.
func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var req validator.UsuarioCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating usuario", "email", req.Email)

	usuario, err := h.usuarioService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

// UpdateUsuario updates the fields present in the request
func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.UsuarioUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating usuario", "usuario_id", id)

	usuario, err := h.usuarioService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// DeleteUsuario removes a user. Deleting an id that never existed is a 404.
func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting usuario", "usuario_id", id)

	deleted, err := h.usuarioService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Usuario not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado", "deleted": true})
}

// CambiarRol reassigns a user to the role named in the newRoleName query
// parameter.
func (h *UsuarioHandler) CambiarRol(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	newRoleName := c.Query("newRoleName")
	if newRoleName == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing newRoleName query parameter",
		})
		return
	}

	h.LogRequest(c, "Changing usuario rol", "usuario_id", id, "new_role", newRoleName)

	usuario, err := h.usuarioService.CambiarRol(c.Request.Context(), id, newRoleName)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}
