package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edu-tech-cl/platform-service/internal/services"
	"github.com/edu-tech-cl/platform-service/internal/utils"
)

type HandlerManager struct {
	rolHandler        *RolHandler
	usuarioHandler    *UsuarioHandler
	cursoHandler      *CursoHandler
	evaluacionHandler *EvaluacionHandler
	exportHandler     *ExportHandler
	serviceManager    services.ServiceManager
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		rolHandler:        NewRolHandler(serviceManager.Rol(), logger),
		usuarioHandler:    NewUsuarioHandler(serviceManager.Usuario(), logger),
		cursoHandler:      NewCursoHandler(serviceManager.Curso(), logger),
		evaluacionHandler: NewEvaluacionHandler(serviceManager.Evaluacion(), logger),
		exportHandler:     NewExportHandler(serviceManager.Export(), logger),
		serviceManager:    serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	usuario := router.Group("/usuario")
	{
		usuario.GET("/usuarios", hm.usuarioHandler.ListUsuarios)
		usuario.GET("/:id", hm.usuarioHandler.GetUsuario)
		usuario.POST("/crearUsuario", hm.usuarioHandler.CreateUsuario)
		usuario.PUT("/:id", hm.usuarioHandler.UpdateUsuario)
		usuario.PUT("/cambiarRol/:id", hm.usuarioHandler.CambiarRol)
		usuario.DELETE("/eliminar/:id", hm.usuarioHandler.DeleteUsuario)
	}

	rol := router.Group("/rol")
	{
		rol.GET("/roles", hm.rolHandler.ListRoles)
		rol.GET("/:id", hm.rolHandler.GetRol)
		rol.POST("/roles", hm.rolHandler.CreateRol)
		rol.PUT("/:id", hm.rolHandler.UpdateRol)
		rol.DELETE("/:id", hm.rolHandler.DeleteRol)
	}

	curso := router.Group("/curso")
	{
		curso.GET("/vercursos", hm.cursoHandler.ListCursos)
		curso.GET("/:id", hm.cursoHandler.GetCurso)
		curso.POST("/ingresarCurso", hm.cursoHandler.CreateCurso)
		curso.PUT("/:id", hm.cursoHandler.UpdateCurso)
		curso.DELETE("/eliminar/:id", hm.cursoHandler.DeleteCurso)
	}

	evaluacion := router.Group("/evaluacion")
	{
		evaluacion.GET("/evaluaciones", hm.evaluacionHandler.ListEvaluaciones)
		evaluacion.GET("/:id", hm.evaluacionHandler.GetEvaluacion)
		evaluacion.GET("/porCurso/:cursoId", hm.evaluacionHandler.ListByCurso)
		evaluacion.POST("/crearEvaluacion", hm.evaluacionHandler.CreateEvaluacion)
		evaluacion.PUT("/:id", hm.evaluacionHandler.UpdateEvaluacion)
		evaluacion.DELETE("/eliminar/:id", hm.evaluacionHandler.DeleteEvaluacion)
	}

	export := router.Group("/export")
	{
		export.GET("/catalogo", hm.exportHandler.ExportCatalogo)
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "platform-service",
	})
}
