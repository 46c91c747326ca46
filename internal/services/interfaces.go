package services

import (
	"context"

	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

// RolService manages the role catalog.
type RolService interface {
	Create(ctx context.Context, req *validator.RolRequest) (*models.Rol, error)
	GetByID(ctx context.Context, id uint) (*models.Rol, error)
	GetByNombre(ctx context.Context, nombre string) (*models.Rol, error)
	List(ctx context.Context) ([]*models.Rol, error)
	Update(ctx context.Context, id uint, req *validator.RolRequest) (*models.Rol, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// UsuarioService manages platform users and their role assignment.
type UsuarioService interface {
	Create(ctx context.Context, req *validator.UsuarioCreateRequest) (*models.Usuario, error)
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	List(ctx context.Context) ([]*models.Usuario, error)
	Update(ctx context.Context, id uint, req *validator.UsuarioUpdateRequest) (*models.Usuario, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CambiarRol(ctx context.Context, id uint, newRoleName string) (*models.Usuario, error)
}

// CursoService manages the course catalog.
type CursoService interface {
	Create(ctx context.Context, req *validator.CursoRequest) (*models.Curso, error)
	GetByID(ctx context.Context, id uint) (*models.Curso, error)
	List(ctx context.Context) ([]*models.Curso, error)
	Update(ctx context.Context, id uint, req *validator.CursoRequest) (*models.Curso, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// EvaluacionService manages course assessments.
type EvaluacionService interface {
	Create(ctx context.Context, req *validator.EvaluacionRequest) (*models.Evaluacion, error)
	GetByID(ctx context.Context, id uint) (*models.Evaluacion, error)
	List(ctx context.Context) ([]*models.Evaluacion, error)
	ListByCurso(ctx context.Context, cursoID uint) ([]*models.Evaluacion, error)
	Update(ctx context.Context, id uint, req *validator.EvaluacionRequest) (*models.Evaluacion, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// ExportService produces spreadsheet exports of the catalog.
type ExportService interface {
	ExportCatalogo(ctx context.Context) ([]byte, error)
}

// SeedService loads development sample data.
type SeedService interface {
	Seed(ctx context.Context) error
}

// ServiceManager wires all services behind one lifecycle.
type ServiceManager interface {
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error

	Rol() RolService
	Usuario() UsuarioService
	Curso() CursoService
	Evaluacion() EvaluacionService
	Export() ExportService
	Seed() SeedService
}
