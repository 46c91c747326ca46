package repositories

import (
	"context"

	"github.com/edu-tech-cl/platform-service/internal/models"
)

// RolRepository provides persistence for roles.
type RolRepository interface {
	Create(ctx context.Context, rol *models.Rol) error
	GetByID(ctx context.Context, id uint) (*models.Rol, error)
	GetByNombre(ctx context.Context, nombre string) (*models.Rol, error)
	List(ctx context.Context) ([]*models.Rol, error)
	Update(ctx context.Context, rol *models.Rol) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UsuarioRepository provides persistence for platform users.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	List(ctx context.Context) ([]*models.Usuario, error)
	Update(ctx context.Context, usuario *models.Usuario) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CursoRepository provides persistence for courses.
type CursoRepository interface {
	Create(ctx context.Context, curso *models.Curso) error
	GetByID(ctx context.Context, id uint) (*models.Curso, error)
	List(ctx context.Context) ([]*models.Curso, error)
	Update(ctx context.Context, curso *models.Curso) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// EvaluacionRepository provides persistence for course assessments.
type EvaluacionRepository interface {
	Create(ctx context.Context, evaluacion *models.Evaluacion) error
	GetByID(ctx context.Context, id uint) (*models.Evaluacion, error)
	List(ctx context.Context) ([]*models.Evaluacion, error)
	ListByCurso(ctx context.Context, cursoID uint) ([]*models.Evaluacion, error)
	Update(ctx context.Context, evaluacion *models.Evaluacion) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
