package repositories

import "context"

// Repository aggregates the per-entity repositories behind one interface.
type Repository interface {
	Rol() RolRepository
	Usuario() UsuarioRepository
	Curso() CursoRepository
	Evaluacion() EvaluacionRepository

	// WithTransaction runs fn against a repository bound to a single
	// database transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns the repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
