package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	rol        *mockRolRepo
	usuario    *mockUsuarioRepo
	curso      *mockCursoRepo
	evaluacion *mockEvaluacionRepo
}

func newMockRepository() *mockRepository {
	m := &mockRepository{
		rol:        &mockRolRepo{roles: make(map[uint]*models.Rol)},
		usuario:    &mockUsuarioRepo{usuarios: make(map[uint]*models.Usuario)},
		curso:      &mockCursoRepo{cursos: make(map[uint]*models.Curso)},
		evaluacion: &mockEvaluacionRepo{evaluaciones: make(map[uint]*models.Evaluacion)},
	}
	m.usuario.roles = m.rol
	return m
}

func (m *mockRepository) Rol() repositories.RolRepository               { return m.rol }
func (m *mockRepository) Usuario() repositories.UsuarioRepository       { return m.usuario }
func (m *mockRepository) Curso() repositories.CursoRepository           { return m.curso }
func (m *mockRepository) Evaluacion() repositories.EvaluacionRepository { return m.evaluacion }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// mockRolRepo

type mockRolRepo struct {
	roles  map[uint]*models.Rol
	nextID uint
}

func (r *mockRolRepo) Create(ctx context.Context, rol *models.Rol) error {
	for _, existing := range r.roles {
		if existing.Nombre == rol.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	rol.ID = r.nextID
	copied := *rol
	r.roles[rol.ID] = &copied
	return nil
}

func (r *mockRolRepo) GetByID(ctx context.Context, id uint) (*models.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *rol
	return &copied, nil
}

func (r *mockRolRepo) GetByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	for _, rol := range r.roles {
		if rol.Nombre == nombre {
			copied := *rol
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockRolRepo) List(ctx context.Context) ([]*models.Rol, error) {
	out := make([]*models.Rol, 0, len(r.roles))
	for _, rol := range r.roles {
		copied := *rol
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockRolRepo) Update(ctx context.Context, rol *models.Rol) error {
	if _, ok := r.roles[rol.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, existing := range r.roles {
		if existing.ID != rol.ID && existing.Nombre == rol.Nombre {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *rol
	r.roles[rol.ID] = &copied
	return nil
}

func (r *mockRolRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.roles[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *mockRolRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.roles[id]
	return ok, nil
}

func (r *mockRolRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

// mockUsuarioRepo

type mockUsuarioRepo struct {
	usuarios map[uint]*models.Usuario
	roles    *mockRolRepo
	nextID   uint
}

func (r *mockUsuarioRepo) withRol(usuario *models.Usuario) *models.Usuario {
	copied := *usuario
	if rol, ok := r.roles.roles[usuario.RolID]; ok {
		copied.Rol = *rol
	}
	return &copied
}

func (r *mockUsuarioRepo) Create(ctx context.Context, usuario *models.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Email == usuario.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	usuario.ID = r.nextID
	copied := *usuario
	copied.Rol = models.Rol{}
	r.usuarios[usuario.ID] = &copied
	return nil
}

func (r *mockUsuarioRepo) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.withRol(usuario), nil
}

func (r *mockUsuarioRepo) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			return r.withRol(usuario), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockUsuarioRepo) List(ctx context.Context) ([]*models.Usuario, error) {
	out := make([]*models.Usuario, 0, len(r.usuarios))
	for _, usuario := range r.usuarios {
		out = append(out, r.withRol(usuario))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockUsuarioRepo) Update(ctx context.Context, usuario *models.Usuario) error {
	if _, ok := r.usuarios[usuario.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, existing := range r.usuarios {
		if existing.ID != usuario.ID && existing.Email == usuario.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *usuario
	copied.Rol = models.Rol{}
	r.usuarios[usuario.ID] = &copied
	return nil
}

func (r *mockUsuarioRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.usuarios[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.usuarios, id)
	return nil
}

func (r *mockUsuarioRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.usuarios[id]
	return ok, nil
}

func (r *mockUsuarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUsuarioRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

// mockCursoRepo

type mockCursoRepo struct {
	cursos map[uint]*models.Curso
	nextID uint
}

func (r *mockCursoRepo) Create(ctx context.Context, curso *models.Curso) error {
	r.nextID++
	curso.ID = r.nextID
	copied := *curso
	r.cursos[curso.ID] = &copied
	return nil
}

func (r *mockCursoRepo) GetByID(ctx context.Context, id uint) (*models.Curso, error) {
	curso, ok := r.cursos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *curso
	return &copied, nil
}

func (r *mockCursoRepo) List(ctx context.Context) ([]*models.Curso, error) {
	out := make([]*models.Curso, 0, len(r.cursos))
	for _, curso := range r.cursos {
		copied := *curso
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockCursoRepo) Update(ctx context.Context, curso *models.Curso) error {
	if _, ok := r.cursos[curso.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *curso
	r.cursos[curso.ID] = &copied
	return nil
}

func (r *mockCursoRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.cursos[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.cursos, id)
	return nil
}

func (r *mockCursoRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.cursos[id]
	return ok, nil
}

func (r *mockCursoRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.cursos)), nil
}

// mockEvaluacionRepo

type mockEvaluacionRepo struct {
	evaluaciones map[uint]*models.Evaluacion
	nextID       uint
}

func (r *mockEvaluacionRepo) Create(ctx context.Context, evaluacion *models.Evaluacion) error {
	r.nextID++
	evaluacion.ID = r.nextID
	copied := *evaluacion
	copied.Curso = models.Curso{}
	r.evaluaciones[evaluacion.ID] = &copied
	return nil
}

func (r *mockEvaluacionRepo) GetByID(ctx context.Context, id uint) (*models.Evaluacion, error) {
	evaluacion, ok := r.evaluaciones[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *evaluacion
	return &copied, nil
}

func (r *mockEvaluacionRepo) List(ctx context.Context) ([]*models.Evaluacion, error) {
	out := make([]*models.Evaluacion, 0, len(r.evaluaciones))
	for _, evaluacion := range r.evaluaciones {
		copied := *evaluacion
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockEvaluacionRepo) ListByCurso(ctx context.Context, cursoID uint) ([]*models.Evaluacion, error) {
	var out []*models.Evaluacion
	for _, evaluacion := range r.evaluaciones {
		if evaluacion.CursoID == cursoID {
			copied := *evaluacion
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockEvaluacionRepo) Update(ctx context.Context, evaluacion *models.Evaluacion) error {
	if _, ok := r.evaluaciones[evaluacion.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *evaluacion
	copied.Curso = models.Curso{}
	r.evaluaciones[evaluacion.ID] = &copied
	return nil
}

func (r *mockEvaluacionRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.evaluaciones[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.evaluaciones, id)
	return nil
}

func (r *mockEvaluacionRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.evaluaciones[id]
	return ok, nil
}

func (r *mockEvaluacionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.evaluaciones)), nil
}
