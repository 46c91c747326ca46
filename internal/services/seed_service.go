package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
)

type seedService struct {
	repo             repositories.Repository
	logger           *slog.Logger
	defaultRolNombre string
}

func NewSeedService(repo repositories.Repository, logger *slog.Logger, defaultRolNombre string) SeedService {
	return &seedService{
		repo:             repo,
		logger:           logger,
		defaultRolNombre: defaultRolNombre,
	}
}

// Seed loads sample data for development environments. Each table is only
// seeded when it is empty, so restarts never duplicate rows.
func (s *seedService) Seed(ctx context.Context) error {
	return s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := s.seedRoles(ctx, txRepo); err != nil {
			return err
		}
		if err := s.seedUsuarios(ctx, txRepo); err != nil {
			return err
		}
		if err := s.seedCursos(ctx, txRepo); err != nil {
			return err
		}
		return s.seedEvaluaciones(ctx, txRepo)
	})
}

func (s *seedService) seedRoles(ctx context.Context, repo repositories.Repository) error {
	count, err := repo.Rol().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count roles: %w", err)
	}
	if count > 0 {
		return nil
	}

	nombres := []string{s.defaultRolNombre, "Profesor", "Administrador"}
	for _, nombre := range nombres {
		if err := repo.Rol().Create(ctx, &models.Rol{Nombre: nombre}); err != nil {
			return fmt.Errorf("failed to seed rol %s: %w", nombre, err)
		}
	}

	s.logger.InfoContext(ctx, "Roles seeded", "count", len(nombres))
	return nil
}

func (s *seedService) seedUsuarios(ctx context.Context, repo repositories.Repository) error {
	count, err := repo.Usuario().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	rol, err := repo.Rol().GetByNombre(ctx, s.defaultRolNombre)
	if err != nil {
		return fmt.Errorf("failed to resolve default rol: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("cambiame123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	usuarios := []*models.Usuario{
		{Nombre: "Valentina Rojas", Email: "valentina.rojas@example.cl", Password: string(hash), RolID: rol.ID},
		{Nombre: "Matías Fuentes", Email: "matias.fuentes@example.cl", Password: string(hash), RolID: rol.ID},
		{Nombre: "Camila Soto", Email: "camila.soto@example.cl", Password: string(hash), RolID: rol.ID},
	}
	for _, usuario := range usuarios {
		if err := repo.Usuario().Create(ctx, usuario); err != nil {
			return fmt.Errorf("failed to seed usuario %s: %w", usuario.Email, err)
		}
	}

	s.logger.InfoContext(ctx, "Usuarios seeded", "count", len(usuarios))
	return nil
}

func (s *seedService) seedCursos(ctx context.Context, repo repositories.Repository) error {
	count, err := repo.Curso().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cursos: %w", err)
	}
	if count > 0 {
		return nil
	}

	cursos := []*models.Curso{
		{
			Titulo:      "Introducción a la Programación",
			Categoria:   "Desarrollo",
			Descripcion: "Fundamentos de programación con ejercicios prácticos.",
			Instructor:  "Andrea Morales",
			Price:       49990,
			Popularidad: 4.6,
		},
		{
			Titulo:      "Análisis de Datos con Python",
			Categoria:   "Data Science",
			Descripcion: "Pandas, visualización y estadística aplicada.",
			Instructor:  "Jorge Castillo",
			Price:       59990,
			Popularidad: 4.8,
		},
		{
			Titulo:      "Fundamentos de Ciberseguridad",
			Categoria:   "Seguridad",
			Descripcion: "Conceptos esenciales para proteger sistemas y redes.",
			Instructor:  "Paula Herrera",
			Price:       39990,
			Popularidad: 4.3,
		},
	}
	for _, curso := range cursos {
		if err := repo.Curso().Create(ctx, curso); err != nil {
			return fmt.Errorf("failed to seed curso %s: %w", curso.Titulo, err)
		}
	}

	s.logger.InfoContext(ctx, "Cursos seeded", "count", len(cursos))
	return nil
}

func (s *seedService) seedEvaluaciones(ctx context.Context, repo repositories.Repository) error {
	count, err := repo.Evaluacion().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count evaluaciones: %w", err)
	}
	if count > 0 {
		return nil
	}

	cursos, err := repo.Curso().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cursos for seed: %w", err)
	}
	if len(cursos) == 0 {
		return nil
	}

	duracion := 90
	inicio := time.Now().AddDate(0, 0, 7)
	evaluaciones := []*models.Evaluacion{
		{
			Nombre:             "Prueba de Diagnóstico",
			Descripcion:        "Evaluación inicial del nivel del curso.",
			Tipo:               "diagnostico",
			Estado:             "programada",
			FechaInicio:        inicio,
			FechaTermino:       inicio.Add(2 * time.Hour),
			Duracion:           &duracion,
			CalificacionMaxima: 100,
			CursoID:            cursos[0].ID,
		},
		{
			Nombre:             "Examen Final",
			Descripcion:        "Evaluación sumativa de cierre.",
			Tipo:               "sumativa",
			Estado:             "programada",
			FechaInicio:        inicio.AddDate(0, 1, 0),
			FechaTermino:       inicio.AddDate(0, 1, 0).Add(3 * time.Hour),
			Duracion:           &duracion,
			CalificacionMaxima: 100,
			CursoID:            cursos[0].ID,
		},
	}
	for _, evaluacion := range evaluaciones {
		if err := repo.Evaluacion().Create(ctx, evaluacion); err != nil {
			return fmt.Errorf("failed to seed evaluacion %s: %w", evaluacion.Nombre, err)
		}
	}

	s.logger.InfoContext(ctx, "Evaluaciones seeded", "count", len(evaluaciones))
	return nil
}
