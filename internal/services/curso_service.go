package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edu-tech-cl/platform-service/internal/events"
	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

const cursoEventsTopic = "platform.cursos"

type cursoService struct {
	repo           repositories.Repository
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewCursoService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, eventPublisher events.EventPublisher) CursoService {
	return &cursoService{
		repo:           repo,
		logger:         logger,
		validator:      validator,
		eventPublisher: eventPublisher,
	}
}

func (s *cursoService) Create(ctx context.Context, req *validator.CursoRequest) (*models.Curso, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	curso := &models.Curso{
		Titulo:      req.Titulo,
		Categoria:   req.Categoria,
		Descripcion: req.Descripcion,
		Instructor:  req.Instructor,
		Price:       req.Price,
		Popularidad: req.Popularidad,
	}

	if err := s.repo.Curso().Create(ctx, curso); err != nil {
		return nil, fmt.Errorf("failed to create curso: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventCursoCreated, events.CursoEventData{
		CursoID: curso.ID,
		Titulo:  curso.Titulo,
	}))

	s.logger.InfoContext(ctx, "Curso created", "curso_id", curso.ID, "titulo", curso.Titulo)

	return curso, nil
}

func (s *cursoService) GetByID(ctx context.Context, id uint) (*models.Curso, error) {
	curso, err := s.repo.Curso().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCursoNotFound
		}
		return nil, fmt.Errorf("failed to get curso: %w", err)
	}

	return curso, nil
}

func (s *cursoService) List(ctx context.Context) ([]*models.Curso, error) {
	cursos, err := s.repo.Curso().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cursos: %w", err)
	}

	return cursos, nil
}

// Update replaces every mutable field of an existing course.
func (s *cursoService) Update(ctx context.Context, id uint, req *validator.CursoRequest) (*models.Curso, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	curso, err := s.repo.Curso().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCursoNotFound
		}
		return nil, fmt.Errorf("failed to get curso: %w", err)
	}

	curso.Titulo = req.Titulo
	curso.Categoria = req.Categoria
	curso.Descripcion = req.Descripcion
	curso.Instructor = req.Instructor
	curso.Price = req.Price
	curso.Popularidad = req.Popularidad

	if err := s.repo.Curso().Update(ctx, curso); err != nil {
		return nil, fmt.Errorf("failed to update curso: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventCursoUpdated, events.CursoEventData{
		CursoID: curso.ID,
		Titulo:  curso.Titulo,
	}))

	s.logger.InfoContext(ctx, "Curso updated", "curso_id", curso.ID)

	return curso, nil
}

// Delete removes a course if present and reports whether a row was deleted.
func (s *cursoService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.Curso().ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check curso existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.Curso().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		if repositories.IsForeignKeyError(err) {
			return false, NewConflictError("curso", "id", fmt.Sprintf("%d", id))
		}
		return false, fmt.Errorf("failed to delete curso: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventCursoDeleted, events.CursoEventData{
		CursoID: id,
	}))

	s.logger.InfoContext(ctx, "Curso deleted", "curso_id", id)

	return true, nil
}

func (s *cursoService) publishEvent(ctx context.Context, event *events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, cursoEventsTopic, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "error", err, "event_type", event.Type)
	}
}
