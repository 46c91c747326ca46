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

const evaluacionEventsTopic = "platform.evaluaciones"

type evaluacionService struct {
	repo           repositories.Repository
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewEvaluacionService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, eventPublisher events.EventPublisher) EvaluacionService {
	return &evaluacionService{
		repo:           repo,
		logger:         logger,
		validator:      validator,
		eventPublisher: eventPublisher,
	}
}

// Create stores a new assessment. The referenced course must exist.
func (s *evaluacionService) Create(ctx context.Context, req *validator.EvaluacionRequest) (*models.Evaluacion, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if err := s.checkCursoReference(ctx, req.CursoID); err != nil {
		return nil, err
	}

	evaluacion := &models.Evaluacion{
		Nombre:             req.Nombre,
		Descripcion:        req.Descripcion,
		Tipo:               req.Tipo,
		Estado:             req.Estado,
		FechaInicio:        req.FechaInicio,
		FechaTermino:       req.FechaTermino,
		Duracion:           req.Duracion,
		CalificacionMaxima: req.CalificacionMaxima,
		CursoID:            req.CursoID,
	}

	if err := s.repo.Evaluacion().Create(ctx, evaluacion); err != nil {
		if repositories.IsForeignKeyError(err) {
			return nil, NewInvalidReferenceError("curso", fmt.Sprintf("%d", req.CursoID))
		}
		return nil, fmt.Errorf("failed to create evaluacion: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventEvaluacionCreated, events.EvaluacionEventData{
		EvaluacionID: evaluacion.ID,
		Nombre:       evaluacion.Nombre,
		CursoID:      evaluacion.CursoID,
	}))

	s.logger.InfoContext(ctx, "Evaluacion created",
		"evaluacion_id", evaluacion.ID,
		"curso_id", evaluacion.CursoID)

	return evaluacion, nil
}

func (s *evaluacionService) GetByID(ctx context.Context, id uint) (*models.Evaluacion, error) {
	evaluacion, err := s.repo.Evaluacion().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrEvaluacionNotFound
		}
		return nil, fmt.Errorf("failed to get evaluacion: %w", err)
	}

	return evaluacion, nil
}

func (s *evaluacionService) List(ctx context.Context) ([]*models.Evaluacion, error) {
	evaluaciones, err := s.repo.Evaluacion().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluaciones: %w", err)
	}

	return evaluaciones, nil
}

// ListByCurso returns the assessments of one course. The course must exist.
func (s *evaluacionService) ListByCurso(ctx context.Context, cursoID uint) ([]*models.Evaluacion, error) {
	exists, err := s.repo.Curso().ExistsByID(ctx, cursoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check curso existence: %w", err)
	}
	if !exists {
		return nil, ErrCursoNotFound
	}

	evaluaciones, err := s.repo.Evaluacion().ListByCurso(ctx, cursoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluaciones by curso: %w", err)
	}

	return evaluaciones, nil
}

// Update replaces every mutable field of an existing assessment, including
// the course reference.
func (s *evaluacionService) Update(ctx context.Context, id uint, req *validator.EvaluacionRequest) (*models.Evaluacion, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	evaluacion, err := s.repo.Evaluacion().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrEvaluacionNotFound
		}
		return nil, fmt.Errorf("failed to get evaluacion: %w", err)
	}

	if req.CursoID != evaluacion.CursoID {
		if err := s.checkCursoReference(ctx, req.CursoID); err != nil {
			return nil, err
		}
	}

	evaluacion.Nombre = req.Nombre
	evaluacion.Descripcion = req.Descripcion
	evaluacion.Tipo = req.Tipo
	evaluacion.Estado = req.Estado
	evaluacion.FechaInicio = req.FechaInicio
	evaluacion.FechaTermino = req.FechaTermino
	evaluacion.Duracion = req.Duracion
	evaluacion.CalificacionMaxima = req.CalificacionMaxima
	evaluacion.CursoID = req.CursoID
	evaluacion.Curso = models.Curso{}

	if err := s.repo.Evaluacion().Update(ctx, evaluacion); err != nil {
		if repositories.IsForeignKeyError(err) {
			return nil, NewInvalidReferenceError("curso", fmt.Sprintf("%d", req.CursoID))
		}
		return nil, fmt.Errorf("failed to update evaluacion: %w", err)
	}

	s.logger.InfoContext(ctx, "Evaluacion updated", "evaluacion_id", evaluacion.ID)

	return evaluacion, nil
}

// Delete removes an assessment if present and reports whether a row was
// deleted.
func (s *evaluacionService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.Evaluacion().ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check evaluacion existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.Evaluacion().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete evaluacion: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventEvaluacionDeleted, events.EvaluacionEventData{
		EvaluacionID: id,
	}))

	s.logger.InfoContext(ctx, "Evaluacion deleted", "evaluacion_id", id)

	return true, nil
}

func (s *evaluacionService) checkCursoReference(ctx context.Context, cursoID uint) error {
	exists, err := s.repo.Curso().ExistsByID(ctx, cursoID)
	if err != nil {
		return fmt.Errorf("failed to check curso existence: %w", err)
	}
	if !exists {
		return NewInvalidReferenceError("curso", fmt.Sprintf("%d", cursoID))
	}

	return nil
}

func (s *evaluacionService) publishEvent(ctx context.Context, event *events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evaluacionEventsTopic, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "error", err, "event_type", event.Type)
	}
}
