package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

type rolService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewRolService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) RolService {
	return &rolService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *rolService) Create(ctx context.Context, req *validator.RolRequest) (*models.Rol, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	rol := &models.Rol{
		Nombre: req.Nombre,
	}

	if err := s.repo.Rol().Create(ctx, rol); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("rol", "nombre", req.Nombre)
		}
		return nil, fmt.Errorf("failed to create rol: %w", err)
	}

	s.logger.InfoContext(ctx, "Rol created", "rol_id", rol.ID, "nombre", rol.Nombre)

	return rol, nil
}

func (s *rolService) GetByID(ctx context.Context, id uint) (*models.Rol, error) {
	rol, err := s.repo.Rol().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRolNotFound
		}
		return nil, fmt.Errorf("failed to get rol: %w", err)
	}

	return rol, nil
}

func (s *rolService) GetByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	rol, err := s.repo.Rol().GetByNombre(ctx, nombre)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRolNotFound
		}
		return nil, fmt.Errorf("failed to get rol by nombre: %w", err)
	}

	return rol, nil
}

func (s *rolService) List(ctx context.Context) ([]*models.Rol, error) {
	roles, err := s.repo.Rol().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

func (s *rolService) Update(ctx context.Context, id uint, req *validator.RolRequest) (*models.Rol, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	rol, err := s.repo.Rol().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRolNotFound
		}
		return nil, fmt.Errorf("failed to get rol: %w", err)
	}

	rol.Nombre = req.Nombre

	if err := s.repo.Rol().Update(ctx, rol); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("rol", "nombre", req.Nombre)
		}
		return nil, fmt.Errorf("failed to update rol: %w", err)
	}

	s.logger.InfoContext(ctx, "Rol updated", "rol_id", rol.ID, "nombre", rol.Nombre)

	return rol, nil
}

// Delete removes a role if it exists and reports whether a row was deleted.
// A missing role is not an error.
func (s *rolService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.Rol().ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check rol existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.Rol().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		if repositories.IsForeignKeyError(err) {
			return false, NewConflictError("rol", "id", fmt.Sprintf("%d", id))
		}
		return false, fmt.Errorf("failed to delete rol: %w", err)
	}

	s.logger.InfoContext(ctx, "Rol deleted", "rol_id", id)

	return true, nil
}
