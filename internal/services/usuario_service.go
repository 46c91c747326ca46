package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/edu-tech-cl/platform-service/internal/events"
	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

const usuarioEventsTopic = "platform.usuarios"

type usuarioService struct {
	repo             repositories.Repository
	logger           *slog.Logger
	validator        *validator.Validator
	eventPublisher   events.EventPublisher
	defaultRolNombre string
}

func NewUsuarioService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, eventPublisher events.EventPublisher, defaultRolNombre string) UsuarioService {
	return &usuarioService{
		repo:             repo,
		logger:           logger,
		validator:        validator,
		eventPublisher:   eventPublisher,
		defaultRolNombre: defaultRolNombre,
	}
}

// Create registers a new user with the default role. The default role must
// exist; registration fails without writing anything when it is missing.
func (s *usuarioService) Create(ctx context.Context, req *validator.UsuarioCreateRequest) (*models.Usuario, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Usuario().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, NewConflictError("usuario", "email", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var usuario *models.Usuario
	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		rol, err := txRepo.Rol().GetByNombre(ctx, s.defaultRolNombre)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return NewInvalidReferenceError("rol", s.defaultRolNombre)
			}
			return fmt.Errorf("failed to resolve default rol: %w", err)
		}

		usuario = &models.Usuario{
			Nombre:   req.Nombre,
			Email:    req.Email,
			Password: string(hash),
			RolID:    rol.ID,
			Rol:      *rol,
		}

		if err := txRepo.Usuario().Create(ctx, usuario); err != nil {
			if repositories.IsDuplicateError(err) {
				return NewConflictError("usuario", "email", req.Email)
			}
			return fmt.Errorf("failed to create usuario: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewEvent(events.EventUsuarioCreated, events.UsuarioEventData{
		UsuarioID: usuario.ID,
		Nombre:    usuario.Nombre,
		Email:     usuario.Email,
		RolNombre: usuario.Rol.Nombre,
	}))

	s.logger.InfoContext(ctx, "Usuario created", "usuario_id", usuario.ID, "rol", usuario.Rol.Nombre)

	return usuario, nil
}

func (s *usuarioService) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, err := s.repo.Usuario().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	return usuario, nil
}

func (s *usuarioService) List(ctx context.Context) ([]*models.Usuario, error) {
	usuarios, err := s.repo.Usuario().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	return usuarios, nil
}

func (s *usuarioService) Update(ctx context.Context, id uint, req *validator.UsuarioUpdateRequest) (*models.Usuario, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	usuario, err := s.repo.Usuario().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	if req.Nombre != nil {
		usuario.Nombre = *req.Nombre
	}
	if req.Email != nil && *req.Email != usuario.Email {
		exists, err := s.repo.Usuario().ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return nil, NewConflictError("usuario", "email", *req.Email)
		}
		usuario.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		usuario.Password = string(hash)
	}

	if err := s.repo.Usuario().Update(ctx, usuario); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("usuario", "email", usuario.Email)
		}
		return nil, fmt.Errorf("failed to update usuario: %w", err)
	}

	s.logger.InfoContext(ctx, "Usuario updated", "usuario_id", usuario.ID)

	return usuario, nil
}

// Delete removes a user if present and reports whether a row was deleted.
func (s *usuarioService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.repo.Usuario().ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check usuario existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.Usuario().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete usuario: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventUsuarioDeleted, events.UsuarioEventData{
		UsuarioID: id,
	}))

	s.logger.InfoContext(ctx, "Usuario deleted", "usuario_id", id)

	return true, nil
}

// CambiarRol reassigns a user to the role with the given name.
func (s *usuarioService) CambiarRol(ctx context.Context, id uint, newRoleName string) (*models.Usuario, error) {
	req := &validator.CambiarRolRequest{NewRoleName: newRoleName}
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	usuario, err := s.repo.Usuario().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	rol, err := s.repo.Rol().GetByNombre(ctx, newRoleName)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewInvalidReferenceError("rol", newRoleName)
		}
		return nil, fmt.Errorf("failed to get rol by nombre: %w", err)
	}

	rolAnterior := usuario.Rol.Nombre
	usuario.RolID = rol.ID
	usuario.Rol = *rol

	if err := s.repo.Usuario().Update(ctx, usuario); err != nil {
		return nil, fmt.Errorf("failed to change rol: %w", err)
	}

	s.publishEvent(ctx, events.NewEvent(events.EventUsuarioRolChanged, events.RolChangeEventData{
		UsuarioID:   usuario.ID,
		RolAnterior: rolAnterior,
		RolNuevo:    rol.Nombre,
		RolNuevoID:  rol.ID,
	}))

	s.logger.InfoContext(ctx, "Usuario rol changed",
		"usuario_id", usuario.ID,
		"rol_anterior", rolAnterior,
		"rol_nuevo", rol.Nombre)

	return usuario, nil
}

// publishEvent logs and swallows publish failures, the write has already
// committed.
func (s *usuarioService) publishEvent(ctx context.Context, event *events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, usuarioEventsTopic, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "error", err, "event_type", event.Type)
	}
}
