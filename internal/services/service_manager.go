package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edu-tech-cl/platform-service/internal/events"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
	"github.com/edu-tech-cl/platform-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	DefaultRolNombre string
	SeedEnabled      bool
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	repo           repositories.Repository
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
	config         ServiceManagerConfig

	rolService        RolService
	usuarioService    UsuarioService
	cursoService      CursoService
	evaluacionService EvaluacionService
	exportService     ExportService
	seedService       SeedService

	initialized bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, eventPublisher events.EventPublisher, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		repo:           repo,
		logger:         logger,
		validator:      validator,
		eventPublisher: eventPublisher,
		config:         config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.rolService = NewRolService(sm.repo, sm.logger, sm.validator)
	sm.usuarioService = NewUsuarioService(sm.repo, sm.logger, sm.validator, sm.eventPublisher, sm.config.DefaultRolNombre)
	sm.cursoService = NewCursoService(sm.repo, sm.logger, sm.validator, sm.eventPublisher)
	sm.evaluacionService = NewEvaluacionService(sm.repo, sm.logger, sm.validator, sm.eventPublisher)
	sm.exportService = NewExportService(sm.repo, sm.logger)
	sm.seedService = NewSeedService(sm.repo, sm.logger, sm.config.DefaultRolNombre)

	if sm.config.SeedEnabled {
		if err := sm.seedService.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// HealthCheck verifies the backing repository is reachable
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	return sm.repo.Ping(ctx)
}

// Shutdown releases service resources
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.eventPublisher != nil {
		if err := sm.eventPublisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.initialized = false

	return nil
}

// Service getters

func (sm *serviceManager) Rol() RolService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.rolService
}

func (sm *serviceManager) Usuario() UsuarioService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.usuarioService
}

func (sm *serviceManager) Curso() CursoService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.cursoService
}

func (sm *serviceManager) Evaluacion() EvaluacionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.evaluacionService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.exportService
}

func (sm *serviceManager) Seed() SeedService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.seedService
}
