package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
)

type EvaluacionPostgreSQL struct {
	db *gorm.DB
}

func NewEvaluacionPostgreSQL(db *gorm.DB) repositories.EvaluacionRepository {
	return &EvaluacionPostgreSQL{db: db}
}

// Create inserts a new assessment
func (e *EvaluacionPostgreSQL) Create(ctx context.Context, evaluacion *models.Evaluacion) error {
	if err := e.db.WithContext(ctx).Omit("Curso").Create(evaluacion).Error; err != nil {
		return fmt.Errorf("failed to create evaluacion: %w", err)
	}

	return nil
}

// GetByID retrieves an assessment by ID with its course preloaded
func (e *EvaluacionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Evaluacion, error) {
	var evaluacion models.Evaluacion
	err := e.db.WithContext(ctx).
		Preload("Curso").
		First(&evaluacion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluacion: %w", err)
	}

	return &evaluacion, nil
}

// List retrieves all assessments with their courses preloaded
func (e *EvaluacionPostgreSQL) List(ctx context.Context) ([]*models.Evaluacion, error) {
	var evaluaciones []*models.Evaluacion
	err := e.db.WithContext(ctx).
		Preload("Curso").
		Order("id ASC").
		Find(&evaluaciones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluaciones: %w", err)
	}

	return evaluaciones, nil
}

// ListByCurso retrieves the assessments belonging to one course
func (e *EvaluacionPostgreSQL) ListByCurso(ctx context.Context, cursoID uint) ([]*models.Evaluacion, error) {
	var evaluaciones []*models.Evaluacion
	err := e.db.WithContext(ctx).
		Where("curso_id = ?", cursoID).
		Order("fecha_inicio ASC").
		Find(&evaluaciones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluaciones by curso: %w", err)
	}

	return evaluaciones, nil
}

// Update persists assessment changes
func (e *EvaluacionPostgreSQL) Update(ctx context.Context, evaluacion *models.Evaluacion) error {
	if err := e.db.WithContext(ctx).Omit("Curso").Save(evaluacion).Error; err != nil {
		return fmt.Errorf("failed to update evaluacion: %w", err)
	}

	return nil
}

// Delete hard deletes an assessment
func (e *EvaluacionPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := e.db.WithContext(ctx).Delete(&models.Evaluacion{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete evaluacion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

// ExistsByID checks whether an assessment exists
func (e *EvaluacionPostgreSQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := e.db.WithContext(ctx).
		Model(&models.Evaluacion{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check evaluacion existence: %w", err)
	}

	return count > 0, nil
}

// Count returns the total number of assessments
func (e *EvaluacionPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := e.db.WithContext(ctx).Model(&models.Evaluacion{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count evaluaciones: %w", err)
	}

	return count, nil
}
