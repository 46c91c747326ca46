package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edu-tech-cl/platform-service/internal/cache"
	"github.com/edu-tech-cl/platform-service/internal/models"
	"github.com/edu-tech-cl/platform-service/internal/repositories"
)

type CursoPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewCursoPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.CursoRepository {
	return &CursoPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new course and invalidates catalog caches
func (c *CursoPostgreSQL) Create(ctx context.Context, curso *models.Curso) error {
	if err := c.db.WithContext(ctx).Create(curso).Error; err != nil {
		return fmt.Errorf("failed to create curso: %w", err)
	}

	cache.SafeInvalidatePattern(ctx, c.cacheManager.Curso, "list:*")

	return nil
}

// GetByID retrieves a course by ID with caching
func (c *CursoPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Curso, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var curso models.Curso

	err := c.cacheManager.Curso.CacheOrExecute(ctx, cacheKey, &curso, cache.CursoCacheConfig.TTL, func() (interface{}, error) {
		var dbCurso models.Curso
		if err := c.db.WithContext(ctx).First(&dbCurso, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get curso: %w", err)
		}
		return &dbCurso, nil
	})
	if err != nil {
		return nil, err
	}

	return &curso, nil
}

// List retrieves the full course catalog
func (c *CursoPostgreSQL) List(ctx context.Context) ([]*models.Curso, error) {
	var cursos []*models.Curso
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&cursos).Error; err != nil {
		return nil, fmt.Errorf("failed to list cursos: %w", err)
	}

	return cursos, nil
}

// Update persists course changes and invalidates cached views
func (c *CursoPostgreSQL) Update(ctx context.Context, curso *models.Curso) error {
	if err := c.db.WithContext(ctx).Save(curso).Error; err != nil {
		return fmt.Errorf("failed to update curso: %w", err)
	}

	cache.InvalidateCursoCache(ctx, c.cacheManager, curso.ID)

	return nil
}

// Delete hard deletes a course
func (c *CursoPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&models.Curso{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete curso: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.InvalidateCursoCache(ctx, c.cacheManager, id)

	return nil
}

// ExistsByID checks whether a course exists
func (c *CursoPostgreSQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.Curso{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check curso existence: %w", err)
	}

	return count > 0, nil
}

// Count returns the total number of courses
func (c *CursoPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&models.Curso{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cursos: %w", err)
	}

	return count, nil
}
