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

type RolPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewRolPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.RolRepository {
	return &RolPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new role and invalidates list caches
func (r *RolPostgreSQL) Create(ctx context.Context, rol *models.Rol) error {
	if err := r.db.WithContext(ctx).Create(rol).Error; err != nil {
		return fmt.Errorf("failed to create rol: %w", err)
	}

	cache.SafeInvalidatePattern(ctx, r.cacheManager.Rol, "list:*")

	return nil
}

// GetByID retrieves a role by ID with caching
func (r *RolPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Rol, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var rol models.Rol

	err := r.cacheManager.Rol.CacheOrExecute(ctx, cacheKey, &rol, cache.RolCacheConfig.TTL, func() (interface{}, error) {
		var dbRol models.Rol
		if err := r.db.WithContext(ctx).First(&dbRol, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get rol: %w", err)
		}
		return &dbRol, nil
	})
	if err != nil {
		return nil, err
	}

	return &rol, nil
}

// GetByNombre retrieves a role by its unique name with caching
func (r *RolPostgreSQL) GetByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	cacheKey := fmt.Sprintf("nombre:%s", nombre)
	var rol models.Rol

	err := r.cacheManager.Rol.CacheOrExecute(ctx, cacheKey, &rol, cache.RolCacheConfig.TTL, func() (interface{}, error) {
		var dbRol models.Rol
		if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&dbRol).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get rol by nombre: %w", err)
		}
		return &dbRol, nil
	})
	if err != nil {
		return nil, err
	}

	return &rol, nil
}

// List retrieves all roles ordered by ID
func (r *RolPostgreSQL) List(ctx context.Context) ([]*models.Rol, error) {
	var roles []*models.Rol
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

// Update persists role changes and invalidates cached views
func (r *RolPostgreSQL) Update(ctx context.Context, rol *models.Rol) error {
	if err := r.db.WithContext(ctx).Save(rol).Error; err != nil {
		return fmt.Errorf("failed to update rol: %w", err)
	}

	cache.InvalidateRolCache(ctx, r.cacheManager, rol.ID, rol.Nombre)

	return nil
}

// Delete hard deletes a role
func (r *RolPostgreSQL) Delete(ctx context.Context, id uint) error {
	// Fetch the nombre first so the nombre: cache key can be dropped too.
	var rol models.Rol
	if err := r.db.WithContext(ctx).Select("id, nombre").First(&rol, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repositories.ErrNotFound
		}
		return fmt.Errorf("failed to get rol before delete: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&models.Rol{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete rol: %w", err)
	}

	cache.InvalidateRolCache(ctx, r.cacheManager, rol.ID, rol.Nombre)

	return nil
}

// ExistsByID checks whether a role exists
func (r *RolPostgreSQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Rol{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check rol existence: %w", err)
	}

	return count > 0, nil
}

// Count returns the total number of roles
func (r *RolPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Rol{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}

	return count, nil
}
