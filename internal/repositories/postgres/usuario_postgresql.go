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

type UsuarioPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUsuarioPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.UsuarioRepository {
	return &UsuarioPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new user. The Rol association is never written here,
// only the rol_id column.
func (u *UsuarioPostgreSQL) Create(ctx context.Context, usuario *models.Usuario) error {
	if err := u.db.WithContext(ctx).Omit("Rol").Create(usuario).Error; err != nil {
		return fmt.Errorf("failed to create usuario: %w", err)
	}

	cache.SafeInvalidatePattern(ctx, u.cacheManager.Usuario, "list:*")

	return nil
}

// GetByID retrieves a user by ID with the role preloaded
func (u *UsuarioPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := u.db.WithContext(ctx).
		Preload("Rol").
		First(&usuario, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	return &usuario, nil
}

// GetByEmail retrieves a user by their unique email
func (u *UsuarioPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := u.db.WithContext(ctx).
		Preload("Rol").
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get usuario by email: %w", err)
	}

	return &usuario, nil
}

// List retrieves all users with their roles preloaded
func (u *UsuarioPostgreSQL) List(ctx context.Context) ([]*models.Usuario, error) {
	var usuarios []*models.Usuario
	err := u.db.WithContext(ctx).
		Preload("Rol").
		Order("id ASC").
		Find(&usuarios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	return usuarios, nil
}

// Update persists user changes
func (u *UsuarioPostgreSQL) Update(ctx context.Context, usuario *models.Usuario) error {
	if err := u.db.WithContext(ctx).Omit("Rol").Save(usuario).Error; err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	cache.SafeDelete(ctx, u.cacheManager.Usuario, fmt.Sprintf("id:%d", usuario.ID))
	cache.SafeInvalidatePattern(ctx, u.cacheManager.Usuario, "list:*")

	return nil
}

// Delete hard deletes a user
func (u *UsuarioPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := u.db.WithContext(ctx).Delete(&models.Usuario{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete usuario: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}

	cache.SafeDelete(ctx, u.cacheManager.Usuario, fmt.Sprintf("id:%d", id))
	cache.SafeInvalidatePattern(ctx, u.cacheManager.Usuario, "list:*")

	return nil
}

// ExistsByID checks whether a user exists
func (u *UsuarioPostgreSQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check usuario existence: %w", err)
	}

	return count > 0, nil
}

// ExistsByEmail checks whether a user with the given email exists
func (u *UsuarioPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check usuario email: %w", err)
	}

	return count > 0, nil
}

// Count returns the total number of users
func (u *UsuarioPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := u.db.WithContext(ctx).Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count usuarios: %w", err)
	}

	return count, nil
}
