package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateRolCache drops every cached view of a role after a write.
func InvalidateRolCache(ctx context.Context, cm *CacheManager, rolID uint, nombre string) {
	SafeDelete(ctx, cm.Rol,
		fmt.Sprintf("id:%d", rolID),
		fmt.Sprintf("nombre:%s", nombre))
	SafeInvalidatePattern(ctx, cm.Rol, "list:*")
}

// InvalidateCursoCache drops every cached view of a curso after a write.
func InvalidateCursoCache(ctx context.Context, cm *CacheManager, cursoID uint) {
	SafeDelete(ctx, cm.Curso, fmt.Sprintf("id:%d", cursoID))
	SafeInvalidatePattern(ctx, cm.Curso, "list:*")
}
