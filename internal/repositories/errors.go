package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by GetBy* methods when no row matches.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err is a missing-row condition, either
// our sentinel or the raw GORM error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err is a unique-constraint violation
// (duplicate email, duplicate role name).
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyError reports whether err is a foreign-key violation, e.g.
// deleting a role that users still reference.
func IsForeignKeyError(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
