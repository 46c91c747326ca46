package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for missing resources, mapped to 404 at the HTTP layer.
var (
	ErrRolNotFound        = errors.New("rol not found")
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrCursoNotFound      = errors.New("curso not found")
	ErrEvaluacionNotFound = errors.New("evaluacion not found")
)

// InvalidReferenceError reports a request that names a related resource
// which does not exist, mapped to 400 at the HTTP layer.
type InvalidReferenceError struct {
	Resource  string
	Reference string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid %s reference: %s", e.Resource, e.Reference)
}

func NewInvalidReferenceError(resource, reference string) *InvalidReferenceError {
	return &InvalidReferenceError{
		Resource:  resource,
		Reference: reference,
	}
}

// ConflictError reports a uniqueness violation, mapped to 409 at the
// HTTP layer.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.Resource, e.Field, e.Value)
}

func NewConflictError(resource, field, value string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Field:    field,
		Value:    value,
	}
}
