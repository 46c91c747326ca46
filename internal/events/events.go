package events

import (
	"time"

	"github.com/google/uuid"
)

// Event envelope published to the platform event stream.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

const (
	eventSource  = "platform-service"
	eventVersion = "1.0"
)

// Event types emitted by the service.
const (
	EventUsuarioCreated    = "usuario.created"
	EventUsuarioRolChanged = "usuario.rol_changed"
	EventUsuarioDeleted    = "usuario.deleted"
	EventCursoCreated      = "curso.created"
	EventCursoUpdated      = "curso.updated"
	EventCursoDeleted      = "curso.deleted"
	EventEvaluacionCreated = "evaluacion.created"
	EventEvaluacionDeleted = "evaluacion.deleted"
)

// NewEvent builds an event envelope with a fresh ID and timestamp.
func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// UsuarioEventData carries user identity without credentials.
type UsuarioEventData struct {
	UsuarioID uint   `json:"usuario_id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	RolNombre string `json:"rol_nombre,omitempty"`
}

// RolChangeEventData carries both sides of a role change.
type RolChangeEventData struct {
	UsuarioID   uint   `json:"usuario_id"`
	RolAnterior string `json:"rol_anterior"`
	RolNuevo    string `json:"rol_nuevo"`
	RolNuevoID  uint   `json:"rol_nuevo_id"`
}

// CursoEventData carries catalog entry identity.
type CursoEventData struct {
	CursoID uint   `json:"curso_id"`
	Titulo  string `json:"titulo"`
}

// EvaluacionEventData links an assessment to its course.
type EvaluacionEventData struct {
	EvaluacionID uint   `json:"evaluacion_id"`
	Nombre       string `json:"nombre"`
	CursoID      uint   `json:"curso_id"`
}
