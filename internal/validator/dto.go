package validator

import "time"

// RolRequest represents the request structure for creating and updating roles
type RolRequest struct {
	Nombre string `json:"nombre" validate:"required,nombre_rol"`
}

// UsuarioCreateRequest represents the request structure for registering users
type UsuarioCreateRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UsuarioUpdateRequest represents the request structure for updating users.
// Pointer fields distinguish "not sent" from "set to empty".
type UsuarioUpdateRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// CambiarRolRequest carries the target role name for a role change
type CambiarRolRequest struct {
	NewRoleName string `json:"newRoleName" form:"newRoleName" validate:"required,nombre_rol"`
}

// CursoRequest represents the request structure for creating and updating courses
type CursoRequest struct {
	Titulo      string  `json:"titulo" validate:"required,min=1,max=200"`
	Categoria   string  `json:"categoria" validate:"omitempty,max=100"`
	Descripcion string  `json:"descripcion" validate:"omitempty,max=2000"`
	Instructor  string  `json:"instructor" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Popularidad float64 `json:"popularidad" validate:"gte=0"`
}

// EvaluacionRequest represents the request structure for creating and updating assessments
type EvaluacionRequest struct {
	Nombre             string    `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion        string    `json:"descripcion" validate:"omitempty,max=2000"`
	Tipo               string    `json:"tipo" validate:"omitempty,max=50"`
	Estado             string    `json:"estado" validate:"omitempty,max=50"`
	FechaInicio        time.Time `json:"fecha_inicio"`
	FechaTermino       time.Time `json:"fecha_termino"`
	Duracion           *int      `json:"duracion" validate:"omitempty,gte=1"`
	CalificacionMaxima float64   `json:"calificacion_maxima" validate:"gte=0"`
	CursoID            uint      `json:"curso_id" validate:"required"`
}
