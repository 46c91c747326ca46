package models

import "time"

// Evaluacion is an assessment activity belonging to a curso.
// Estado is an uninterpreted label ("Pendiente", "Activo", "Finalizado",
// "Calificado"); no transition rules are enforced.
type Evaluacion struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Nombre             string    `json:"nombre" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Descripcion        string    `json:"descripcion" gorm:"type:text" validate:"max=2000"`
	Tipo               string    `json:"tipo" gorm:"size:100" validate:"max=100"`
	Estado             string    `json:"estado" gorm:"size:50" validate:"max=50"`
	FechaInicio        time.Time `json:"fecha_inicio"`
	FechaTermino       time.Time `json:"fecha_termino"`
	Duracion           *int      `json:"duracion" validate:"omitempty,min=1"`
	CalificacionMaxima float64   `json:"calificacion_maxima" validate:"min=0"`

	CursoID uint  `json:"curso_id" gorm:"column:curso_id;not null;index"`
	Curso   Curso `json:"curso" gorm:"foreignKey:CursoID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Evaluacion) TableName() string {
	return "evaluaciones"
}
