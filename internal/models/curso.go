package models

import "time"

// Curso is a course offering in the catalog. It has no foreign keys;
// evaluaciones reference it from the other side.
type Curso struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Titulo      string  `json:"titulo" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Categoria   string  `json:"categoria" gorm:"size:100" validate:"max=100"`
	Descripcion string  `json:"descripcion" gorm:"type:text" validate:"max=2000"`
	Instructor  string  `json:"instructor" gorm:"size:100" validate:"max=100"`
	Price       float64 `json:"price" validate:"min=0"`
	Popularidad float64 `json:"popularidad" validate:"min=0,max=5"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Curso) TableName() string {
	return "cursos"
}
