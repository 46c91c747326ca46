package models

import "time"

// Rol is a role label assigned to platform users (e.g. "Estudiante", "ADMIN").
type Rol struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rol) TableName() string {
	return "roles"
}
