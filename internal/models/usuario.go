package models

import "time"

type Usuario struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email  string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`

	// Bcrypt hash, never serialized. The plaintext only exists inside
	// the registration/update request DTOs.
	Password string `json:"-" gorm:"not null;size:100"`

	RolID uint `json:"rol_id" gorm:"not null;index"`
	Rol   Rol  `json:"rol" gorm:"foreignKey:RolID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
