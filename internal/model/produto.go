package model

import (
	"time"

	"github.com/google/uuid"
)

// Produto é o item perecível cadastrado; cada produto pode ter vários lotes.
type Produto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Categoria string    `gorm:"not null;default:'fruta'"` // "fruta" | "verdura" | "legume"
	CreatedAt time.Time
	UpdatedAt time.Time
}
