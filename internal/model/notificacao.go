package model

import (
	"time"

	"github.com/google/uuid"
)

// Notificacao registra um aviso gerado quando um lote entra num status que
// exige ação (alerta, distribuição, crítico). Criada pelo worker de
// notificações a partir da fila.
type Notificacao struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	LoteID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"not null"`
	Canal     string    `gorm:"not null;default:'app'"` // "app" | "email" | "sms" | "webhook"
	Mensagem  string
	CreatedAt time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
	Lote    *Lote    `gorm:"foreignKey:LoteID"`
}

// TableName overrides GORM's default pluralization.
func (Notificacao) TableName() string { return "notificacoes" }
