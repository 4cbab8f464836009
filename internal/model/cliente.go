package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente representa um mercado parceiro dono de lotes.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClienteConfiguracao guarda os limiares de ativação por cliente, em
// percentual de dias restantes da validade. Campos nulos caem nos padrões
// (50/30/10). Dado de referência imutável para o núcleo: somente leitura.
type ClienteConfiguracao struct {
	ClienteID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PercentualDiasAlerta       *float64  `gorm:"type:decimal(5,2)"`
	PercentualDiasDistribuicao *float64  `gorm:"type:decimal(5,2)"`
	PercentualDiasCritico      *float64  `gorm:"type:decimal(5,2)"`
	UpdatedAt                  time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

// TableName overrides GORM's default pluralization.
func (ClienteConfiguracao) TableName() string { return "cliente_configuracao" }
