package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lote é um batch de um produto com validade e preço próprios. Status e preço
// sugerido são mutados apenas pelo classificador de status / job diário; a
// exclusão de lotes é preocupação externa.
type Lote struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProdutoID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DataColheita *time.Time `gorm:"type:date"`
	DataValidade time.Time  `gorm:"type:date;not null"`
	// Invariante pretendida: DataValidade ≥ DataColheita quando a colheita
	// está presente. Não validada defensivamente aqui.
	PrecoBase     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status        string           `gorm:"not null;default:'normal';index"`
	PrecoSugerido *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

// LoteStatusHistorico registra cada transição de status de um lote.
// Registros imutáveis — nunca se eliminam nem modificam.
type LoteStatusHistorico struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LoteID         uuid.UUID `gorm:"type:uuid;not null;index"`
	StatusAnterior string    `gorm:"not null"`
	StatusNovo     string    `gorm:"not null"`
	Motivo         string
	CreatedAt      time.Time

	Lote *Lote `gorm:"foreignKey:LoteID"`
}

// TableName overrides GORM's default pluralization.
func (LoteStatusHistorico) TableName() string { return "lote_status_historico" }
