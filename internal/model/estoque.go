package model

import (
	"time"

	"github.com/google/uuid"
)

// EstoqueLote é o snapshot agregado de estoque de um lote. Mutado pelos
// colaboradores externos que registram vendas; o núcleo de precificação só lê.
type EstoqueLote struct {
	LoteID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuantidadeInicial int       `gorm:"not null;default:0"`
	QuantidadeAtual   int       `gorm:"not null;default:0"`
	VendidoTotal      int       `gorm:"not null;default:0"`
	AtualizadoEm      time.Time `gorm:"autoUpdateTime"`

	Lote *Lote `gorm:"foreignKey:LoteID"`
}

// TableName overrides GORM's default pluralization.
func (EstoqueLote) TableName() string { return "estoque_lote" }

// VendaDiaria acumula a quantidade vendida de um lote num dia de calendário.
type VendaDiaria struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LoteID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lote_data"`
	DataVenda  string    `gorm:"type:date;not null;uniqueIndex:idx_lote_data"` // YYYY-MM-DD
	Quantidade int       `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Lote *Lote `gorm:"foreignKey:LoteID"`
}

// TableName overrides GORM's default pluralization (venda_diarias → vendas_diarias).
func (VendaDiaria) TableName() string { return "vendas_diarias" }
