package dto

import "github.com/shopspring/decimal"

// LoteResponse é a projeção pública de um lote.
type LoteResponse struct {
	ID            string           `json:"id"`
	ClienteID     string           `json:"clienteId"`
	ProdutoID     string           `json:"produtoId"`
	NomeProduto   string           `json:"nomeProduto,omitempty"`
	DataColheita  *string          `json:"dataColheita,omitempty"`
	DataValidade  string           `json:"dataValidade"`
	PrecoBase     decimal.Decimal  `json:"precoBase"`
	Status        string           `json:"status"`
	PrecoSugerido *decimal.Decimal `json:"precoSugerido,omitempty"`
}

// LoteListResponse embrulha uma listagem de lotes.
type LoteListResponse struct {
	Total int            `json:"total"`
	Lotes []LoteResponse `json:"lotes"`
}

// TotalPorLote é uma linha dos agregados de estoque por lote de um cliente.
type TotalPorLote struct {
	LoteID string `json:"lote_id"`
	Total  int    `json:"total"`
}

// VendidoTotalResponse é a resposta do GET .../estoque/vendido-total.
type VendidoTotalResponse struct {
	TotalLotes int            `json:"totalLotes"`
	Vendidos   []TotalPorLote `json:"vendidos"`
}

// QuantidadeInicialResponse é a resposta do GET .../estoque/quantidade-inicial-total.
type QuantidadeInicialResponse struct {
	TotalLotes  int            `json:"totalLotes"`
	Quantidades []TotalPorLote `json:"quantidades"`
}
