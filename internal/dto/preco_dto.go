package dto

import "github.com/shopspring/decimal"

// PrecoDinamicoRequest é o corpo do POST /v1/preco-dinamico.
type PrecoDinamicoRequest struct {
	LoteIDs []string `json:"loteIds" validate:"required,min=1,dive,uuid"`
}

// PrecoLoteResponse é o preço sugerido de um lote com o breakdown do cálculo.
type PrecoLoteResponse struct {
	LoteID           string          `json:"loteId"`
	NomeProduto      string          `json:"nomeProduto"`
	Categoria        string          `json:"categoria"`
	PrecoBase        decimal.Decimal `json:"precoBase"`
	PrecoSugerido    decimal.Decimal `json:"precoSugerido"`
	DiasParaVencer   int             `json:"diasParaVencer"`
	Demanda          string          `json:"demanda"`
	PercentualVendas decimal.Decimal `json:"percentualVendas"`
	DescontoValidade decimal.Decimal `json:"descontoValidade"`
	DescontoTotal    decimal.Decimal `json:"descontoTotal"`

	// Preenchidos apenas pela estratégia de impacto de mercado.
	PercentualRestante decimal.Decimal `json:"percentualRestante,omitempty"`
	Urgencia           float64         `json:"urgencia,omitempty"`
	ImpactoMercado     float64         `json:"impactoMercado,omitempty"`
	FatorAjuste        float64         `json:"fatorAjuste,omitempty"`
}

// PrecoDinamicoResponse é a resposta do cálculo sob demanda.
type PrecoDinamicoResponse struct {
	Total      int                 `json:"total"`
	Resultados []PrecoLoteResponse `json:"resultados"`
}
