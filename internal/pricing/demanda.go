package pricing

import "github.com/shopspring/decimal"

// Avaliacao é o rótulo discretizado da velocidade de vendas de um lote.
type Avaliacao string

const (
	DemandaBaixa      Avaliacao = "baixa"
	DemandaMedia      Avaliacao = "media"
	DemandaAlta       Avaliacao = "alta"
	DemandaIndefinida Avaliacao = "indefinido"
)

// MetricasEstoque é o agregado de estoque de um lote lido pelos cálculos.
type MetricasEstoque struct {
	TotalEstoque        int
	VendidoDesdeEntrada int
}

// OfertaDemanda é o resultado da classificação de oferta e demanda.
type OfertaDemanda struct {
	PercentualVendas decimal.Decimal
	Avaliacao        Avaliacao
}

// AvaliarOfertaDemanda classifica a demanda pelo percentual já vendido do
// estoque inicial. Com estoque total ≤ 0 retorna "indefinido" com percentual
// zero (proteção contra divisão por zero).
//
// Regra: ≤10% baixa, ≤20% média, >30% alta. A faixa (20,30] cai no fallback
// "média" de propósito — é o comportamento de produção, não um typo de ≤30.
func AvaliarOfertaDemanda(m MetricasEstoque) OfertaDemanda {
	if m.TotalEstoque <= 0 {
		return OfertaDemanda{PercentualVendas: decimal.Zero, Avaliacao: DemandaIndefinida}
	}

	percentual := decimal.NewFromInt(int64(m.VendidoDesdeEntrada)).
		Div(decimal.NewFromInt(int64(m.TotalEstoque))).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	avaliacao := DemandaMedia
	dez := decimal.NewFromInt(10)
	vinte := decimal.NewFromInt(20)
	trinta := decimal.NewFromInt(30)
	switch {
	case percentual.LessThanOrEqual(dez):
		avaliacao = DemandaBaixa
	case percentual.LessThanOrEqual(vinte):
		avaliacao = DemandaMedia
	case percentual.GreaterThan(trinta):
		avaliacao = DemandaAlta
	default:
		avaliacao = DemandaMedia
	}

	return OfertaDemanda{PercentualVendas: percentual, Avaliacao: avaliacao}
}
