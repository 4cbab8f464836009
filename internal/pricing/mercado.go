package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Estrategia seleciona o algoritmo de ajuste de mercado. As duas estratégias
// coexistem em produção: qual delas um chamador usa é escolha de configuração,
// não ambiguidade de comportamento.
type Estrategia string

const (
	// EstrategiaDemanda aplica um empurrão multiplicativo pelo rótulo de
	// demanda sobre o preço já descontado por validade.
	EstrategiaDemanda Estrategia = "demanda"
	// EstrategiaMercado aplica a fórmula contínua de impacto de mercado
	// (estoque restante + urgência de vencimento + peso de demanda).
	EstrategiaMercado Estrategia = "mercado"
)

// Parâmetros da fórmula contínua de impacto de mercado.
const (
	janelaUrgenciaDias = 30.0
	pesoImpacto        = 0.4
	fatorAjusteMinimo  = 0.6
	fatorAjusteMaximo  = 1.2
)

var (
	fatorDemandaBaixa = decimal.NewFromFloat(0.90)
)

// ResultadoMercado é o breakdown completo de um cálculo de preço de mercado.
// Efêmero: recalculado a cada chamada, nunca persistido pelo núcleo.
type ResultadoMercado struct {
	PrecoBase        decimal.Decimal
	PrecoSugerido    decimal.Decimal
	DiasParaVencer   int
	DescontoValidade decimal.Decimal // fração aplicada por validade
	OfertaDemanda    OfertaDemanda
	DescontoTotal    decimal.Decimal // % de desconto sobre o preço base

	// Preenchidos apenas pela EstrategiaMercado.
	PercentualRestante decimal.Decimal // % do estoque ainda disponível
	Urgencia           float64
	ImpactoMercado     float64
	FatorAjuste        float64
}

// CalcularPrecoMercado combina desconto por validade, avaliação de demanda e a
// estratégia de ajuste escolhida num preço final sugerido.
func CalcularPrecoMercado(precoBase decimal.Decimal, dataValidade time.Time, m MetricasEstoque, estrategia Estrategia, referencia time.Time) (ResultadoMercado, error) {
	base, err := CalcularPrecoValidade(precoBase, dataValidade, referencia)
	if err != nil {
		return ResultadoMercado{}, err
	}
	demanda := AvaliarOfertaDemanda(m)

	resultado := ResultadoMercado{
		PrecoBase:        precoBase,
		PrecoSugerido:    base.PrecoAtualizado,
		DiasParaVencer:   base.DiasParaVencer,
		DescontoValidade: base.DescontoAplicado,
		OfertaDemanda:    demanda,
		FatorAjuste:      1.0,
	}

	switch estrategia {
	case EstrategiaDemanda, "":
		ajustarPorDemanda(&resultado)
	case EstrategiaMercado:
		ajustarPorImpactoMercado(&resultado, m)
	default:
		return ResultadoMercado{}, fmt.Errorf("estratégia de preço desconhecida: %q", estrategia)
	}

	resultado.DescontoTotal = decimal.NewFromInt(1).
		Sub(resultado.PrecoSugerido.Div(precoBase)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return resultado, nil
}

// ajustarPorDemanda: demanda baixa ganha 10% de desconto adicional; demanda
// alta devolve o desconto na mesma proporção (÷0.90); média e indefinida não
// mexem no preço. Arredonda a 2 casas após cada passo.
func ajustarPorDemanda(r *ResultadoMercado) {
	switch r.OfertaDemanda.Avaliacao {
	case DemandaBaixa:
		r.PrecoSugerido = r.PrecoSugerido.Mul(fatorDemandaBaixa).Round(2)
	case DemandaAlta:
		r.PrecoSugerido = r.PrecoSugerido.Div(fatorDemandaBaixa).Round(2)
	}
}

// ajustarPorImpactoMercado aplica a fórmula contínua:
//
//	impacto = (percentualRestante×0.5 + urgência×0.5) × pesoDemanda
//	fator   = clamp(1 − impacto×0.4, 0.6, 1.2)
//
// Com estoque total ≤ 0 ou lote já vencido, curto-circuita devolvendo o preço
// de validade intacto com fator 1.0. A urgência NÃO é travada em zero para
// dias > 30: o valor negativo alarga a margem para o clamp posterior e é
// preservado de propósito.
func ajustarPorImpactoMercado(r *ResultadoMercado, m MetricasEstoque) {
	if m.TotalEstoque <= 0 || r.DiasParaVencer < 0 {
		return
	}

	restante := float64(m.TotalEstoque-m.VendidoDesdeEntrada) / float64(m.TotalEstoque)
	urgencia := math.Min(1, 1-float64(r.DiasParaVencer)/janelaUrgenciaDias)
	impacto := (restante*0.5 + urgencia*0.5) * pesoDemanda(r.OfertaDemanda.Avaliacao)

	fator := 1 - impacto*pesoImpacto
	if fator < fatorAjusteMinimo {
		fator = fatorAjusteMinimo
	}
	if fator > fatorAjusteMaximo {
		fator = fatorAjusteMaximo
	}

	r.PercentualRestante = decimal.NewFromFloat(restante * 100).Round(2)
	r.Urgencia = arredondar3(urgencia)
	r.ImpactoMercado = arredondar3(impacto)
	r.FatorAjuste = arredondar3(fator)
	r.PrecoSugerido = r.PrecoSugerido.Mul(decimal.NewFromFloat(fator)).Round(2)
}

// pesoDemanda mapeia o rótulo de demanda no peso do impacto de mercado.
// Rótulos não reconhecidos caem no peso de demanda média.
func pesoDemanda(a Avaliacao) float64 {
	switch a {
	case DemandaBaixa:
		return 1.0
	case DemandaAlta:
		return 0.6
	default:
		return 0.8
	}
}

func arredondar3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
