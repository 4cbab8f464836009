package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProbabilidadeNeutra é a probabilidade assumida quando nenhum modelo de
// demanda está disponível.
const ProbabilidadeNeutra = 0.5

// FeaturesDemanda são as features consumidas pelo scorer de demanda.
type FeaturesDemanda struct {
	DiasRestantes  int
	EstoqueVendido int // percentual 0–100 do estoque já vendido
	Demanda        Avaliacao
	Categoria      string // fruta | verdura | legume
	PrecoBase      decimal.Decimal
}

// DemandScorer é o colaborador opcional que estima a probabilidade de um lote
// vender todo o estoque antes de vencer. A origem da probabilidade (modelo
// estatístico externo) está fora deste núcleo; aqui ela é só um escalar [0,1].
type DemandScorer interface {
	Predict(ctx context.Context, f FeaturesDemanda) (float64, error)
}

// ScorerNeutro é a implementação padrão quando o modelo externo não está
// disponível: devolve sempre a probabilidade neutra.
type ScorerNeutro struct{}

func (ScorerNeutro) Predict(context.Context, FeaturesDemanda) (float64, error) {
	return ProbabilidadeNeutra, nil
}

// FatorProbabilidade discretiza a probabilidade num multiplicador extra
// aplicado sobre o preço já ajustado pelo mercado. A tabela é contrato
// público:
//
//	≥ 0.75 → ×1.00    ≥ 0.50 → ×0.90    ≥ 0.25 → ×0.75    senão → ×0.60
func FatorProbabilidade(probabilidade float64) decimal.Decimal {
	switch {
	case probabilidade >= 0.75:
		return decimal.NewFromInt(1)
	case probabilidade >= 0.50:
		return decimal.NewFromFloat(0.90)
	case probabilidade >= 0.25:
		return decimal.NewFromFloat(0.75)
	default:
		return decimal.NewFromFloat(0.60)
	}
}

// AplicarProbabilidade aplica o multiplicador discretizado sobre um preço já
// ajustado, arredondando a 2 casas.
func AplicarProbabilidade(preco decimal.Decimal, probabilidade float64) decimal.Decimal {
	return preco.Mul(FatorProbabilidade(probabilidade)).Round(2)
}

// DescontoIdealPercent devolve o percentual de desconto recomendado para a
// faixa de probabilidade, usado na resposta dos endpoints de predição.
func DescontoIdealPercent(probabilidade float64) int {
	switch {
	case probabilidade >= 0.75:
		return 5
	case probabilidade >= 0.50:
		return 17
	case probabilidade >= 0.25:
		return 37
	default:
		return 60
	}
}
