package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func requestValida() dto.PredictRequest {
	return dto.PredictRequest{
		DiasRestantes:  intPtr(5),
		EstoqueVendido: intPtr(40),
		Demanda:        "media",
		Categoria:      "fruta",
		PrecoBase:      decimal.RequireFromString("8.00"),
	}
}

func TestPredict_ScorerNeutro(t *testing.T) {
	svc := NewPredictService(nil, "")

	resp, err := svc.Predict(context.Background(), requestValida())
	require.NoError(t, err)

	// Probabilidade neutra 0.5 → fator 0.90, desconto ideal 17%.
	assert.Equal(t, 0.5, resp.Resultado.ProbabilidadeVenderTudo)
	assert.Equal(t, 17, resp.Resultado.DescontoIdeal)
	assert.Equal(t, "7.20", resp.Resultado.PrecoComDesconto.StringFixed(2))
	assert.Equal(t, "0.80", resp.Resultado.Economia.StringFixed(2))
	assert.NotEmpty(t, resp.Recomendacao)
}

type scorerFixo struct {
	probabilidade float64
	err           error
}

func (s scorerFixo) Predict(context.Context, pricing.FeaturesDemanda) (float64, error) {
	return s.probabilidade, s.err
}

func TestPredict_RecomendacaoCritica(t *testing.T) {
	svc := NewPredictService(scorerFixo{probabilidade: 0.1}, "fixo")

	req := requestValida()
	req.DiasRestantes = intPtr(2)
	resp, err := svc.Predict(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 60, resp.Resultado.DescontoIdeal)
	assert.Contains(t, resp.Recomendacao, "CRÍTICO")
}

func TestPredictBatch_IsolaFalhas(t *testing.T) {
	boa := requestValida()

	t.Run("todas com sucesso", func(t *testing.T) {
		svc := NewPredictService(nil, "")
		resp, err := svc.PredictBatch(context.Background(), dto.PredictBatchRequest{
			Produtos: []dto.PredictRequest{boa, boa},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 2, resp.Sucesso)
		assert.Equal(t, 0, resp.Falhas)
	})

	t.Run("falha do scorer vira erro por item", func(t *testing.T) {
		svc := NewPredictService(scorerFixo{err: errors.New("modelo fora do ar")}, "fixo")
		resp, err := svc.PredictBatch(context.Background(), dto.PredictBatchRequest{
			Produtos: []dto.PredictRequest{boa},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Falhas)
		require.Len(t, resp.Resultados, 1)
		assert.Nil(t, resp.Resultados[0].Resultado)
		assert.NotEmpty(t, resp.Resultados[0].Erro)
	})
}

func TestPredictStatus(t *testing.T) {
	svc := NewPredictService(nil, "")
	status := svc.Status()
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "neutro", status.Scorer)
}
