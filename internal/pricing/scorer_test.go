package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFatorProbabilidade(t *testing.T) {
	casos := []struct {
		probabilidade float64
		fator         string
	}{
		{1.0, "1"},
		{0.75, "1"},
		{0.74, "0.9"},
		{0.50, "0.9"},
		{0.49, "0.75"},
		{0.25, "0.75"},
		{0.24, "0.6"},
		{0.0, "0.6"},
	}
	for _, tc := range casos {
		assert.True(t, FatorProbabilidade(tc.probabilidade).Equal(decimal.RequireFromString(tc.fator)),
			"probabilidade=%v", tc.probabilidade)
	}
}

func TestAplicarProbabilidade(t *testing.T) {
	preco := decimal.RequireFromString("7.90")

	assert.Equal(t, "7.90", AplicarProbabilidade(preco, 0.8).StringFixed(2))
	assert.Equal(t, "7.11", AplicarProbabilidade(preco, 0.6).StringFixed(2))
	assert.Equal(t, "5.93", AplicarProbabilidade(preco, 0.3).StringFixed(2))
	assert.Equal(t, "4.74", AplicarProbabilidade(preco, 0.1).StringFixed(2))
}

func TestDescontoIdealPercent(t *testing.T) {
	assert.Equal(t, 5, DescontoIdealPercent(0.9))
	assert.Equal(t, 17, DescontoIdealPercent(0.5))
	assert.Equal(t, 37, DescontoIdealPercent(0.3))
	assert.Equal(t, 60, DescontoIdealPercent(0.1))
}

func TestScorerNeutro(t *testing.T) {
	p, err := ScorerNeutro{}.Predict(context.Background(), FeaturesDemanda{})
	require.NoError(t, err)
	assert.Equal(t, ProbabilidadeNeutra, p)
}
