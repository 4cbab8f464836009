package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularIndiceAlerta(t *testing.T) {
	neutra := MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 15} // media

	t.Run("indice base por ocupacao com demanda media", func(t *testing.T) {
		casos := []struct {
			prateleira float64
			indice     int
		}{
			{1, 1},  // 10%
			{3, 2},  // 30%
			{6, 3},  // 60%
			{8, 4},  // 80%
			{9.5, 5}, // 95%
		}
		for _, tc := range casos {
			r := CalcularIndiceAlerta(10, tc.prateleira, neutra)
			assert.Equal(t, tc.indice, r.Indice, "prateleira=%v", tc.prateleira)
		}
	})

	t.Run("demanda alta reduz um nivel", func(t *testing.T) {
		// 6 de 10 dias na prateleira → base 3; alta → 2
		r := CalcularIndiceAlerta(10, 6, MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 40})
		assert.Equal(t, 2, r.Indice)
		assert.Equal(t, 4.0, r.DiasParaVencer)
	})

	t.Run("demanda baixa sobe um nivel ate o teto", func(t *testing.T) {
		baixa := MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 5}
		r := CalcularIndiceAlerta(10, 6, baixa)
		assert.Equal(t, 4, r.Indice)

		r = CalcularIndiceAlerta(10, 9.5, baixa)
		assert.Equal(t, 5, r.Indice, "teto em 5")
	})

	t.Run("demanda alta nao desce abaixo de 1", func(t *testing.T) {
		r := CalcularIndiceAlerta(10, 1, MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 40})
		assert.Equal(t, 1, r.Indice)
	})

	t.Run("validade nao positiva cai no default suave", func(t *testing.T) {
		r := CalcularIndiceAlerta(0, 5, neutra)
		assert.Equal(t, 1, r.Indice)
		assert.Equal(t, 0.0, r.Ocupacao)
		assert.Equal(t, 0.0, r.DiasParaVencer)
	})

	t.Run("entradas nao finitas caem no default suave", func(t *testing.T) {
		r := CalcularIndiceAlerta(math.NaN(), math.Inf(1), neutra)
		assert.Equal(t, 1, r.Indice)
		assert.Equal(t, 0.0, r.DiasNaPrateleira)
	})

	t.Run("ocupacao trava em 1 quando passou da validade", func(t *testing.T) {
		r := CalcularIndiceAlerta(10, 15, neutra)
		assert.Equal(t, 1.0, r.Ocupacao)
		assert.Equal(t, 0.0, r.DiasParaVencer)
		assert.Equal(t, 5, r.Indice)
	})
}
