package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvaliarOfertaDemanda(t *testing.T) {
	casos := []struct {
		nome      string
		total     int
		vendido   int
		avaliacao Avaliacao
	}{
		{"nada vendido e baixa", 100, 0, DemandaBaixa},
		{"10% exato ainda e baixa", 100, 10, DemandaBaixa},
		{"entre 10 e 20 e media", 100, 15, DemandaMedia},
		{"20% exato e media", 100, 20, DemandaMedia},
		{"faixa 20 a 30 cai no fallback media", 100, 25, DemandaMedia},
		{"30% exato cai no fallback media", 100, 30, DemandaMedia},
		{"acima de 30 e alta", 100, 31, DemandaAlta},
		{"tudo vendido e alta", 100, 100, DemandaAlta},
	}

	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			r := AvaliarOfertaDemanda(MetricasEstoque{TotalEstoque: tc.total, VendidoDesdeEntrada: tc.vendido})
			assert.Equal(t, tc.avaliacao, r.Avaliacao)
		})
	}

	t.Run("estoque total zero vira indefinido", func(t *testing.T) {
		r := AvaliarOfertaDemanda(MetricasEstoque{TotalEstoque: 0, VendidoDesdeEntrada: 50})
		assert.Equal(t, DemandaIndefinida, r.Avaliacao)
		assert.True(t, r.PercentualVendas.IsZero())
	})

	t.Run("estoque total negativo vira indefinido", func(t *testing.T) {
		r := AvaliarOfertaDemanda(MetricasEstoque{TotalEstoque: -10, VendidoDesdeEntrada: 5})
		assert.Equal(t, DemandaIndefinida, r.Avaliacao)
	})

	t.Run("percentual sai com 2 casas", func(t *testing.T) {
		r := AvaliarOfertaDemanda(MetricasEstoque{TotalEstoque: 3, VendidoDesdeEntrada: 1})
		assert.Equal(t, "33.33", r.PercentualVendas.StringFixed(2))
	})
}
