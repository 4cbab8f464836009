package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularPrecoMercado_EstrategiaDemanda(t *testing.T) {
	referencia := dia(2026, 3, 10)

	t.Run("demanda baixa acumula 10% sobre o desconto de validade", func(t *testing.T) {
		// 10.00 → 60% por validade → 4.00 → ×0.90 → 3.60
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 12),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 5},
			EstrategiaDemanda,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, "3.60", r.PrecoSugerido.StringFixed(2))
		assert.Equal(t, DemandaBaixa, r.OfertaDemanda.Avaliacao)
		assert.Equal(t, "64.00", r.DescontoTotal.StringFixed(2))
	})

	t.Run("demanda alta devolve o empurrao na mesma proporcao", func(t *testing.T) {
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 12),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 50},
			EstrategiaDemanda,
			referencia,
		)
		require.NoError(t, err)
		// 4.00 ÷ 0.90 arredondado a 2 casas
		assert.Equal(t, "4.44", r.PrecoSugerido.StringFixed(2))
	})

	t.Run("demanda media nao mexe no preco", func(t *testing.T) {
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("8.50"),
			dia(2026, 3, 25),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 15},
			EstrategiaDemanda,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, "8.50", r.PrecoSugerido.StringFixed(2))
		assert.True(t, r.DescontoTotal.IsZero())
	})

	t.Run("estrategia vazia cai na demanda", func(t *testing.T) {
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 12),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 5},
			"",
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, "3.60", r.PrecoSugerido.StringFixed(2))
	})

	t.Run("estrategia desconhecida falha", func(t *testing.T) {
		_, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 12),
			MetricasEstoque{},
			Estrategia("hibrida"),
			referencia,
		)
		assert.Error(t, err)
	})
}

func TestCalcularPrecoMercado_EstrategiaMercado(t *testing.T) {
	referencia := dia(2026, 3, 10)

	t.Run("formula continua com demanda alta", func(t *testing.T) {
		// dias=10 → urgência 0.667; restante 60%; peso alta 0.6
		// impacto = (0.6×0.5 + 0.6667×0.5) × 0.6 = 0.38 → fator 0.848
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 20),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 40},
			EstrategiaMercado,
			referencia,
		)
		require.NoError(t, err)
		assert.InDelta(t, 0.848, r.FatorAjuste, 0.0005)
		assert.Equal(t, "8.48", r.PrecoSugerido.StringFixed(2))
		assert.Equal(t, "60.00", r.PercentualRestante.StringFixed(2))
		assert.InDelta(t, 0.667, r.Urgencia, 0.0005)
	})

	t.Run("estoque total zero curto-circuita com fator 1", func(t *testing.T) {
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 20),
			MetricasEstoque{TotalEstoque: 0, VendidoDesdeEntrada: 0},
			EstrategiaMercado,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.FatorAjuste)
		assert.Equal(t, "10.00", r.PrecoSugerido.StringFixed(2))
		assert.Equal(t, DemandaIndefinida, r.OfertaDemanda.Avaliacao)
	})

	t.Run("lote vencido curto-circuita mantendo o desconto de validade", func(t *testing.T) {
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 5),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 10},
			EstrategiaMercado,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.FatorAjuste)
		assert.Equal(t, "4.00", r.PrecoSugerido.StringFixed(2))
	})

	t.Run("urgencia negativa pode subir o preco ate o teto do fator", func(t *testing.T) {
		// dias=90 → urgência −2 (não travada em zero); quase tudo vendido.
		// impacto negativo grande → fator estoura e trava em 1.2.
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 6, 8),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 95},
			EstrategiaMercado,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, 1.2, r.FatorAjuste)
		assert.Equal(t, "12.00", r.PrecoSugerido.StringFixed(2))
		assert.Less(t, r.Urgencia, 0.0)
	})

	t.Run("caso extremo fica no piso do fator", func(t *testing.T) {
		// Vence em 0 dias... mas dias ≤ 2 já desconta 60% antes do fator.
		// restante 100%, urgência 1, peso baixa 1.0 → impacto 1 → fator 0.6.
		r, err := CalcularPrecoMercado(
			decimal.RequireFromString("10.00"),
			dia(2026, 3, 10),
			MetricasEstoque{TotalEstoque: 100, VendidoDesdeEntrada: 0},
			EstrategiaMercado,
			referencia,
		)
		require.NoError(t, err)
		assert.Equal(t, 0.6, r.FatorAjuste)
		assert.Equal(t, "2.40", r.PrecoSugerido.StringFixed(2))
	})
}
