package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularPrecoValidade(t *testing.T) {
	referencia := dia(2026, 3, 10)

	casos := []struct {
		nome          string
		preco         string
		validade      time.Time
		precoEsperado string
		descontoFrac  string
	}{
		{"vencimento iminente aplica 60%", "10.00", dia(2026, 3, 12), "4.00", "0.6"},
		{"vence hoje aplica 60%", "10.00", dia(2026, 3, 10), "4.00", "0.6"},
		{"ja vencido aplica 60%", "10.00", dia(2026, 3, 8), "4.00", "0.6"},
		{"vencimento proximo aplica 30%", "10.00", dia(2026, 3, 14), "7.00", "0.3"},
		{"limite superior da faixa proxima", "10.00", dia(2026, 3, 15), "7.00", "0.3"},
		{"validade folgada nao desconta", "8.50", dia(2026, 3, 25), "8.50", "0"},
		{"arredondamento de moeda a 2 casas", "9.99", dia(2026, 3, 12), "4.00", "0.6"},
	}

	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			r, err := CalcularPrecoValidade(decimal.RequireFromString(tc.preco), tc.validade, referencia)
			require.NoError(t, err)
			assert.True(t, r.PrecoAtualizado.Equal(decimal.RequireFromString(tc.precoEsperado)),
				"preço esperado %s, veio %s", tc.precoEsperado, r.PrecoAtualizado)
			assert.True(t, r.DescontoAplicado.Equal(decimal.RequireFromString(tc.descontoFrac)))
		})
	}

	t.Run("data de validade zerada falha", func(t *testing.T) {
		_, err := CalcularPrecoValidade(decimal.NewFromInt(10), time.Time{}, referencia)
		assert.ErrorIs(t, err, ErrDataValidadeAusente)
	})

	t.Run("preco base nao positivo falha", func(t *testing.T) {
		_, err := CalcularPrecoValidade(decimal.Zero, dia(2026, 3, 20), referencia)
		assert.ErrorIs(t, err, ErrPrecoBaseInvalido)

		_, err = CalcularPrecoValidade(decimal.NewFromInt(-5), dia(2026, 3, 20), referencia)
		assert.ErrorIs(t, err, ErrPrecoBaseInvalido)
	})
}
