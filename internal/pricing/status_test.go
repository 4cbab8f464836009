package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestAvaliarStatusLote(t *testing.T) {
	t.Run("45% restantes com limiares padrao vira alerta", func(t *testing.T) {
		r := AvaliarStatusLote(9, 20, RegraCliente{})
		assert.Equal(t, StatusAlerta, r.Status)
		assert.Equal(t, 1, r.Prioridade)
		assert.Equal(t, "45.00", r.PercentualDiasRestantes.StringFixed(2))
		assert.True(t, r.AtivarNotificacao)
		assert.False(t, r.AtivarDistribuicao)
		assert.False(t, r.AplicarPrecoSocial)
	})

	t.Run("acima do limiar de alerta permanece normal", func(t *testing.T) {
		r := AvaliarStatusLote(15, 20, RegraCliente{})
		assert.Equal(t, StatusNormal, r.Status)
		assert.Equal(t, 0, r.Prioridade)
		assert.False(t, r.AtivarNotificacao)
	})

	t.Run("faixa de distribuicao ativa preco social", func(t *testing.T) {
		r := AvaliarStatusLote(5, 20, RegraCliente{}) // 25%
		assert.Equal(t, StatusDistribuicao, r.Status)
		assert.Equal(t, 2, r.Prioridade)
		assert.True(t, r.AtivarDistribuicao)
		assert.True(t, r.AplicarPrecoSocial)
	})

	t.Run("faixa critica tem prioridade maxima", func(t *testing.T) {
		r := AvaliarStatusLote(2, 20, RegraCliente{}) // 10%
		assert.Equal(t, StatusCritico, r.Status)
		assert.Equal(t, 3, r.Prioridade)
		assert.True(t, r.AtivarDistribuicao)
		assert.True(t, r.AtivarNotificacao)
	})

	t.Run("limiares do cliente sobrepoem os padroes", func(t *testing.T) {
		regra := RegraCliente{
			PercentualDiasAlerta:       ptr(70),
			PercentualDiasDistribuicao: ptr(40),
			PercentualDiasCritico:      ptr(20),
		}
		r := AvaliarStatusLote(13, 20, regra) // 65% ≤ 70 → alerta
		assert.Equal(t, StatusAlerta, r.Status)

		r = AvaliarStatusLote(7, 20, regra) // 35% ≤ 40 → distribuicao
		assert.Equal(t, StatusDistribuicao, r.Status)
	})

	t.Run("janela total nao positiva classifica critico", func(t *testing.T) {
		// fração 0 ≤ limiar crítico
		r := AvaliarStatusLote(5, 0, RegraCliente{})
		assert.Equal(t, StatusCritico, r.Status)
	})

	t.Run("dias negativos classificam critico", func(t *testing.T) {
		r := AvaliarStatusLote(-2, 20, RegraCliente{})
		assert.Equal(t, StatusCritico, r.Status)
	})
}

func TestAvaliarStatusJob(t *testing.T) {
	t.Run("mais da metade consumida vira alerta", func(t *testing.T) {
		status, percentual := AvaliarStatusJob(16, 30)
		assert.Equal(t, StatusAlerta, status)
		assert.InDelta(t, 53.33, percentual, 0.01)
	})

	t.Run("metade exata permanece normal", func(t *testing.T) {
		status, percentual := AvaliarStatusJob(15, 30)
		assert.Equal(t, StatusNormal, status)
		assert.InDelta(t, 50.0, percentual, 0.001)
	})

	t.Run("validade nao positiva permanece normal", func(t *testing.T) {
		status, percentual := AvaliarStatusJob(10, 0)
		assert.Equal(t, StatusNormal, status)
		assert.Equal(t, 0.0, percentual)
	})
}
