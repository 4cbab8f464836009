package job

import (
	"context"
	"testing"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoSchedulerDeTeste() *Scheduler {
	clientes := &stubClienteRepo{clientes: []model.Cliente{}}
	j := NewJobDiario(clientes, newStubLoteRepo(), newStubEstoqueRepo(), nil, pricing.EstrategiaDemanda)
	return NewScheduler(j, 23, 0)
}

func TestScheduler_ExecutarAgora(t *testing.T) {
	s := novoSchedulerDeTeste()

	resultado, err := s.ExecutarAgora(context.Background())
	require.NoError(t, err)
	assert.True(t, resultado.Sucesso)
	assert.Equal(t, 0, resultado.TotalClientesProcessados)

	ultima := s.UltimaExecucao()
	require.NotNil(t, ultima)
	assert.Equal(t, "sucesso", ultima.Status)
}

func TestScheduler_StatusAntesDaPrimeiraRodada(t *testing.T) {
	s := novoSchedulerDeTeste()

	status := s.Status()
	assert.False(t, status.JobEmExecucao)
	assert.Nil(t, status.UltimaExecucao)
	assert.NotEmpty(t, status.AgendadoPara)
}

func TestScheduler_ProximaExecucao(t *testing.T) {
	s := novoSchedulerDeTeste()

	t.Run("horario de hoje ainda nao passou", func(t *testing.T) {
		agora := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
		proxima := s.proximaExecucao(agora)
		assert.Equal(t, time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC), proxima)
	})

	t.Run("horario de hoje ja passou agenda para amanha", func(t *testing.T) {
		agora := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
		proxima := s.proximaExecucao(agora)
		assert.Equal(t, time.Date(2026, 3, 11, 23, 0, 0, 0, time.UTC), proxima)
	})

	t.Run("exatamente no horario agenda para amanha", func(t *testing.T) {
		agora := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
		proxima := s.proximaExecucao(agora)
		assert.Equal(t, time.Date(2026, 3, 11, 23, 0, 0, 0, time.UTC), proxima)
	})
}

func TestScheduler_ExclusaoMutua(t *testing.T) {
	s := novoSchedulerDeTeste()

	// Simula rodada em andamento.
	require.True(t, s.emExecucao.CompareAndSwap(false, true))
	defer s.emExecucao.Store(false)

	_, err := s.ExecutarAgora(context.Background())
	assert.ErrorIs(t, err, ErrJobEmExecucao)
	assert.True(t, s.Status().JobEmExecucao)
}
