package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestDiasEntreDatas(t *testing.T) {
	t.Run("mesmo dia resulta em zero", func(t *testing.T) {
		assert.Equal(t, 0, DiasEntreDatas(dia(2026, 3, 10), dia(2026, 3, 10)))
	})

	t.Run("diferenca simples de calendario", func(t *testing.T) {
		assert.Equal(t, 5, DiasEntreDatas(dia(2026, 3, 15), dia(2026, 3, 10)))
	})

	t.Run("horarios sao normalizados para meia-noite", func(t *testing.T) {
		fim := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)
		inicio := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 1, DiasEntreDatas(fim, inicio))
	})

	t.Run("data final no passado resulta negativo", func(t *testing.T) {
		assert.Equal(t, -3, DiasEntreDatas(dia(2026, 3, 7), dia(2026, 3, 10)))
	})

	t.Run("atravessa virada de mes", func(t *testing.T) {
		assert.Equal(t, 2, DiasEntreDatas(dia(2026, 4, 1), dia(2026, 3, 30)))
	})
}
