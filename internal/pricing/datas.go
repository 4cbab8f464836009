// Package pricing contém o núcleo determinístico de precificação dinâmica e
// classificação de status de lotes perecíveis. Todas as funções são puras: a
// data de referência ("agora") é sempre um parâmetro explícito — nunca se lê o
// relógio do sistema aqui dentro.
package pricing

import (
	"math"
	"time"
)

// DiasEntreDatas retorna a diferença em dias de calendário entre duas datas,
// ambas normalizadas para a meia-noite local antes da subtração. Frações de
// dia arredondam para cima em direção à data final; o resultado é 0 para o
// mesmo dia e negativo quando dataFim precede dataInicio (lote já vencido).
func DiasEntreDatas(dataFim, dataInicio time.Time) int {
	diff := meiaNoite(dataFim).Sub(meiaNoite(dataInicio))
	return int(math.Ceil(diff.Hours() / 24))
}

func meiaNoite(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
