package pricing

import "math"

// ResultadoIndice é a saída do índice de alerta 1..5 de um lote.
type ResultadoIndice struct {
	Indice           int
	DiasNaPrateleira float64
	DiasParaVencer   float64
	Ocupacao         float64 // fração [0,1] da validade já consumida
	OfertaDemanda    OfertaDemanda
}

// CalcularIndiceAlerta computa o índice de severidade 1..5 a partir da
// ocupação da validade e da demanda. Validade total não positiva (ou não
// finita) devolve índice 1 com ocupação zero — é um default deliberado para
// dado de validade ausente, não um erro fatal.
//
// Índice base por ocupação: <25%→1, <50%→2, <75%→3, <90%→4, senão 5.
// Ajuste por demanda: baixa +1 (teto 5), alta −1 (piso 1).
func CalcularIndiceAlerta(validadeDias, diasNaPrateleira float64, m MetricasEstoque) ResultadoIndice {
	demanda := AvaliarOfertaDemanda(m)

	naPrateleira := diasNaPrateleira
	if !finito(naPrateleira) {
		naPrateleira = 0
	}

	if !finito(validadeDias) || validadeDias <= 0 {
		return ResultadoIndice{
			Indice:           1,
			DiasNaPrateleira: naPrateleira,
			DiasParaVencer:   0,
			Ocupacao:         0,
			OfertaDemanda:    demanda,
		}
	}

	diasParaVencer := math.Max(0, validadeDias-naPrateleira)
	ocupacao := math.Max(0, math.Min(1, naPrateleira/validadeDias))

	indice := 5
	switch {
	case ocupacao < 0.25:
		indice = 1
	case ocupacao < 0.50:
		indice = 2
	case ocupacao < 0.75:
		indice = 3
	case ocupacao < 0.90:
		indice = 4
	}

	switch demanda.Avaliacao {
	case DemandaBaixa:
		if indice < 5 {
			indice++
		}
	case DemandaAlta:
		if indice > 1 {
			indice--
		}
	}

	return ResultadoIndice{
		Indice:           indice,
		DiasNaPrateleira: naPrateleira,
		DiasParaVencer:   diasParaVencer,
		Ocupacao:         ocupacao,
		OfertaDemanda:    demanda,
	}
}

func finito(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
