package pricing

import "github.com/shopspring/decimal"

// Status de ciclo de vida de um lote, em ordem crescente de severidade.
const (
	StatusNormal       = "normal"
	StatusAlerta       = "alerta"
	StatusDistribuicao = "distribuicao"
	StatusCritico      = "critico"
)

// Limiares padrão (percentuais de dias restantes) usados quando o cliente não
// tem configuração própria, e demais fallbacks numéricos nomeados.
const (
	PercentualPadraoAlerta       = 50.0
	PercentualPadraoDistribuicao = 30.0
	PercentualPadraoCritico      = 10.0

	// ValidadeDiasPadrao é a janela de validade assumida quando o lote não
	// tem data de colheita registrada.
	ValidadeDiasPadrao = 30

	// limiteUsoJob: o job noturno usa uma regra binária própria — mais de
	// 50% da validade consumida marca alerta. Divergente da classificação
	// de quatro estados da API sob demanda, e mantido divergente.
	limiteUsoJob = 50.0
)

// RegraCliente são os limiares de ativação de um cliente, em percentual de
// dias restantes (0–100). Campos nil caem nos padrões.
type RegraCliente struct {
	PercentualDiasAlerta       *float64
	PercentualDiasDistribuicao *float64
	PercentualDiasCritico      *float64
}

// ResultadoStatus é a classificação completa de um lote com as ações
// derivadas por status.
type ResultadoStatus struct {
	Status                  string
	Prioridade              int
	PercentualDiasRestantes decimal.Decimal // 0–100, 2 casas
	AtivarDistribuicao      bool
	AtivarNotificacao       bool
	AplicarPrecoSocial      bool
}

// AvaliarStatusLote classifica um lote pelo percentual de dias restantes da
// janela de validade contra os limiares do cliente. A classificação é
// stateless por execução: qualquer status pode transicionar para qualquer
// outro a cada reavaliação.
func AvaliarStatusLote(diasParaVencer, diasTotaisValidade int, regra RegraCliente) ResultadoStatus {
	fracao := fracaoDiasRestantes(diasParaVencer, diasTotaisValidade)

	limiarAlerta := limiar(regra.PercentualDiasAlerta, PercentualPadraoAlerta)
	limiarDistribuicao := limiar(regra.PercentualDiasDistribuicao, PercentualPadraoDistribuicao)
	limiarCritico := limiar(regra.PercentualDiasCritico, PercentualPadraoCritico)

	status := StatusNormal
	prioridade := 0
	switch {
	case fracao <= limiarCritico:
		status, prioridade = StatusCritico, 3
	case fracao <= limiarDistribuicao:
		status, prioridade = StatusDistribuicao, 2
	case fracao <= limiarAlerta:
		status, prioridade = StatusAlerta, 1
	}

	return ResultadoStatus{
		Status:                  status,
		Prioridade:              prioridade,
		PercentualDiasRestantes: decimal.NewFromFloat(fracao * 100).Round(2),
		AtivarDistribuicao:      status == StatusDistribuicao || status == StatusCritico,
		AtivarNotificacao:       status != StatusNormal,
		AplicarPrecoSocial:      status == StatusDistribuicao || status == StatusCritico,
	}
}

// AvaliarStatusJob é a variante simplificada usada pelo job diário: classifica
// apenas pela fração da validade já consumida desde a colheita. Mais de 50%
// consumida → alerta; senão normal. Retorna também o percentual usado (0–100).
func AvaliarStatusJob(diasDesdeColheita, validadeTotalDias int) (string, float64) {
	if validadeTotalDias <= 0 {
		return StatusNormal, 0
	}
	percentualUsado := float64(diasDesdeColheita) / float64(validadeTotalDias) * 100
	if percentualUsado > limiteUsoJob {
		return StatusAlerta, percentualUsado
	}
	return StatusNormal, percentualUsado
}

// fracaoDiasRestantes retorna diasParaVencer/diasTotais como fração, 0 quando
// a janela total não é positiva.
func fracaoDiasRestantes(diasParaVencer, diasTotaisValidade int) float64 {
	if diasTotaisValidade <= 0 {
		return 0
	}
	return float64(diasParaVencer) / float64(diasTotaisValidade)
}

// limiar converte um percentual configurado (0–100, possivelmente nil) na
// fração usada pela comparação.
func limiar(configurado *float64, padrao float64) float64 {
	if configurado != nil {
		return *configurado / 100
	}
	return padrao / 100
}
