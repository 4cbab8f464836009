package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Faixas fixas de desconto por proximidade do vencimento. Não são
// configuráveis por cliente — a configuração por cliente atua apenas sobre os
// limiares de status (ver status.go).
var (
	descontoVencimentoIminente = decimal.NewFromFloat(0.60) // ≤ 2 dias
	descontoVencimentoProximo  = decimal.NewFromFloat(0.30) // 3–5 dias
)

// Erros de validação de entrada. Entradas malformadas falham rápido; nunca são
// coagidas silenciosamente para zero.
var (
	ErrDataValidadeAusente = errors.New("data de validade ausente ou inválida")
	ErrPrecoBaseInvalido   = errors.New("preço base deve ser maior que zero")
)

// ResultadoValidade é o resultado do desconto por validade de um lote.
type ResultadoValidade struct {
	PrecoAtualizado  decimal.Decimal
	DiasParaVencer   int
	DescontoAplicado decimal.Decimal // fração: 0, 0.30 ou 0.60
}

// CalcularPrecoValidade aplica o desconto por proximidade do vencimento:
//
//	diasParaVencer ≤ 2  → 60%
//	3 ≤ dias ≤ 5        → 30%
//	dias > 5            → sem desconto
//
// O preço resultante é arredondado a 2 casas (half-up, semântica de moeda).
func CalcularPrecoValidade(precoBase decimal.Decimal, dataValidade time.Time, referencia time.Time) (ResultadoValidade, error) {
	if dataValidade.IsZero() {
		return ResultadoValidade{}, ErrDataValidadeAusente
	}
	if !precoBase.IsPositive() {
		return ResultadoValidade{}, ErrPrecoBaseInvalido
	}

	diasParaVencer := DiasEntreDatas(dataValidade, referencia)

	desconto := decimal.Zero
	switch {
	case diasParaVencer <= 2:
		desconto = descontoVencimentoIminente
	case diasParaVencer <= 5:
		desconto = descontoVencimentoProximo
	}

	preco := precoBase.Mul(decimal.NewFromInt(1).Sub(desconto)).Round(2)

	return ResultadoValidade{
		PrecoAtualizado:  preco,
		DiasParaVencer:   diasParaVencer,
		DescontoAplicado: desconto,
	}, nil
}
