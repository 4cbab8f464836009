package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoteJobResponse é a linha de um lote no relatório do job diário.
type LoteJobResponse struct {
	LoteID             string          `json:"loteId"`
	NomeProduto        string          `json:"nomeProduto"`
	PrecoBase          decimal.Decimal `json:"precoBase"`
	PrecoAtualizado    decimal.Decimal `json:"precoAtualizado"`
	ValidadeTotalDias  int             `json:"validadeTotalDias"`
	DiasFaltamVencer   int             `json:"diasFaltamParaVencer"`
	DiasDesdeColheita  int             `json:"diasDesdeColheita"`
	PercentualUsado    decimal.Decimal `json:"percentualUsado"`
	StatusAtual        string          `json:"statusAtual"`
	DescontoTotal      decimal.Decimal `json:"descontoTotal"`
}

// MudancaStatusResponse descreve uma transição de status detectada pelo job.
type MudancaStatusResponse struct {
	LoteID         string `json:"loteId"`
	NomeProduto    string `json:"nomeProduto"`
	StatusAnterior string `json:"statusAnterior"`
	StatusNovo     string `json:"statusNovo"`
	Motivo         string `json:"motivo"`
}

// ResumoJobCliente conta lotes e transições de um cliente no job.
type ResumoJobCliente struct {
	Total              int `json:"total"`
	PassaramParaAlerta int `json:"passaramParaAlerta"`
	VoltaramParaNormal int `json:"voltaramParaNormal"`
}

// RelatorioClienteJob é o relatório por cliente do job diário.
type RelatorioClienteJob struct {
	ClienteID         string                  `json:"clienteId"`
	NomeCliente       string                  `json:"nomeCliente"`
	DataProcessamento time.Time               `json:"dataProcessamento"`
	LotesProcessados  []LoteJobResponse       `json:"lotesProcessados"`
	MudancasDeStatus  []MudancaStatusResponse `json:"mudancasDeStatus"`
	Resumo            ResumoJobCliente        `json:"resumo"`
	Erros             []string                `json:"erros,omitempty"`
}

// ResultadoJob é o relatório global de uma execução do job diário.
type ResultadoJob struct {
	Sucesso                  bool                  `json:"sucesso"`
	DataExecucao             time.Time             `json:"dataExecucao"`
	TotalClientesProcessados int                   `json:"totalClientesProcessados"`
	Relatorios               []RelatorioClienteJob `json:"relatorios"`
}

// UltimaExecucao é o snapshot da última rodada do job guardado pelo scheduler.
type UltimaExecucao struct {
	DataExecucao             time.Time             `json:"dataExecucao"`
	Status                   string                `json:"status"` // "sucesso" | "erro"
	Erro                     string                `json:"erro,omitempty"`
	TotalClientesProcessados int                   `json:"totalClientesProcessados,omitempty"`
	Relatorios               []RelatorioClienteJob `json:"relatorios,omitempty"`
}

// StatusJobResponse é a resposta do GET /v1/jobs/status.
type StatusJobResponse struct {
	JobEmExecucao  bool            `json:"jobEmExecucao"`
	UltimaExecucao *UltimaExecucao `json:"ultimaExecucao"`
	AgendadoPara   string          `json:"agendadoPara"`
}
