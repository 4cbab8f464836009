package dto

import "github.com/shopspring/decimal"

// ProcessarClienteRequest é o corpo do POST /v1/processamento-diario/cliente/:clienteId.
type ProcessarClienteRequest struct {
	LoteIDs []string `json:"loteIds" validate:"required,min=1,dive,uuid"`
}

// ProcessarTodosRequest é o corpo do POST /v1/processamento-diario/todos.
// ClienteIDs vazio processa todos os clientes cadastrados.
type ProcessarTodosRequest struct {
	ClienteIDs []string `json:"clienteIds" validate:"omitempty,dive,uuid"`
}

// LoteProcessadoResponse é o resultado completo de um lote processado sob
// demanda: preço recalculado, classificação e ações derivadas.
type LoteProcessadoResponse struct {
	LoteID                  string          `json:"loteId"`
	NomeProduto             string          `json:"nomeProduto"`
	Categoria               string          `json:"categoria"`
	PrecoBase               decimal.Decimal `json:"precoBase"`
	PrecoSugerido           decimal.Decimal `json:"precoSugerido"`
	DiasParaVencer          int             `json:"diasParaVencer"`
	PercentualDiasRestantes decimal.Decimal `json:"percentualDiasRestantes"`
	Demanda                 string          `json:"demanda"`
	DescontoTotal           decimal.Decimal `json:"descontoTotal"`
	VendidoHoje             int             `json:"vendidoHoje"`
	VendidoDesdeEntrada     int             `json:"vendidoDesdeEntrada"`
	PercentualVendas        decimal.Decimal `json:"percentualVendas"`

	Status             string `json:"status"`
	Prioridade         int    `json:"prioridade"`
	AtivarDistribuicao bool   `json:"ativarDistribuicao"`
	AtivarNotificacao  bool   `json:"ativarNotificacao"`
	AplicarPrecoSocial bool   `json:"aplicarPrecoSocial"`
}

// ResumoProcessamento conta lotes por status numa execução.
type ResumoProcessamento struct {
	Total        int `json:"total"`
	Normal       int `json:"normal"`
	Alerta       int `json:"alerta"`
	Distribuicao int `json:"distribuicao"`
	Critico      int `json:"critico"`
}

// ProcessamentoClienteResponse agrupa os resultados de um cliente.
type ProcessamentoClienteResponse struct {
	ClienteID      string                              `json:"clienteId"`
	NomeCliente    string                              `json:"nomeCliente,omitempty"`
	ProcessadoEm   string                              `json:"processadoEm"`
	Resumo         ResumoProcessamento                 `json:"resumo"`
	LotesPorStatus map[string][]LoteProcessadoResponse `json:"lotesPorStatus"`
	Resultados     []LoteProcessadoResponse            `json:"resultados"`
}

// ErroClienteResponse isola a falha de um cliente sem abortar os demais.
type ErroClienteResponse struct {
	ClienteID string `json:"clienteId"`
	Erro      string `json:"erro"`
}

// ProcessamentoTodosResponse agrega o processamento de vários clientes.
type ProcessamentoTodosResponse struct {
	ProcessadoEm  string                         `json:"processadoEm"`
	TotalClientes int                            `json:"totalClientes"`
	Clientes      []ProcessamentoClienteResponse `json:"clientes"`
	Erros         []ErroClienteResponse          `json:"erros,omitempty"`
}
