package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/apierror"
	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/service"

	"github.com/gin-gonic/gin"
)

// ProcessamentoHandler atende o processamento sob demanda (preço + status de
// quatro estados) por cliente e em massa.
type ProcessamentoHandler struct {
	svc service.ProcessamentoService
}

func NewProcessamentoHandler(svc service.ProcessamentoService) *ProcessamentoHandler {
	return &ProcessamentoHandler{svc: svc}
}

// ProcessarCliente trata POST /v1/processamento-diario/cliente/:clienteId.
func (h *ProcessamentoHandler) ProcessarCliente(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	var req dto.ProcessarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.ProcessarLotesCliente(c.Request.Context(), clienteID, parseUUIDs(req.LoteIDs), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrConfiguracaoNaoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New("Configuração do cliente não encontrada"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ProcessarTodos trata POST /v1/processamento-diario/todos.
func (h *ProcessamentoHandler) ProcessarTodos(c *gin.Context) {
	var req dto.ProcessarTodosRequest
	// Corpo vazio é válido: processa todos os clientes.
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.ProcessarTodosClientes(c.Request.Context(), parseUUIDs(req.ClienteIDs), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrClienteNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente não encontrado"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
