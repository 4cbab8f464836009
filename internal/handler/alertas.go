package handler

import (
	"errors"
	"net/http"

	"github.com/Pedro-Mesquita/devImpacto/internal/apierror"
	"github.com/Pedro-Mesquita/devImpacto/internal/service"

	"github.com/gin-gonic/gin"
)

// AlertasHandler lista lotes em alerta e notificações de um cliente.
type AlertasHandler struct {
	svc service.AlertaService
}

func NewAlertasHandler(svc service.AlertaService) *AlertasHandler {
	return &AlertasHandler{svc: svc}
}

// Listar trata GET /v1/clientes/:clienteId/alertas.
func (h *AlertasHandler) Listar(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	resp, err := h.svc.BuscarLotesEmAlerta(c.Request.Context(), clienteID)
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

// Notificacoes trata GET /v1/clientes/:clienteId/notificacoes.
func (h *AlertasHandler) Notificacoes(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	notificacoes, err := h.svc.ListarNotificacoes(c.Request.Context(), clienteID, 50)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(notificacoes), "notificacoes": notificacoes})
}
