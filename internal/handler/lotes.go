package handler

import (
	"errors"
	"net/http"

	"github.com/Pedro-Mesquita/devImpacto/internal/apierror"
	"github.com/Pedro-Mesquita/devImpacto/internal/service"

	"github.com/gin-gonic/gin"
)

// LotesHandler lista lotes de um cliente.
type LotesHandler struct {
	svc service.LoteService
}

func NewLotesHandler(svc service.LoteService) *LotesHandler {
	return &LotesHandler{svc: svc}
}

// Listar trata GET /v1/clientes/:clienteId/lotes, com ?status= opcional.
func (h *LotesHandler) Listar(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	resp, err := h.svc.ListarLotesCliente(c.Request.Context(), clienteID, c.Query("status"))
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
