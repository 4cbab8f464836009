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

// PrecoDinamicoHandler atende o cálculo de preço sob demanda.
type PrecoDinamicoHandler struct {
	svc service.PrecoDinamicoService
}

func NewPrecoDinamicoHandler(svc service.PrecoDinamicoService) *PrecoDinamicoHandler {
	return &PrecoDinamicoHandler{svc: svc}
}

// Calcular trata POST /v1/preco-dinamico.
func (h *PrecoDinamicoHandler) Calcular(c *gin.Context) {
	var req dto.PrecoDinamicoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CalcularParaLotes(c.Request.Context(), parseUUIDs(req.LoteIDs), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNenhumLoteEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Nenhum lote encontrado para os ids informados"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
