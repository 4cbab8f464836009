package handler

import (
	"net/http"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/gin-gonic/gin"
)

// EstoqueHandler atende os agregados de estoque por cliente. Consulta pura de
// leitura: fala direto com o repositório, sem camada de serviço.
type EstoqueHandler struct {
	repo repository.EstoqueRepository
}

func NewEstoqueHandler(repo repository.EstoqueRepository) *EstoqueHandler {
	return &EstoqueHandler{repo: repo}
}

// VendidoTotal trata GET /v1/clientes/:clienteId/estoque/vendido-total.
func (h *EstoqueHandler) VendidoTotal(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	linhas, err := h.repo.VendidoTotalPorCliente(c.Request.Context(), clienteID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.VendidoTotalResponse{TotalLotes: len(linhas), Vendidos: linhas})
}

// QuantidadeInicialTotal trata GET /v1/clientes/:clienteId/estoque/quantidade-inicial-total.
func (h *EstoqueHandler) QuantidadeInicialTotal(c *gin.Context) {
	clienteID, ok := parseUUIDParam(c, "clienteId")
	if !ok {
		return
	}

	linhas, err := h.repo.QuantidadeInicialPorCliente(c.Request.Context(), clienteID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.QuantidadeInicialResponse{TotalLotes: len(linhas), Quantidades: linhas})
}
