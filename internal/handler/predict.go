package handler

import (
	"net/http"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/service"

	"github.com/gin-gonic/gin"
)

// PredictHandler atende as predições de venda total de um lote hipotético.
type PredictHandler struct {
	svc service.PredictService
}

func NewPredictHandler(svc service.PredictService) *PredictHandler {
	return &PredictHandler{svc: svc}
}

// Predict trata POST /v1/predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Predict(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PredictBatch trata POST /v1/predict/batch.
func (h *PredictHandler) PredictBatch(c *gin.Context) {
	var req dto.PredictBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.PredictBatch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Status trata GET /v1/predict/status.
func (h *PredictHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status())
}
