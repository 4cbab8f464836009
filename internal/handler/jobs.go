package handler

import (
	"errors"
	"net/http"

	"github.com/Pedro-Mesquita/devImpacto/internal/apierror"
	"github.com/Pedro-Mesquita/devImpacto/internal/job"

	"github.com/gin-gonic/gin"
)

// JobsHandler expõe o estado do agendador e a execução manual do job diário.
type JobsHandler struct {
	scheduler *job.Scheduler
}

func NewJobsHandler(scheduler *job.Scheduler) *JobsHandler {
	return &JobsHandler{scheduler: scheduler}
}

// Status trata GET /v1/jobs/status.
func (h *JobsHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.Status())
}

// UltimaExecucao trata GET /v1/jobs/ultima-execucao.
func (h *JobsHandler) UltimaExecucao(c *gin.Context) {
	ultima := h.scheduler.UltimaExecucao()
	if ultima == nil {
		c.JSON(http.StatusNotFound, apierror.New("O job ainda não foi executado"))
		return
	}
	c.JSON(http.StatusOK, ultima)
}

// ExecutarAgora trata POST /v1/jobs/executar-agora.
func (h *JobsHandler) ExecutarAgora(c *gin.Context) {
	resultado, err := h.scheduler.ExecutarAgora(c.Request.Context())
	if err != nil {
		if errors.Is(err, job.ErrJobEmExecucao) {
			c.JSON(http.StatusConflict, apierror.New("Job diário já em execução"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
