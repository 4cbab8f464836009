package router

import (
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/config"
	"github.com/Pedro-Mesquita/devImpacto/internal/handler"
	"github.com/Pedro-Mesquita/devImpacto/internal/job"
	"github.com/Pedro-Mesquita/devImpacto/internal/middleware"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"
	"github.com/Pedro-Mesquita/devImpacto/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New monta todas as dependências e devolve o engine Gin configurado.
// Grafo de dependências: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, scheduler *job.Scheduler) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadeia global de middleware (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min por IP

	estrategia := pricing.Estrategia(cfg.EstrategiaPreco)

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	estoqueRepo := repository.NewEstoqueRepository(db)
	notificacaoRepo := repository.NewNotificacaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	precoSvc := service.NewPrecoDinamicoService(loteRepo, estoqueRepo, rdb, estrategia)
	processamentoSvc := service.NewProcessamentoService(clienteRepo, loteRepo, estoqueRepo, estrategia)
	loteSvc := service.NewLoteService(clienteRepo, loteRepo)
	alertaSvc := service.NewAlertaService(clienteRepo, loteRepo, notificacaoRepo)
	predictSvc := service.NewPredictService(nil, "")

	// ── Handlers ─────────────────────────────────────────────────────────────
	precoH := handler.NewPrecoDinamicoHandler(precoSvc)
	processamentoH := handler.NewProcessamentoHandler(processamentoSvc)
	lotesH := handler.NewLotesHandler(loteSvc)
	alertasH := handler.NewAlertasHandler(alertaSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueRepo)
	jobsH := handler.NewJobsHandler(scheduler)
	predictH := handler.NewPredictHandler(predictSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/preco-dinamico", precoH.Calcular)

		v1.POST("/processamento-diario/cliente/:clienteId", processamentoH.ProcessarCliente)
		v1.POST("/processamento-diario/todos", processamentoH.ProcessarTodos)

		jobs := v1.Group("/jobs")
		{
			jobs.GET("/status", jobsH.Status)
			jobs.GET("/ultima-execucao", jobsH.UltimaExecucao)
			jobs.POST("/executar-agora", jobsH.ExecutarAgora)
		}

		clientes := v1.Group("/clientes/:clienteId")
		{
			clientes.GET("/lotes", lotesH.Listar)
			clientes.GET("/alertas", alertasH.Listar)
			clientes.GET("/notificacoes", alertasH.Notificacoes)
			clientes.GET("/estoque/vendido-total", estoqueH.VendidoTotal)
			clientes.GET("/estoque/quantidade-inicial-total", estoqueH.QuantidadeInicialTotal)
		}

		predict := v1.Group("/predict")
		{
			predict.POST("", predictH.Predict)
			predict.POST("/batch", predictH.PredictBatch)
			predict.GET("/status", predictH.Status)
		}
	}

	return r
}
