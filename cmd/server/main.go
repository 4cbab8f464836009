package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/config"
	"github.com/Pedro-Mesquita/devImpacto/internal/infra"
	"github.com/Pedro-Mesquita/devImpacto/internal/job"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"
	"github.com/Pedro-Mesquita/devImpacto/internal/router"
	"github.com/Pedro-Mesquita/devImpacto/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logger estruturado — dev: legível, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Composition root: repositórios e colaboradores do job e dos workers são
	// montados aqui, com acesso a toda a infraestrutura.
	clienteRepo := repository.NewClienteRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	estoqueRepo := repository.NewEstoqueRepository(db)
	notificacaoRepo := repository.NewNotificacaoRepository(db)

	dispatcher := worker.NewDispatcher(rdb)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, worker.Handlers{
		Notificacao: worker.NewNotificacaoWorker(notificacaoRepo),
	})

	estrategia := pricing.Estrategia(cfg.EstrategiaPreco)
	jobDiario := job.NewJobDiario(clienteRepo, loteRepo, estoqueRepo, dispatcher, estrategia)
	scheduler := job.NewScheduler(jobDiario, cfg.JobHora, cfg.JobMinuto)
	scheduler.Start(ctx)

	r := router.New(cfg, db, rdb, scheduler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown em SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("devImpacto backend ouvindo em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("erro no servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown forçado")
	}
	log.Info().Msg("servidor encerrado")
}
