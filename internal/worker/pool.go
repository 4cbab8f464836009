package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotificacoes = "jobs:notificacoes"

	// maxAttempts antes de um job ir para a DLQ.
	maxAttempts = 3
)

// Job é o envelope genérico de toda tarefa assíncrona.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processa o payload de um tipo de job. Erro devolvido reenfileira o
// job até maxAttempts; depois disso ele vai para a DLQ.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enfileira jobs assíncronos em listas Redis.
// O pool de workers os consome via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotificacao empurra um job de notificação para o Redis.
func (d *Dispatcher) EnqueueNotificacao(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueNotificacoes, "notificacao", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers liga cada tipo de job ao seu processador.
type Handlers struct {
	Notificacao Handler
}

// StartWorkerPool lança numWorkers goroutines consumindo as filas.
// Cada goroutine bloqueia em BRPOP — zero CPU ociosa.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers Handlers) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Msgf("pool de workers iniciado com %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers Handlers) {
	queues := []string{QueueNotificacoes}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d encerrando", id)
			return
		default:
			// Pop bloqueante — espera até 5s e volta a checar o ctx.
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout ou contexto cancelado
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("falha ao decodificar job")
		return
	}

	handler := handlerPara(handlers, job.Type)
	if handler == nil {
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("job sem handler registrado")
		return
	}

	if err := handler.Process(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxAttempts {
			SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		log.Warn().Str("type", job.Type).Int("attempts", job.Attempts).Err(err).
			Msg("job falhou, reenfileirando")
		if encoded, mErr := json.Marshal(job); mErr == nil {
			_ = rdb.LPush(ctx, queue, encoded).Err()
		}
	}
}

func handlerPara(handlers Handlers, jobType string) Handler {
	switch jobType {
	case "notificacao":
		return handlers.Notificacao
	default:
		return nil
	}
}
