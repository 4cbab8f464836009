package job

// scheduler.go
// Agenda o job diário para um horário fixo e expõe execução manual e consulta
// de estado. A flag de execução é um atomic.Bool do próprio scheduler, não um
// global: duas instâncias não compartilham estado, e a trava cobre tanto a
// rodada agendada quanto a manual.

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"

	"github.com/rs/zerolog/log"
)

// ErrJobEmExecucao sinaliza tentativa de rodar o job enquanto outra rodada
// ainda não terminou.
var ErrJobEmExecucao = errors.New("job diário já em execução")

// Scheduler dispara o JobDiario todo dia no horário configurado.
type Scheduler struct {
	job    *JobDiario
	hora   int
	minuto int

	emExecucao atomic.Bool

	mu     sync.Mutex
	ultima *dto.UltimaExecucao
}

func NewScheduler(job *JobDiario, hora, minuto int) *Scheduler {
	return &Scheduler{job: job, hora: hora, minuto: minuto}
}

// Start lança a goroutine do agendador. Respeita o contexto para shutdown.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		log.Info().Int("hora", s.hora).Int("minuto", s.minuto).Msg("scheduler: agendador iniciado")
		for {
			espera := time.Until(s.proximaExecucao(time.Now()))
			timer := time.NewTimer(espera)
			select {
			case <-ctx.Done():
				timer.Stop()
				log.Info().Msg("scheduler: encerrando")
				return
			case <-timer.C:
				if _, err := s.ExecutarAgora(ctx); err != nil && !errors.Is(err, ErrJobEmExecucao) {
					log.Error().Err(err).Msg("scheduler: rodada agendada falhou")
				}
			}
		}
	}()
}

// ExecutarAgora roda o job imediatamente, com exclusão mútua contra a rodada
// agendada. Devolve ErrJobEmExecucao se já houver rodada em andamento.
func (s *Scheduler) ExecutarAgora(ctx context.Context) (*dto.ResultadoJob, error) {
	if !s.emExecucao.CompareAndSwap(false, true) {
		return nil, ErrJobEmExecucao
	}
	defer s.emExecucao.Store(false)

	agora := time.Now()
	resultado, err := s.job.Executar(ctx, agora)

	ultima := dto.UltimaExecucao{DataExecucao: agora}
	if err != nil {
		ultima.Status = "erro"
		ultima.Erro = err.Error()
	} else {
		ultima.Status = "sucesso"
		ultima.TotalClientesProcessados = resultado.TotalClientesProcessados
		ultima.Relatorios = resultado.Relatorios
	}

	s.mu.Lock()
	s.ultima = &ultima
	s.mu.Unlock()

	return resultado, err
}

// Status devolve o snapshot atual do agendador.
func (s *Scheduler) Status() dto.StatusJobResponse {
	return dto.StatusJobResponse{
		JobEmExecucao:  s.emExecucao.Load(),
		UltimaExecucao: s.UltimaExecucao(),
		AgendadoPara:   s.proximaExecucao(time.Now()).Format(time.RFC3339),
	}
}

// UltimaExecucao devolve o snapshot da última rodada, ou nil se nunca rodou.
func (s *Scheduler) UltimaExecucao() *dto.UltimaExecucao {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ultima
}

// proximaExecucao calcula o próximo disparo: hoje no horário configurado, ou
// amanhã se o horário de hoje já passou.
func (s *Scheduler) proximaExecucao(agora time.Time) time.Time {
	proxima := time.Date(agora.Year(), agora.Month(), agora.Day(), s.hora, s.minuto, 0, 0, agora.Location())
	if !proxima.After(agora) {
		proxima = proxima.AddDate(0, 0, 1)
	}
	return proxima
}
