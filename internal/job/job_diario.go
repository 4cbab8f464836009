package job

// job_diario.go
// Rodada noturna sobre todos os lotes de todos os clientes: recalcula o preço
// sugerido, reclassifica cada lote pela regra binária de uso da validade e
// registra as transições de status no histórico. Falhas parciais não abortam a
// rodada — cada erro fica anotado no relatório do cliente.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"
	"github.com/Pedro-Mesquita/devImpacto/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Notificador enfileira avisos de transição de status. *worker.Dispatcher
// satisfaz a interface; nil desliga as notificações.
type Notificador interface {
	EnqueueNotificacao(ctx context.Context, payload interface{}) error
}

// JobDiario executa o processamento noturno de lotes.
type JobDiario struct {
	clientes    repository.ClienteRepository
	lotes       repository.LoteRepository
	estoque     repository.EstoqueRepository
	notificador Notificador
	estrategia  pricing.Estrategia
}

func NewJobDiario(clientes repository.ClienteRepository, lotes repository.LoteRepository, estoque repository.EstoqueRepository, notificador Notificador, estrategia pricing.Estrategia) *JobDiario {
	return &JobDiario{
		clientes:    clientes,
		lotes:       lotes,
		estoque:     estoque,
		notificador: notificador,
		estrategia:  estrategia,
	}
}

// Executar roda o job completo com agora como data de referência.
func (j *JobDiario) Executar(ctx context.Context, agora time.Time) (*dto.ResultadoJob, error) {
	inicio := time.Now()
	clientes, err := j.clientes.List(ctx)
	if err != nil {
		return nil, err
	}

	resultado := &dto.ResultadoJob{
		Sucesso:      true,
		DataExecucao: agora,
		Relatorios:   make([]dto.RelatorioClienteJob, 0, len(clientes)),
	}

	for i := range clientes {
		relatorio := j.processarCliente(ctx, &clientes[i], agora)
		resultado.Relatorios = append(resultado.Relatorios, *relatorio)
		resultado.TotalClientesProcessados++
	}

	log.Info().
		Int("clientes", resultado.TotalClientesProcessados).
		Dur("duracao", time.Since(inicio)).
		Msg("job diário concluído")
	return resultado, nil
}

func (j *JobDiario) processarCliente(ctx context.Context, cliente *model.Cliente, agora time.Time) *dto.RelatorioClienteJob {
	relatorio := &dto.RelatorioClienteJob{
		ClienteID:         cliente.ID.String(),
		NomeCliente:       cliente.Nome,
		DataProcessamento: agora,
		LotesProcessados:  []dto.LoteJobResponse{},
		MudancasDeStatus:  []dto.MudancaStatusResponse{},
	}

	lotes, err := j.lotes.ListByCliente(ctx, cliente.ID)
	if err != nil {
		log.Error().Err(err).Str("cliente_id", cliente.ID.String()).Msg("job: falha ao listar lotes")
		relatorio.Erros = append(relatorio.Erros, fmt.Sprintf("listar lotes: %v", err))
		return relatorio
	}

	for i := range lotes {
		j.processarLote(ctx, &lotes[i], agora, relatorio)
	}
	return relatorio
}

func (j *JobDiario) processarLote(ctx context.Context, lote *model.Lote, agora time.Time, relatorio *dto.RelatorioClienteJob) {
	metricas := pricing.MetricasEstoque{}
	snapshot, err := j.estoque.FindByLote(ctx, lote.ID)
	switch {
	case err == nil:
		metricas.TotalEstoque = snapshot.QuantidadeInicial
		metricas.VendidoDesdeEntrada = snapshot.VendidoTotal
	case errors.Is(err, repository.ErrSnapshotNaoEncontrado):
		// Lote sem snapshot fica fora da rodada, sem virar erro.
		log.Debug().Str("lote_id", lote.ID.String()).Msg("job: lote sem snapshot de estoque, pulando")
		return
	default:
		relatorio.Erros = append(relatorio.Erros, fmt.Sprintf("lote %s: snapshot: %v", lote.ID, err))
		return
	}

	calc, err := pricing.CalcularPrecoMercado(lote.PrecoBase, lote.DataValidade, metricas, j.estrategia, agora)
	if err != nil {
		relatorio.Erros = append(relatorio.Erros, fmt.Sprintf("lote %s: preço: %v", lote.ID, err))
		return
	}

	diasFaltam := calc.DiasParaVencer
	validadeTotal := pricing.ValidadeDiasPadrao
	diasDesdeColheita := validadeTotal - diasFaltam
	if lote.DataColheita != nil {
		validadeTotal = pricing.DiasEntreDatas(lote.DataValidade, *lote.DataColheita)
		diasDesdeColheita = pricing.DiasEntreDatas(agora, *lote.DataColheita)
	}

	statusNovo, percentualUsado := pricing.AvaliarStatusJob(diasDesdeColheita, validadeTotal)

	nomeProduto := "Produto"
	if lote.Produto != nil {
		nomeProduto = lote.Produto.Nome
	}

	relatorio.LotesProcessados = append(relatorio.LotesProcessados, dto.LoteJobResponse{
		LoteID:            lote.ID.String(),
		NomeProduto:       nomeProduto,
		PrecoBase:         lote.PrecoBase,
		PrecoAtualizado:   calc.PrecoSugerido,
		ValidadeTotalDias: validadeTotal,
		DiasFaltamVencer:  diasFaltam,
		DiasDesdeColheita: diasDesdeColheita,
		PercentualUsado:   decimal.NewFromFloat(percentualUsado).Round(2),
		StatusAtual:       statusNovo,
		DescontoTotal:     calc.DescontoTotal,
	})
	relatorio.Resumo.Total++

	if statusNovo == lote.Status {
		return
	}

	motivo := fmt.Sprintf("Percentual usado: %.2f%%, dias restantes: %d", percentualUsado, diasFaltam)

	if err := j.lotes.AtualizarStatus(ctx, lote.ID, statusNovo, calc.PrecoSugerido); err != nil {
		log.Error().Err(err).Str("lote_id", lote.ID.String()).Msg("job: falha ao atualizar status")
		relatorio.Erros = append(relatorio.Erros, fmt.Sprintf("lote %s: atualizar status: %v", lote.ID, err))
		return
	}

	if err := j.lotes.InserirStatusHistorico(ctx, &model.LoteStatusHistorico{
		LoteID:         lote.ID,
		StatusAnterior: lote.Status,
		StatusNovo:     statusNovo,
		Motivo:         motivo,
	}); err != nil {
		// Status já persistido; a transição segue no relatório mesmo sem o
		// registro de histórico.
		log.Error().Err(err).Str("lote_id", lote.ID.String()).Msg("job: falha ao gravar histórico")
		relatorio.Erros = append(relatorio.Erros, fmt.Sprintf("lote %s: histórico: %v", lote.ID, err))
	}

	relatorio.MudancasDeStatus = append(relatorio.MudancasDeStatus, dto.MudancaStatusResponse{
		LoteID:         lote.ID.String(),
		NomeProduto:    nomeProduto,
		StatusAnterior: lote.Status,
		StatusNovo:     statusNovo,
		Motivo:         motivo,
	})
	switch statusNovo {
	case pricing.StatusAlerta:
		relatorio.Resumo.PassaramParaAlerta++
		j.notificar(ctx, lote, nomeProduto, statusNovo, motivo)
	case pricing.StatusNormal:
		relatorio.Resumo.VoltaramParaNormal++
	}
}

// notificar enfileira o aviso de transição. Best effort: erro de fila não
// entra no relatório do cliente.
func (j *JobDiario) notificar(ctx context.Context, lote *model.Lote, nomeProduto, status, motivo string) {
	if j.notificador == nil {
		return
	}
	payload := worker.NotificacaoPayload{
		ClienteID:   lote.ClienteID.String(),
		LoteID:      lote.ID.String(),
		NomeProduto: nomeProduto,
		Status:      status,
		Motivo:      motivo,
	}
	if err := j.notificador.EnqueueNotificacao(ctx, payload); err != nil {
		log.Error().Err(err).Str("lote_id", lote.ID.String()).Msg("job: falha ao enfileirar notificação")
	}
}
