package service

import (
	"context"
	"errors"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrConfiguracaoNaoEncontrada: o endpoint por cliente exige configuração
	// cadastrada; o processamento em massa cai nos limiares padrão.
	ErrConfiguracaoNaoEncontrada = errors.New("configuração do cliente não encontrada")

	// ErrClienteNaoEncontrado sinaliza clienteId inexistente.
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
)

// ProcessamentoService roda o pipeline completo sob demanda: preço dinâmico +
// classificação de status de quatro estados + ações derivadas. Somente
// leitura — quem persiste transições é o job diário.
type ProcessamentoService interface {
	ProcessarLotesCliente(ctx context.Context, clienteID uuid.UUID, loteIDs []uuid.UUID, agora time.Time) (*dto.ProcessamentoClienteResponse, error)
	ProcessarTodosClientes(ctx context.Context, clienteIDs []uuid.UUID, agora time.Time) (*dto.ProcessamentoTodosResponse, error)
}

type processamentoService struct {
	clientes   repository.ClienteRepository
	lotes      repository.LoteRepository
	estoque    repository.EstoqueRepository
	estrategia pricing.Estrategia
}

func NewProcessamentoService(clientes repository.ClienteRepository, lotes repository.LoteRepository, estoque repository.EstoqueRepository, estrategia pricing.Estrategia) ProcessamentoService {
	return &processamentoService{clientes: clientes, lotes: lotes, estoque: estoque, estrategia: estrategia}
}

func (s *processamentoService) ProcessarLotesCliente(ctx context.Context, clienteID uuid.UUID, loteIDs []uuid.UUID, agora time.Time) (*dto.ProcessamentoClienteResponse, error) {
	cfg, err := s.clientes.FindConfiguracao(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfiguracaoNaoEncontrada
		}
		return nil, err
	}

	lotes, err := s.lotes.FindByIDs(ctx, loteIDs)
	if err != nil {
		return nil, err
	}
	// Lotes de outros clientes são ignorados silenciosamente, não vazados.
	proprios := lotes[:0]
	for _, l := range lotes {
		if l.ClienteID == clienteID {
			proprios = append(proprios, l)
		}
	}

	return s.processarLotes(ctx, clienteID, "", proprios, regraDe(cfg), agora)
}

func (s *processamentoService) ProcessarTodosClientes(ctx context.Context, clienteIDs []uuid.UUID, agora time.Time) (*dto.ProcessamentoTodosResponse, error) {
	clientes, err := s.resolverClientes(ctx, clienteIDs)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProcessamentoTodosResponse{
		ProcessadoEm:  agora.Format(time.RFC3339),
		TotalClientes: len(clientes),
	}

	for i := range clientes {
		cliente := &clientes[i]
		resultado, err := s.processarCliente(ctx, cliente, agora)
		if err != nil {
			// Falha de um cliente não aborta os demais.
			log.Error().Err(err).Str("cliente_id", cliente.ID.String()).Msg("falha ao processar cliente")
			resp.Erros = append(resp.Erros, dto.ErroClienteResponse{
				ClienteID: cliente.ID.String(),
				Erro:      err.Error(),
			})
			continue
		}
		resp.Clientes = append(resp.Clientes, *resultado)
	}

	return resp, nil
}

func (s *processamentoService) resolverClientes(ctx context.Context, clienteIDs []uuid.UUID) ([]model.Cliente, error) {
	if len(clienteIDs) == 0 {
		return s.clientes.List(ctx)
	}
	clientes := make([]model.Cliente, 0, len(clienteIDs))
	for _, id := range clienteIDs {
		c, err := s.clientes.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClienteNaoEncontrado
			}
			return nil, err
		}
		clientes = append(clientes, *c)
	}
	return clientes, nil
}

func (s *processamentoService) processarCliente(ctx context.Context, cliente *model.Cliente, agora time.Time) (*dto.ProcessamentoClienteResponse, error) {
	// No processamento em massa, cliente sem configuração cai nos limiares
	// padrão em vez de falhar.
	regra := pricing.RegraCliente{}
	if cfg, err := s.clientes.FindConfiguracao(ctx, cliente.ID); err == nil {
		regra = regraDe(cfg)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lotes, err := s.lotes.ListByCliente(ctx, cliente.ID)
	if err != nil {
		return nil, err
	}

	return s.processarLotes(ctx, cliente.ID, cliente.Nome, lotes, regra, agora)
}

func (s *processamentoService) processarLotes(ctx context.Context, clienteID uuid.UUID, nomeCliente string, lotes []model.Lote, regra pricing.RegraCliente, agora time.Time) (*dto.ProcessamentoClienteResponse, error) {
	resp := &dto.ProcessamentoClienteResponse{
		ClienteID:      clienteID.String(),
		NomeCliente:    nomeCliente,
		ProcessadoEm:   agora.Format(time.RFC3339),
		LotesPorStatus: map[string][]dto.LoteProcessadoResponse{},
		Resultados:     make([]dto.LoteProcessadoResponse, 0, len(lotes)),
	}

	for i := range lotes {
		item, err := s.processarLote(ctx, &lotes[i], regra, agora)
		if err != nil {
			return nil, err
		}
		resp.Resultados = append(resp.Resultados, *item)
		resp.LotesPorStatus[item.Status] = append(resp.LotesPorStatus[item.Status], *item)

		resp.Resumo.Total++
		switch item.Status {
		case pricing.StatusAlerta:
			resp.Resumo.Alerta++
		case pricing.StatusDistribuicao:
			resp.Resumo.Distribuicao++
		case pricing.StatusCritico:
			resp.Resumo.Critico++
		default:
			resp.Resumo.Normal++
		}
	}

	return resp, nil
}

func (s *processamentoService) processarLote(ctx context.Context, lote *model.Lote, regra pricing.RegraCliente, agora time.Time) (*dto.LoteProcessadoResponse, error) {
	metricas := pricing.MetricasEstoque{}
	vendidoHoje := 0
	if snapshot, err := s.estoque.FindByLote(ctx, lote.ID); err == nil {
		metricas.TotalEstoque = snapshot.QuantidadeInicial
		metricas.VendidoDesdeEntrada = snapshot.VendidoTotal
		vendidoHoje, err = s.estoque.VendaDoDia(ctx, lote.ID, agora.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, repository.ErrSnapshotNaoEncontrado) {
		return nil, err
	}

	calc, err := pricing.CalcularPrecoMercado(lote.PrecoBase, lote.DataValidade, metricas, s.estrategia, agora)
	if err != nil {
		return nil, err
	}

	status := pricing.AvaliarStatusLote(calc.DiasParaVencer, janelaValidade(lote), regra)

	nomeProduto := "Produto"
	categoria := "indefinido"
	if lote.Produto != nil {
		nomeProduto = lote.Produto.Nome
		categoria = lote.Produto.Categoria
	}

	return &dto.LoteProcessadoResponse{
		LoteID:                  lote.ID.String(),
		NomeProduto:             nomeProduto,
		Categoria:               categoria,
		PrecoBase:               lote.PrecoBase,
		PrecoSugerido:           calc.PrecoSugerido,
		DiasParaVencer:          calc.DiasParaVencer,
		PercentualDiasRestantes: status.PercentualDiasRestantes,
		Demanda:                 string(calc.OfertaDemanda.Avaliacao),
		DescontoTotal:           calc.DescontoTotal,
		VendidoHoje:             vendidoHoje,
		VendidoDesdeEntrada:     metricas.VendidoDesdeEntrada,
		PercentualVendas:        calc.OfertaDemanda.PercentualVendas,
		Status:                  status.Status,
		Prioridade:              status.Prioridade,
		AtivarDistribuicao:      status.AtivarDistribuicao,
		AtivarNotificacao:       status.AtivarNotificacao,
		AplicarPrecoSocial:      status.AplicarPrecoSocial,
	}, nil
}

// janelaValidade devolve a janela total de validade em dias: colheita→validade
// quando a colheita está registrada, senão a janela padrão de 30 dias.
func janelaValidade(lote *model.Lote) int {
	if lote.DataColheita != nil {
		return pricing.DiasEntreDatas(lote.DataValidade, *lote.DataColheita)
	}
	return pricing.ValidadeDiasPadrao
}

// regraDe converte a configuração persistida na regra usada pelo classificador.
func regraDe(cfg *model.ClienteConfiguracao) pricing.RegraCliente {
	if cfg == nil {
		return pricing.RegraCliente{}
	}
	return pricing.RegraCliente{
		PercentualDiasAlerta:       cfg.PercentualDiasAlerta,
		PercentualDiasDistribuicao: cfg.PercentualDiasDistribuicao,
		PercentualDiasCritico:      cfg.PercentualDiasCritico,
	}
}
