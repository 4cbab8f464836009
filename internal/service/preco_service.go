package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// precoCacheTTL limita o cache ao dia corrente: o preço depende da data de
// referência, então a chave também carrega a data.
const precoCacheTTL = 4 * time.Hour

// ErrNenhumLoteEncontrado é devolvido quando nenhum dos loteIds pedidos existe.
var ErrNenhumLoteEncontrado = errors.New("nenhum lote encontrado")

// PrecoDinamicoService calcula preços sugeridos sob demanda para um conjunto
// de lotes. Cálculo puro + leitura de repositórios; nunca escreve status.
type PrecoDinamicoService interface {
	CalcularParaLotes(ctx context.Context, loteIDs []uuid.UUID, agora time.Time) (*dto.PrecoDinamicoResponse, error)
}

type precoService struct {
	lotes      repository.LoteRepository
	estoque    repository.EstoqueRepository
	rdb        *redis.Client
	estrategia pricing.Estrategia
}

// NewPrecoDinamicoService monta o serviço. rdb pode ser nil (sem cache).
func NewPrecoDinamicoService(lotes repository.LoteRepository, estoque repository.EstoqueRepository, rdb *redis.Client, estrategia pricing.Estrategia) PrecoDinamicoService {
	return &precoService{lotes: lotes, estoque: estoque, rdb: rdb, estrategia: estrategia}
}

func (s *precoService) CalcularParaLotes(ctx context.Context, loteIDs []uuid.UUID, agora time.Time) (*dto.PrecoDinamicoResponse, error) {
	lotes, err := s.lotes.FindByIDs(ctx, loteIDs)
	if err != nil {
		return nil, err
	}
	if len(lotes) == 0 {
		return nil, ErrNenhumLoteEncontrado
	}

	resultados := make([]dto.PrecoLoteResponse, 0, len(lotes))
	for i := range lotes {
		lote := &lotes[i]

		if cached, ok := s.doCache(ctx, lote.ID, agora); ok {
			resultados = append(resultados, *cached)
			continue
		}

		item, err := s.calcularLote(ctx, lote, agora)
		if err != nil {
			return nil, err
		}

		s.guardarCache(ctx, lote.ID, agora, item)
		resultados = append(resultados, *item)
	}

	return &dto.PrecoDinamicoResponse{Total: len(resultados), Resultados: resultados}, nil
}

func (s *precoService) calcularLote(ctx context.Context, lote *model.Lote, agora time.Time) (*dto.PrecoLoteResponse, error) {
	metricas := pricing.MetricasEstoque{}
	if snapshot, err := s.estoque.FindByLote(ctx, lote.ID); err == nil {
		metricas.TotalEstoque = snapshot.QuantidadeInicial
		metricas.VendidoDesdeEntrada = snapshot.VendidoTotal
	} else if !errors.Is(err, repository.ErrSnapshotNaoEncontrado) {
		return nil, err
	}
	// Lote sem snapshot segue com métricas zeradas: a demanda sai
	// "indefinido" e a estratégia de mercado curto-circuita.

	calc, err := pricing.CalcularPrecoMercado(lote.PrecoBase, lote.DataValidade, metricas, s.estrategia, agora)
	if err != nil {
		return nil, err
	}

	nomeProduto := "Produto"
	categoria := "indefinido"
	if lote.Produto != nil {
		nomeProduto = lote.Produto.Nome
		categoria = lote.Produto.Categoria
	}

	return &dto.PrecoLoteResponse{
		LoteID:             lote.ID.String(),
		NomeProduto:        nomeProduto,
		Categoria:          categoria,
		PrecoBase:          lote.PrecoBase,
		PrecoSugerido:      calc.PrecoSugerido,
		DiasParaVencer:     calc.DiasParaVencer,
		Demanda:            string(calc.OfertaDemanda.Avaliacao),
		PercentualVendas:   calc.OfertaDemanda.PercentualVendas,
		DescontoValidade:   calc.DescontoValidade,
		DescontoTotal:      calc.DescontoTotal,
		PercentualRestante: calc.PercentualRestante,
		Urgencia:           calc.Urgencia,
		ImpactoMercado:     calc.ImpactoMercado,
		FatorAjuste:        calc.FatorAjuste,
	}, nil
}

// ── Cache ─────────────────────────────────────────────────────────────────────
// Best effort: erros de Redis nunca derrubam o cálculo.

func cacheKey(loteID uuid.UUID, agora time.Time) string {
	return "preco:" + loteID.String() + ":" + agora.Format("2006-01-02")
}

func (s *precoService) doCache(ctx context.Context, loteID uuid.UUID, agora time.Time) (*dto.PrecoLoteResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, cacheKey(loteID, agora)).Bytes()
	if err != nil {
		return nil, false
	}
	var item dto.PrecoLoteResponse
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, false
	}
	return &item, true
}

func (s *precoService) guardarCache(ctx context.Context, loteID uuid.UUID, agora time.Time, item *dto.PrecoLoteResponse) {
	if s.rdb == nil {
		return
	}
	if b, err := json.Marshal(item); err == nil {
		_ = s.rdb.Set(ctx, cacheKey(loteID, agora), b, precoCacheTTL).Err()
	}
}
