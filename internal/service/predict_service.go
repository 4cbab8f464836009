package service

import (
	"context"
	"fmt"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
)

// PredictService expõe o scorer de demanda como predição avulsa: recebe as
// features de um lote hipotético e devolve probabilidade, desconto ideal e
// preço com desconto. Não toca banco nem lotes reais.
type PredictService interface {
	Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictResponse, error)
	PredictBatch(ctx context.Context, req dto.PredictBatchRequest) (*dto.PredictBatchResponse, error)
	Status() dto.PredictStatusResponse
}

type predictService struct {
	scorer     pricing.DemandScorer
	nomeScorer string
}

// NewPredictService monta o serviço. scorer nil cai no ScorerNeutro.
func NewPredictService(scorer pricing.DemandScorer, nomeScorer string) PredictService {
	if scorer == nil {
		scorer = pricing.ScorerNeutro{}
		nomeScorer = "neutro"
	}
	return &predictService{scorer: scorer, nomeScorer: nomeScorer}
}

func (s *predictService) Predict(ctx context.Context, req dto.PredictRequest) (*dto.PredictResponse, error) {
	resultado, err := s.calcular(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.PredictResponse{
		Input:        req,
		Resultado:    *resultado,
		Recomendacao: recomendacao(resultado, *req.DiasRestantes),
	}, nil
}

func (s *predictService) PredictBatch(ctx context.Context, req dto.PredictBatchRequest) (*dto.PredictBatchResponse, error) {
	resp := &dto.PredictBatchResponse{
		Total:      len(req.Produtos),
		Resultados: make([]dto.PredictBatchItem, 0, len(req.Produtos)),
	}
	for _, item := range req.Produtos {
		resultado, err := s.calcular(ctx, item)
		if err != nil {
			resp.Falhas++
			resp.Resultados = append(resp.Resultados, dto.PredictBatchItem{Input: item, Erro: err.Error()})
			continue
		}
		resp.Sucesso++
		resp.Resultados = append(resp.Resultados, dto.PredictBatchItem{Input: item, Resultado: resultado})
	}
	return resp, nil
}

func (s *predictService) Status() dto.PredictStatusResponse {
	return dto.PredictStatusResponse{
		Status:   "ok",
		Scorer:   s.nomeScorer,
		Mensagem: "serviço de predição operacional",
	}
}

func (s *predictService) calcular(ctx context.Context, req dto.PredictRequest) (*dto.PredictResultado, error) {
	features := pricing.FeaturesDemanda{
		DiasRestantes:  *req.DiasRestantes,
		EstoqueVendido: *req.EstoqueVendido,
		Demanda:        pricing.Avaliacao(req.Demanda),
		Categoria:      req.Categoria,
		PrecoBase:      req.PrecoBase,
	}

	probabilidade, err := s.scorer.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	fator := pricing.FatorProbabilidade(probabilidade)
	precoComDesconto := pricing.AplicarProbabilidade(req.PrecoBase, probabilidade)

	return &dto.PredictResultado{
		ProbabilidadeVenderTudo: probabilidade,
		DescontoIdeal:           pricing.DescontoIdealPercent(probabilidade),
		FatorPreco:              fator,
		PrecoComDesconto:        precoComDesconto,
		Economia:                req.PrecoBase.Sub(precoComDesconto).Round(2),
	}, nil
}

// recomendacao resume a predição num texto acionável, com variante de urgência
// quando faltam 3 dias ou menos.
func recomendacao(r *dto.PredictResultado, diasRestantes int) string {
	if diasRestantes <= 3 && r.DescontoIdeal >= 37 {
		return fmt.Sprintf("CRÍTICO: aplique %d%% de desconto imediatamente — restam %d dia(s) de validade", r.DescontoIdeal, diasRestantes)
	}
	switch {
	case r.DescontoIdeal <= 5:
		return fmt.Sprintf("Boa saída prevista: desconto leve de %d%% é suficiente", r.DescontoIdeal)
	case r.DescontoIdeal <= 17:
		return fmt.Sprintf("Saída moderada: aplique %d%% de desconto para acelerar as vendas", r.DescontoIdeal)
	case r.DescontoIdeal <= 37:
		return fmt.Sprintf("Risco de sobra: aplique %d%% de desconto e destaque o produto", r.DescontoIdeal)
	default:
		return fmt.Sprintf("Alto risco de perda: aplique %d%% de desconto e considere distribuição social", r.DescontoIdeal)
	}
}
