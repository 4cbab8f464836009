package repository

import (
	"context"
	"errors"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSnapshotNaoEncontrado sinaliza lote sem snapshot de estoque — o chamador
// decide entre pular o lote (job) ou responder "não encontrado" (API).
var ErrSnapshotNaoEncontrado = errors.New("snapshot de estoque não encontrado para o lote")

// EstoqueRepository define o contrato de leitura dos snapshots de estoque e
// das vendas diárias. O núcleo de precificação nunca escreve aqui.
type EstoqueRepository interface {
	FindByLote(ctx context.Context, loteID uuid.UUID) (*model.EstoqueLote, error)
	VendaDoDia(ctx context.Context, loteID uuid.UUID, dataVenda string) (int, error)
	VendidoTotalPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.TotalPorLote, error)
	QuantidadeInicialPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.TotalPorLote, error)
}

type estoqueRepo struct{ db *gorm.DB }

func NewEstoqueRepository(db *gorm.DB) EstoqueRepository { return &estoqueRepo{db: db} }

func (r *estoqueRepo) FindByLote(ctx context.Context, loteID uuid.UUID) (*model.EstoqueLote, error) {
	var e model.EstoqueLote
	err := r.db.WithContext(ctx).Where("lote_id = ?", loteID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estoqueRepo) VendaDoDia(ctx context.Context, loteID uuid.UUID, dataVenda string) (int, error) {
	var v model.VendaDiaria
	err := r.db.WithContext(ctx).
		Where("lote_id = ? AND data_venda = ?", loteID, dataVenda).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v.Quantidade, nil
}

func (r *estoqueRepo) VendidoTotalPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.TotalPorLote, error) {
	return r.somaPorLote(ctx, clienteID, "SUM(estoque_lote.vendido_total)")
}

func (r *estoqueRepo) QuantidadeInicialPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.TotalPorLote, error) {
	return r.somaPorLote(ctx, clienteID, "SUM(estoque_lote.quantidade_inicial)")
}

func (r *estoqueRepo) somaPorLote(ctx context.Context, clienteID uuid.UUID, agregacao string) ([]dto.TotalPorLote, error) {
	var linhas []dto.TotalPorLote
	err := r.db.WithContext(ctx).
		Model(&model.EstoqueLote{}).
		Select("estoque_lote.lote_id AS lote_id, "+agregacao+" AS total").
		Joins("JOIN lotes ON lotes.id = estoque_lote.lote_id").
		Where("lotes.cliente_id = ?", clienteID).
		Group("estoque_lote.lote_id").
		Scan(&linhas).Error
	return linhas, err
}
