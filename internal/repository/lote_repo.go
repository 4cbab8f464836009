package repository

import (
	"context"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoteRepository define o contrato de acesso a lotes e ao histórico
// append-only de transições de status.
type LoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lote, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Lote, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Lote, error)
	ListByClienteStatus(ctx context.Context, clienteID uuid.UUID, status string) ([]model.Lote, error)

	// AtualizarStatus persiste status e preço sugerido de um lote.
	AtualizarStatus(ctx context.Context, loteID uuid.UUID, status string, precoSugerido decimal.Decimal) error

	// InserirStatusHistorico anexa um registro de transição ao histórico.
	// A tabela é append-only: não existe Update nem Delete.
	InserirStatusHistorico(ctx context.Context, h *model.LoteStatusHistorico) error

	ListStatusHistorico(ctx context.Context, loteID uuid.UUID) ([]model.LoteStatusHistorico, error)
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lote, error) {
	var l model.Lote
	err := r.db.WithContext(ctx).Preload("Produto").First(&l, id).Error
	return &l, err
}

func (r *loteRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.db.WithContext(ctx).Preload("Produto").Where("id IN ?", ids).Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.db.WithContext(ctx).Preload("Produto").
		Where("cliente_id = ?", clienteID).
		Order("data_validade ASC").
		Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListByClienteStatus(ctx context.Context, clienteID uuid.UUID, status string) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.db.WithContext(ctx).Preload("Produto").
		Where("cliente_id = ? AND status = ?", clienteID, status).
		Order("data_validade ASC").
		Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) AtualizarStatus(ctx context.Context, loteID uuid.UUID, status string, precoSugerido decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Lote{}).Where("id = ?", loteID).Updates(map[string]interface{}{
		"status":         status,
		"preco_sugerido": precoSugerido,
	}).Error
}

func (r *loteRepo) InserirStatusHistorico(ctx context.Context, h *model.LoteStatusHistorico) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *loteRepo) ListStatusHistorico(ctx context.Context, loteID uuid.UUID) ([]model.LoteStatusHistorico, error) {
	var historico []model.LoteStatusHistorico
	err := r.db.WithContext(ctx).
		Where("lote_id = ?", loteID).
		Order("created_at DESC").
		Find(&historico).Error
	return historico, err
}
