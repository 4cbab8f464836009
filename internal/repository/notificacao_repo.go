package repository

import (
	"context"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificacaoRepository persiste as notificações geradas pelo worker.
type NotificacaoRepository interface {
	Create(ctx context.Context, n *model.Notificacao) error
	ListByCliente(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.Notificacao, error)
}

type notificacaoRepo struct{ db *gorm.DB }

func NewNotificacaoRepository(db *gorm.DB) NotificacaoRepository {
	return &notificacaoRepo{db: db}
}

func (r *notificacaoRepo) Create(ctx context.Context, n *model.Notificacao) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacaoRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.Notificacao, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var notificacoes []model.Notificacao
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificacoes).Error
	return notificacoes, err
}
