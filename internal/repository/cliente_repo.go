package repository

import (
	"context"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository define o contrato de acesso a clientes e suas
// configurações. Os serviços dependem desta interface, não da implementação
// GORM, permitindo testes unitários com stubs em memória.
type ClienteRepository interface {
	List(ctx context.Context) ([]model.Cliente, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindConfiguracao(ctx context.Context, clienteID uuid.UUID) (*model.ClienteConfiguracao, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindConfiguracao(ctx context.Context, clienteID uuid.UUID) (*model.ClienteConfiguracao, error) {
	var cfg model.ClienteConfiguracao
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).First(&cfg).Error
	return &cfg, err
}
