package service

import (
	"context"
	"errors"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertaService lista os lotes em alerta de um cliente e o histórico de
// notificações persistidas pelo worker.
type AlertaService interface {
	BuscarLotesEmAlerta(ctx context.Context, clienteID uuid.UUID) (*dto.LoteListResponse, error)
	ListarNotificacoes(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.Notificacao, error)
}

type alertaService struct {
	clientes     repository.ClienteRepository
	lotes        repository.LoteRepository
	notificacoes repository.NotificacaoRepository
}

func NewAlertaService(clientes repository.ClienteRepository, lotes repository.LoteRepository, notificacoes repository.NotificacaoRepository) AlertaService {
	return &alertaService{clientes: clientes, lotes: lotes, notificacoes: notificacoes}
}

func (s *alertaService) BuscarLotesEmAlerta(ctx context.Context, clienteID uuid.UUID) (*dto.LoteListResponse, error) {
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNaoEncontrado
		}
		return nil, err
	}

	lotes, err := s.lotes.ListByClienteStatus(ctx, clienteID, pricing.StatusAlerta)
	if err != nil {
		return nil, err
	}

	resp := &dto.LoteListResponse{Total: len(lotes), Lotes: make([]dto.LoteResponse, 0, len(lotes))}
	for i := range lotes {
		resp.Lotes = append(resp.Lotes, loteParaResponse(&lotes[i]))
	}
	return resp, nil
}

func (s *alertaService) ListarNotificacoes(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.Notificacao, error) {
	return s.notificacoes.ListByCliente(ctx, clienteID, limit)
}
