package service

import (
	"context"
	"errors"

	"github.com/Pedro-Mesquita/devImpacto/internal/dto"
	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoteService lista lotes de um cliente, com filtro opcional por status.
type LoteService interface {
	ListarLotesCliente(ctx context.Context, clienteID uuid.UUID, status string) (*dto.LoteListResponse, error)
}

type loteService struct {
	clientes repository.ClienteRepository
	lotes    repository.LoteRepository
}

func NewLoteService(clientes repository.ClienteRepository, lotes repository.LoteRepository) LoteService {
	return &loteService{clientes: clientes, lotes: lotes}
}

func (s *loteService) ListarLotesCliente(ctx context.Context, clienteID uuid.UUID, status string) (*dto.LoteListResponse, error) {
	if _, err := s.clientes.FindByID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNaoEncontrado
		}
		return nil, err
	}

	var (
		lotes []model.Lote
		err   error
	)
	if status == "" {
		lotes, err = s.lotes.ListByCliente(ctx, clienteID)
	} else {
		lotes, err = s.lotes.ListByClienteStatus(ctx, clienteID, status)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.LoteListResponse{Total: len(lotes), Lotes: make([]dto.LoteResponse, 0, len(lotes))}
	for i := range lotes {
		resp.Lotes = append(resp.Lotes, loteParaResponse(&lotes[i]))
	}
	return resp, nil
}

func loteParaResponse(l *model.Lote) dto.LoteResponse {
	r := dto.LoteResponse{
		ID:            l.ID.String(),
		ClienteID:     l.ClienteID.String(),
		ProdutoID:     l.ProdutoID.String(),
		DataValidade:  l.DataValidade.Format("2006-01-02"),
		PrecoBase:     l.PrecoBase,
		Status:        l.Status,
		PrecoSugerido: l.PrecoSugerido,
	}
	if l.DataColheita != nil {
		colheita := l.DataColheita.Format("2006-01-02")
		r.DataColheita = &colheita
	}
	if l.Produto != nil {
		r.NomeProduto = l.Produto.Nome
	}
	return r
}
