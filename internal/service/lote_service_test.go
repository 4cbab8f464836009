package service

import (
	"context"
	"testing"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificacaoRepo struct {
	notificacoes []model.Notificacao
}

func (r *stubNotificacaoRepo) Create(_ context.Context, n *model.Notificacao) error {
	r.notificacoes = append(r.notificacoes, *n)
	return nil
}

func (r *stubNotificacaoRepo) ListByCliente(_ context.Context, clienteID uuid.UUID, _ int) ([]model.Notificacao, error) {
	var result []model.Notificacao
	for _, n := range r.notificacoes {
		if n.ClienteID == clienteID {
			result = append(result, n)
		}
	}
	return result, nil
}

func TestListarLotesCliente(t *testing.T) {
	clienteID := uuid.New()
	clientes := newStubClienteRepo()
	clientes.clientes = []model.Cliente{{ID: clienteID, Nome: "Feira do Bairro"}}
	lotes := newStubLoteRepo()

	normal := novoLote(clienteID, diaT(2026, 3, 1), diaT(2026, 3, 30))
	alerta := novoLote(clienteID, diaT(2026, 3, 1), diaT(2026, 3, 15))
	alerta.Status = pricing.StatusAlerta
	lotes.lotes[normal.ID] = normal
	lotes.lotes[alerta.ID] = alerta

	svc := NewLoteService(clientes, lotes)

	t.Run("sem filtro lista todos", func(t *testing.T) {
		resp, err := svc.ListarLotesCliente(context.Background(), clienteID, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("filtro por status", func(t *testing.T) {
		resp, err := svc.ListarLotesCliente(context.Background(), clienteID, pricing.StatusAlerta)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, alerta.ID.String(), resp.Lotes[0].ID)
		assert.Equal(t, "Alface", resp.Lotes[0].NomeProduto)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		_, err := svc.ListarLotesCliente(context.Background(), uuid.New(), "")
		assert.ErrorIs(t, err, ErrClienteNaoEncontrado)
	})
}

func TestBuscarLotesEmAlerta(t *testing.T) {
	clienteID := uuid.New()
	clientes := newStubClienteRepo()
	clientes.clientes = []model.Cliente{{ID: clienteID, Nome: "Feira do Bairro"}}
	lotes := newStubLoteRepo()

	alerta := novoLote(clienteID, diaT(2026, 3, 1), diaT(2026, 3, 15))
	alerta.Status = pricing.StatusAlerta
	lotes.lotes[alerta.ID] = alerta
	normal := novoLote(clienteID, diaT(2026, 3, 1), diaT(2026, 3, 30))
	lotes.lotes[normal.ID] = normal

	svc := NewAlertaService(clientes, lotes, &stubNotificacaoRepo{})
	resp, err := svc.BuscarLotesEmAlerta(context.Background(), clienteID)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, pricing.StatusAlerta, resp.Lotes[0].Status)
}
