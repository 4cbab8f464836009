package worker

// notificacao_worker.go
// Consome jobs de QueueNotificacoes e persiste a notificação para o cliente.
// O envio pelo canal configurado (app, email, sms) é responsabilidade de um
// entregador externo que lê a tabela notificacoes.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pedro-Mesquita/devImpacto/internal/model"
	"github.com/Pedro-Mesquita/devImpacto/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificacaoPayload é o envelope enviado para QueueNotificacoes.
type NotificacaoPayload struct {
	ClienteID   string `json:"cliente_id"`
	LoteID      string `json:"lote_id"`
	NomeProduto string `json:"nome_produto"`
	Status      string `json:"status"`
	Motivo      string `json:"motivo"`
}

// NotificacaoWorker persiste as notificações geradas pelo job diário.
type NotificacaoWorker struct {
	notificacoes repository.NotificacaoRepository
}

func NewNotificacaoWorker(notificacoes repository.NotificacaoRepository) *NotificacaoWorker {
	return &NotificacaoWorker{notificacoes: notificacoes}
}

func (w *NotificacaoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload NotificacaoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Payload malformado nunca vai ter sucesso: loga e descarta.
		log.Error().Err(err).Msg("notificacao_worker: payload inválido")
		return nil
	}

	clienteID, err := uuid.Parse(payload.ClienteID)
	if err != nil {
		log.Error().Str("cliente_id", payload.ClienteID).Msg("notificacao_worker: cliente_id inválido")
		return nil
	}
	loteID, err := uuid.Parse(payload.LoteID)
	if err != nil {
		log.Error().Str("lote_id", payload.LoteID).Msg("notificacao_worker: lote_id inválido")
		return nil
	}

	n := &model.Notificacao{
		ClienteID: clienteID,
		LoteID:    loteID,
		Status:    payload.Status,
		Mensagem:  fmt.Sprintf("Lote %s (%s) mudou para %s. %s", payload.LoteID, payload.NomeProduto, payload.Status, payload.Motivo),
	}
	if err := w.notificacoes.Create(ctx, n); err != nil {
		return err
	}

	log.Info().
		Str("cliente_id", payload.ClienteID).
		Str("lote_id", payload.LoteID).
		Str("status", payload.Status).
		Msg("notificacao_worker: notificação registrada")
	return nil
}
