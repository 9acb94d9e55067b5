package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/marketing-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-api/pkg/log"

	stdjson "encoding/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetaAdsWebhookRequest é o envelope enviado pelo workflow do n8n: um lote
// homogêneo de registros de um único tipo de entidade
type MetaAdsWebhookRequest struct {
	EntityType string               `json:"entity_type"`
	Data       []stdjson.RawMessage `json:"data"`
}

type MetaAdsWebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MetaAdsWebhook recebe os lotes de sincronização do n8n e os aplica ao banco
// de forma transacional. A validação do envelope acontece antes de qualquer
// trabalho no banco.
func MetaAdsWebhook(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &MetaAdsWebhookRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			logger.WithField("error", err.Error()).Warn("webhook: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de dados inválido", "")
			return
		}

		if request.EntityType == "" || request.Data == nil {
			logger.WithFields(log.Fields{
				"entity_type": request.EntityType,
				"has_data":    request.Data != nil,
			}).Warn("webhook: envelope incompleto")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de dados inválido", "")
			return
		}

		logger.WithFields(log.Fields{
			"entity_type": request.EntityType,
			"records":     len(request.Data),
		}).Info("webhook: lote recebido")

		result, err := service.ProcessBatch(r.Context(), request.EntityType, request.Data)
		if err != nil {
			switch {
			case pkgerrors.Is(err, syncing.ErrUnknownEntityType):
				apiErrors.WriteError(
					w,
					apiErrors.ErrUnknownEntityType,
					fmt.Sprintf("Tipo de entidade desconhecido: %s", request.EntityType),
					"",
				)
			case pkgerrors.Is(err, syncing.ErrEmptyBatch):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de dados inválido", "")
			default:
				logger.WithFields(log.Fields{
					"entity_type": request.EntityType,
					"error":       err.Error(),
				}).Error("webhook: erro ao processar lote")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar dados", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := MetaAdsWebhookResponse{
			Success: true,
			Message: fmt.Sprintf(
				"%d registros de %s processados com sucesso",
				result.RecordsProcessed,
				result.EntityType,
			),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("webhook: erro ao codificar resposta")
		}
	})
}
