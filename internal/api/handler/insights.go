package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-api/pkg/log"
)

// ListInsights lista os insights do agente com filtros e paginação
func ListInsights(service insighting.AgentInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		filters := &domain.AgentInsightFilters{
			Priority:    query.Get("priority"),
			InsightType: query.Get("insight_type"),
			AccountID:   query.Get("account_id"),
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", "")
				return
			}
			filters.Limit = limit
		}

		if raw := query.Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro page inválido", "")
				return
			}
			filters.Page = page
		}

		if raw := query.Get("is_read"); raw != "" {
			isRead := raw == "true"
			filters.IsRead = &isRead
		}

		page, err := service.ListInsights(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("insights: erro ao listar insights")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar insights", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			logger.WithField("error", err.Error()).Error("insights: erro ao codificar resposta")
		}
	})
}

// GetUnreadInsightsCount retorna a contagem de insights não lidos
func GetUnreadInsightsCount(service insighting.AgentInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		count, err := service.UnreadCount(r.URL.Query().Get("account_id"))
		if err != nil {
			logger.WithField("error", err.Error()).Error("insights: erro ao contar insights não lidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao contar insights", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"count": count}); err != nil {
			logger.WithField("error", err.Error()).Error("insights: erro ao codificar resposta")
		}
	})
}

// MarkInsightRead atualiza o estado de leitura de um insight
func MarkInsightRead(service insighting.AgentInsighter) http.Handler {
	return updateInsightFlag("is_read", "Status do insight atualizado com sucesso", service.MarkRead)
}

// MarkInsightImplemented atualiza o estado de implementação de um insight
func MarkInsightImplemented(service insighting.AgentInsighter) http.Handler {
	return updateInsightFlag("is_implemented", "Status de implementação atualizado com sucesso", service.MarkImplemented)
}

func updateInsightFlag(field string, successMessage string, update func(id int64, value bool) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de insight inválido", "")
			return
		}

		// Ausência do campo no corpo equivale a true
		body := map[string]*bool{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err.Error() != "EOF" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de dados inválido", "")
			return
		}

		value := true
		if flag, ok := body[field]; ok && flag != nil {
			value = *flag
		}

		if err := update(id, value); err != nil {
			if pkgerrors.Is(err, insighting.ErrInsightNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Insight não encontrado", "")
				return
			}
			logger.WithFields(log.Fields{
				"insight_id": id,
				"field":      field,
				"error":      err.Error(),
			}).Error("insights: erro ao atualizar insight")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar insight", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"success": true,
			"message": successMessage,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("insights: erro ao codificar resposta")
		}
	})
}
