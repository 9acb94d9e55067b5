package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-api/pkg/log"
)

// ListCampaignInsights retorna todos os insights de campanha, do mais recente
// ao mais antigo
func ListCampaignInsights(service insighting.CampaignInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insights, err := service.ListCampaignInsights()
		if err != nil {
			logger.WithField("error", err.Error()).Error("campaign-insights: erro ao listar insights de campanha")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar insights", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithField("error", err.Error()).Error("campaign-insights: erro ao codificar resposta")
		}
	})
}

// GetCampaignInsight retorna um insight de campanha específico
func GetCampaignInsight(service insighting.CampaignInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		insight, err := service.GetCampaignInsightByID(id)
		if err != nil {
			if pkgerrors.Is(err, insighting.ErrInsightNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Insight não encontrado", "")
				return
			}
			logger.WithFields(log.Fields{
				"insight_id": id,
				"error":      err.Error(),
			}).Error("campaign-insights: erro ao buscar insight de campanha")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar insight", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insight); err != nil {
			logger.WithField("error", err.Error()).Error("campaign-insights: erro ao codificar resposta")
		}
	})
}

// CreateCampaignInsight registra um novo insight de campanha
func CreateCampaignInsight(service insighting.CampaignInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := &domain.NewCampaignInsightInput{}
		if err := json.NewDecoder(r.Body).Decode(input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de dados inválido", "")
			return
		}

		insight, err := service.CreateCampaignInsight(input)
		if err != nil {
			switch {
			case pkgerrors.Is(err, insighting.ErrMissingRequiredField):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Todos os campos são obrigatórios", "")
			case pkgerrors.Is(err, insighting.ErrInvalidListPayload):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), "")
			default:
				logger.WithField("error", err.Error()).Error("campaign-insights: erro ao criar insight de campanha")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar insight", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(insight); err != nil {
			logger.WithField("error", err.Error()).Error("campaign-insights: erro ao codificar resposta")
		}
	})
}
