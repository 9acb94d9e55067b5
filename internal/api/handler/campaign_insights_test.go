package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apirouter "github.com/vfg2006/marketing-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"github.com/vfg2006/marketing-analytics-api/internal/usecases/insighting"
	insightingmocks "github.com/vfg2006/marketing-analytics-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"

	stdjson "encoding/json"
)

func newCampaignInsightsRouter(t *testing.T) (apirouter.Router, *insightingmocks.MockInsightService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := insightingmocks.NewMockInsightService(ctrl)

	return apirouter.New(apirouter.WithRoutes(CampaignInsights(service)...)), service
}

func TestListCampaignInsights(t *testing.T) {
	r, service := newCampaignInsightsRouter(t)

	service.EXPECT().ListCampaignInsights().Return([]*domain.CampaignInsight{
		{
			ID:            "abc123",
			Nome:          "Campanha Verão",
			Periodo:       "01/12 a 31/12",
			Insights:      stdjson.RawMessage(`["CTR acima da média"]`),
			Recomendacoes: stdjson.RawMessage(`["Aumentar orçamento"]`),
			Conclusao:     "Campanha saudável",
			CriadoEm:      time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/campaign-insights", nil)
	recorder := httptest.NewRecorder()

	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var insights []map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(recorder.Body.Bytes(), &insights))
	require.Len(t, insights, 1)
	assert.Equal(t, "abc123", insights[0]["id"])
}

func TestGetCampaignInsight_NaoEncontrado(t *testing.T) {
	r, service := newCampaignInsightsRouter(t)

	service.EXPECT().GetCampaignInsightByID("inexistente").Return(nil, insighting.ErrInsightNotFound)

	request := httptest.NewRequest(http.MethodGet, "/api/campaign-insights/inexistente", nil)
	recorder := httptest.NewRecorder()

	r.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Insight não encontrado")
}

func TestCreateCampaignInsight(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *insightingmocks.MockInsightService)
		expectedStatus int
	}{
		{
			name: "cria o insight e responde 201",
			body: `{"nome":"Campanha Verão","periodo":"01/12 a 31/12","insights":["a"],"recomendacoes":["b"],"conclusao":"ok"}`,
			setup: func(service *insightingmocks.MockInsightService) {
				service.EXPECT().
					CreateCampaignInsight(gomock.Any()).
					DoAndReturn(func(input *domain.NewCampaignInsightInput) (*domain.CampaignInsight, error) {
						assert.Equal(t, "Campanha Verão", input.Nome)
						return &domain.CampaignInsight{
							ID:            "abc123",
							Nome:          input.Nome,
							Periodo:       input.Periodo,
							Insights:      input.Insights,
							Recomendacoes: input.Recomendacoes,
							Conclusao:     input.Conclusao,
							CriadoEm:      time.Now(),
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "corpo que não é JSON é rejeitado",
			body:           `nada`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "campos obrigatórios ausentes",
			body: `{"nome":"Campanha Verão"}`,
			setup: func(service *insightingmocks.MockInsightService) {
				service.EXPECT().
					CreateCampaignInsight(gomock.Any()).
					Return(nil, insighting.ErrMissingRequiredField)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "lista malformada",
			body: `{"nome":"a","periodo":"b","insights":{"x":1},"recomendacoes":["b"],"conclusao":"c"}`,
			setup: func(service *insightingmocks.MockInsightService) {
				service.EXPECT().
					CreateCampaignInsight(gomock.Any()).
					Return(nil, insighting.ErrInvalidListPayload)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, service := newCampaignInsightsRouter(t)

			if tt.setup != nil {
				tt.setup(service)
			}

			request := httptest.NewRequest(http.MethodPost, "/api/campaign-insights", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			r.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
