package insighting

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAgentInsightRepository, *mocks.MockCampaignInsightRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	agentRepo := mocks.NewMockAgentInsightRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignInsightRepository(ctrl)

	return &Service{
		agentInsightRepo:    agentRepo,
		campaignInsightRepo: campaignRepo,
	}, agentRepo, campaignRepo
}

func TestService_ListInsights_AplicaDefaultsDePaginacao(t *testing.T) {
	service, agentRepo, _ := newTestService(t)

	agentRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filters *domain.AgentInsightFilters) ([]*domain.AgentInsight, error) {
			assert.Equal(t, 10, filters.Limit)
			assert.Equal(t, 1, filters.Page)
			return []*domain.AgentInsight{}, nil
		})

	agentRepo.EXPECT().
		CountByFilters(gomock.Any()).
		Return(0, nil)

	page, err := service.ListInsights(nil)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
	assert.Equal(t, 0, page.Pagination.Total)
	assert.Equal(t, 0, page.Pagination.Pages)
}

func TestService_ListInsights_CalculaTotalDePaginas(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		total         int
		expectedPages int
	}{
		{name: "total múltiplo do limite", limit: 10, total: 30, expectedPages: 3},
		{name: "total com resto adiciona uma página", limit: 10, total: 31, expectedPages: 4},
		{name: "menos que uma página", limit: 10, total: 3, expectedPages: 1},
		{name: "nenhum resultado", limit: 10, total: 0, expectedPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, agentRepo, _ := newTestService(t)

			agentRepo.EXPECT().List(gomock.Any()).Return([]*domain.AgentInsight{}, nil)
			agentRepo.EXPECT().CountByFilters(gomock.Any()).Return(tt.total, nil)

			page, err := service.ListInsights(&domain.AgentInsightFilters{Limit: tt.limit, Page: 1})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPages, page.Pagination.Pages)
			assert.Equal(t, tt.total, page.Pagination.Total)
		})
	}
}

func TestService_ListInsights_ErroDoRepositorio(t *testing.T) {
	service, agentRepo, _ := newTestService(t)

	agentRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	page, err := service.ListInsights(&domain.AgentInsightFilters{})

	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_UnreadCount(t *testing.T) {
	service, agentRepo, _ := newTestService(t)

	agentRepo.EXPECT().CountUnread("act_123").Return(5, nil)

	count, err := service.UnreadCount("act_123")

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestService_MarkRead_InsightInexistente(t *testing.T) {
	service, agentRepo, _ := newTestService(t)

	agentRepo.EXPECT().SetRead(int64(999), true).Return(sql.ErrNoRows)

	err := service.MarkRead(999, true)

	assert.ErrorIs(t, err, ErrInsightNotFound)
}

func TestService_MarkImplemented(t *testing.T) {
	service, agentRepo, _ := newTestService(t)

	agentRepo.EXPECT().SetImplemented(int64(42), false).Return(nil)

	err := service.MarkImplemented(42, false)

	assert.NoError(t, err)
}

func TestService_GetCampaignInsightByID_NaoEncontrado(t *testing.T) {
	service, _, campaignRepo := newTestService(t)

	campaignRepo.EXPECT().GetByID("inexistente").Return(nil, nil)

	insight, err := service.GetCampaignInsightByID("inexistente")

	assert.Nil(t, insight)
	assert.ErrorIs(t, err, ErrInsightNotFound)
}

func TestService_CreateCampaignInsight(t *testing.T) {
	tests := []struct {
		name        string
		input       *domain.NewCampaignInsightInput
		setup       func(campaignRepo *mocks.MockCampaignInsightRepository)
		expectedErr error
		validate    func(t *testing.T, insight *domain.CampaignInsight)
	}{
		{
			name: "cria com listas em array JSON",
			input: &domain.NewCampaignInsightInput{
				Nome:          "Campanha Verão",
				Periodo:       "01/12 a 31/12",
				Insights:      json.RawMessage(`["CTR acima da média"]`),
				Recomendacoes: json.RawMessage(`["Aumentar orçamento"]`),
				Conclusao:     "Campanha saudável",
			},
			setup: func(campaignRepo *mocks.MockCampaignInsightRepository) {
				campaignRepo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, insight *domain.CampaignInsight) {
				assert.NotEmpty(t, insight.ID)
				assert.JSONEq(t, `["CTR acima da média"]`, string(insight.Insights))
			},
		},
		{
			name: "aceita lista serializada como string",
			input: &domain.NewCampaignInsightInput{
				Nome:          "Campanha Verão",
				Periodo:       "01/12 a 31/12",
				Insights:      json.RawMessage(`"[\"CTR acima da média\"]"`),
				Recomendacoes: json.RawMessage(`["Aumentar orçamento"]`),
				Conclusao:     "Campanha saudável",
			},
			setup: func(campaignRepo *mocks.MockCampaignInsightRepository) {
				campaignRepo.EXPECT().Insert(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, insight *domain.CampaignInsight) {
				assert.JSONEq(t, `["CTR acima da média"]`, string(insight.Insights))
			},
		},
		{
			name: "campo obrigatório ausente",
			input: &domain.NewCampaignInsightInput{
				Nome:          "Campanha Verão",
				Insights:      json.RawMessage(`["a"]`),
				Recomendacoes: json.RawMessage(`["b"]`),
			},
			expectedErr: ErrMissingRequiredField,
		},
		{
			name: "lista que não é um array é rejeitada",
			input: &domain.NewCampaignInsightInput{
				Nome:          "Campanha Verão",
				Periodo:       "01/12 a 31/12",
				Insights:      json.RawMessage(`{"nao":"é array"}`),
				Recomendacoes: json.RawMessage(`["b"]`),
				Conclusao:     "ok",
			},
			expectedErr: ErrInvalidListPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, campaignRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(campaignRepo)
			}

			insight, err := service.CreateCampaignInsight(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, insight)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, insight)
			if tt.validate != nil {
				tt.validate(t, insight)
			}
		})
	}
}
