package repository

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

var campaignInsightColumns = []string{"id", "nome", "periodo", "insights", "recomendacoes", "conclusao", "criado_em"}

func TestCampaignInsightRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCampaignInsightRepository(&postgres.Connection{DB: db})

	criadoEm := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(campaignInsightColumns).
		AddRow("abc123", "Campanha Verão", "01/12 a 31/12", []byte(`["CTR acima da média"]`), []byte(`["Aumentar orçamento"]`), "Campanha saudável", criadoEm)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nome, periodo, insights, recomendacoes, conclusao, criado_em FROM insights_campanha ORDER BY criado_em DESC")).
		WillReturnRows(rows)

	insights, err := repo.ListAll()

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "abc123", insights[0].ID)
	assert.JSONEq(t, `["CTR acima da média"]`, string(insights[0].Insights))
	assert.JSONEq(t, `["Aumentar orçamento"]`, string(insights[0].Recomendacoes))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignInsightRepository_GetByID_NaoEncontradoRetornaNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCampaignInsightRepository(&postgres.Connection{DB: db})

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("inexistente").
		WillReturnRows(sqlmock.NewRows(campaignInsightColumns))

	insight, err := repo.GetByID("inexistente")

	assert.NoError(t, err)
	assert.Nil(t, insight)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignInsightRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCampaignInsightRepository(&postgres.Connection{DB: db})

	criadoEm := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO insights_campanha (id,nome,periodo,insights,recomendacoes,conclusao,criado_em) VALUES ($1,$2,$3,$4,$5,$6,NOW()) RETURNING criado_em")).
		WithArgs("abc123", "Campanha Verão", "01/12 a 31/12", `["CTR acima da média"]`, `["Aumentar orçamento"]`, "Campanha saudável").
		WillReturnRows(sqlmock.NewRows([]string{"criado_em"}).AddRow(criadoEm))

	insight := &domain.CampaignInsight{
		ID:            "abc123",
		Nome:          "Campanha Verão",
		Periodo:       "01/12 a 31/12",
		Insights:      json.RawMessage(`["CTR acima da média"]`),
		Recomendacoes: json.RawMessage(`["Aumentar orçamento"]`),
		Conclusao:     "Campanha saudável",
	}

	err = repo.Insert(insight)

	assert.NoError(t, err)
	assert.Equal(t, criadoEm, insight.CriadoEm)
	assert.NoError(t, mock.ExpectationsWereMet())
}
