package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

const campaignInsightsTable = "insights_campanha"

type CampaignInsightRepository interface {
	ListAll() ([]*domain.CampaignInsight, error)
	GetByID(id string) (*domain.CampaignInsight, error)
	Insert(insight *domain.CampaignInsight) error
}

type campaignInsightRepository struct {
	conn *postgres.Connection
}

func NewCampaignInsightRepository(conn *postgres.Connection) CampaignInsightRepository {
	return &campaignInsightRepository{
		conn: conn,
	}
}

func (r *campaignInsightRepository) ListAll() ([]*domain.CampaignInsight, error) {
	query, args, err := squirrel.
		Select("id", "nome", "periodo", "insights", "recomendacoes", "conclusao", "criado_em").
		From(campaignInsightsTable).
		OrderBy("criado_em DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.CampaignInsight, 0)
	for rows.Next() {
		insight, err := scanCampaignInsight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight de campanha: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

// GetByID retorna nil quando o insight não existe
func (r *campaignInsightRepository) GetByID(id string) (*domain.CampaignInsight, error) {
	query, args, err := squirrel.
		Select("id", "nome", "periodo", "insights", "recomendacoes", "conclusao", "criado_em").
		From(campaignInsightsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	insight, err := scanCampaignInsight(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight de campanha: %w", err)
	}

	return insight, nil
}

func (r *campaignInsightRepository) Insert(insight *domain.CampaignInsight) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(campaignInsightsTable).
		Columns("id", "nome", "periodo", "insights", "recomendacoes", "conclusao", "criado_em").
		Values(
			insight.ID,
			insight.Nome,
			insight.Periodo,
			string(insight.Insights),
			string(insight.Recomendacoes),
			insight.Conclusao,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING criado_em").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&insight.CriadoEm); err != nil {
		return fmt.Errorf("erro ao inserir insight de campanha: %w", err)
	}

	return nil
}

func scanCampaignInsight(scan func(dest ...interface{}) error) (*domain.CampaignInsight, error) {
	insight := &domain.CampaignInsight{}
	var insightsJSON, recomendacoesJSON []byte

	err := scan(
		&insight.ID,
		&insight.Nome,
		&insight.Periodo,
		&insightsJSON,
		&recomendacoesJSON,
		&insight.Conclusao,
		&insight.CriadoEm,
	)
	if err != nil {
		return nil, err
	}

	insight.Insights = insightsJSON
	insight.Recomendacoes = recomendacoesJSON

	return insight, nil
}
