package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

const agentInsightsTable = "agent_insights"

type AgentInsightRepository interface {
	List(filters *domain.AgentInsightFilters) ([]*domain.AgentInsight, error)
	CountByFilters(filters *domain.AgentInsightFilters) (int, error)
	CountUnread(accountID string) (int, error)
	SetRead(id int64, isRead bool) error
	SetImplemented(id int64, isImplemented bool) error
}

type agentInsightRepository struct {
	conn *postgres.Connection
}

func NewAgentInsightRepository(conn *postgres.Connection) AgentInsightRepository {
	return &agentInsightRepository{
		conn: conn,
	}
}

func (r *agentInsightRepository) List(filters *domain.AgentInsightFilters) ([]*domain.AgentInsight, error) {
	builder := squirrel.
		Select(
			"id", "account_id", "insight_type", "priority", "title",
			"description", "is_read", "is_implemented", "timestamp",
		).
		From(agentInsightsTable).
		OrderBy("timestamp DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64((filters.Page - 1) * filters.Limit)).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyInsightFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.AgentInsight, 0)
	for rows.Next() {
		insight := &domain.AgentInsight{}
		err := rows.Scan(
			&insight.ID,
			&insight.AccountID,
			&insight.InsightType,
			&insight.Priority,
			&insight.Title,
			&insight.Description,
			&insight.IsRead,
			&insight.IsImplemented,
			&insight.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

// CountByFilters conta os insights com os mesmos filtros da listagem, para que
// a paginação reflita o conjunto filtrado
func (r *agentInsightRepository) CountByFilters(filters *domain.AgentInsightFilters) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(agentInsightsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyInsightFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar insights: %w", err)
	}

	return total, nil
}

func (r *agentInsightRepository) CountUnread(accountID string) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(agentInsightsTable).
		Where(squirrel.Eq{"is_read": false}).
		PlaceholderFormat(squirrel.Dollar)

	if accountID != "" {
		builder = builder.Where(squirrel.Eq{"account_id": accountID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar insights não lidos: %w", err)
	}

	return count, nil
}

func (r *agentInsightRepository) SetRead(id int64, isRead bool) error {
	return r.updateFlag(id, "is_read", isRead)
}

func (r *agentInsightRepository) SetImplemented(id int64, isImplemented bool) error {
	return r.updateFlag(id, "is_implemented", isImplemented)
}

func (r *agentInsightRepository) updateFlag(id int64, column string, value bool) error {
	query, args, err := squirrel.
		Update(agentInsightsTable).
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func applyInsightFilters(builder squirrel.SelectBuilder, filters *domain.AgentInsightFilters) squirrel.SelectBuilder {
	if filters.IsRead != nil {
		builder = builder.Where(squirrel.Eq{"is_read": *filters.IsRead})
	}
	if filters.Priority != "" {
		builder = builder.Where(squirrel.Eq{"priority": filters.Priority})
	}
	if filters.InsightType != "" {
		builder = builder.Where(squirrel.Eq{"insight_type": filters.InsightType})
	}
	if filters.AccountID != "" {
		builder = builder.Where(squirrel.Eq{"account_id": filters.AccountID})
	}
	return builder
}
