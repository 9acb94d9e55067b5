package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
)

const syncLogsTable = "data_sync_logs"

// SyncLogRepository mantém a trilha de auditoria das sincronizações. Append
// recebe o Queryer explicitamente porque a entrada de sucesso participa da
// transação do lote e a de falha é gravada fora dela.
type SyncLogRepository interface {
	Append(q postgres.Queryer, entry *domain.SyncLogEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) Append(q postgres.Queryer, entry *domain.SyncLogEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(syncLogsTable).
		Columns(
			"sync_type", "records_processed", "status", "error_message",
			"sync_start_time", "sync_end_time",
		).
		Values(
			entry.SyncType,
			entry.RecordsProcessed,
			entry.Status,
			entry.ErrorMessage,
			entry.SyncStartTime,
			entry.SyncEndTime,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove entradas de log mais antigas que o número de dias
// informado e retorna quantas linhas foram removidas
func (r *syncLogRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(syncLogsTable).
		Where(squirrel.Lt{"sync_end_time": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
