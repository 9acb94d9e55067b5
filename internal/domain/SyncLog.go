package domain

import (
	"time"
)

// Status possíveis de uma execução de sincronização
const (
	SyncStatusSuccess = "success"
	SyncStatusFailure = "failure"
)

// SyncLogEntry representa uma entrada da trilha de auditoria de sincronizações.
// Uma entrada é gravada por invocação do webhook, refletindo o desfecho do lote
// inteiro — a de sucesso dentro da mesma transação dos dados, a de falha em uma
// escrita independente após o rollback.
type SyncLogEntry struct {
	ID               int64     `json:"id"`
	SyncType         string    `json:"sync_type"`
	RecordsProcessed int       `json:"records_processed"`
	Status           string    `json:"status"`
	ErrorMessage     *string   `json:"error_message,omitempty"`
	SyncStartTime    time.Time `json:"sync_start_time"`
	SyncEndTime      time.Time `json:"sync_end_time"`
}

// SyncResult resume o desfecho de um lote processado pelo webhook
type SyncResult struct {
	EntityType       SyncEntityType `json:"entity_type"`
	RecordsProcessed int            `json:"records_processed"`
}
