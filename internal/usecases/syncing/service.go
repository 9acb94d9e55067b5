package syncing

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"github.com/vfg2006/marketing-analytics-api/pkg/log"
)

var jsonDecoder = jsoniter.ConfigCompatibleWithStandardLibrary

// Syncer processa lotes homogêneos de entidades recebidos do n8n e os aplica
// ao banco como uma unidade atômica, registrando sempre uma entrada de
// auditoria por invocação.
type Syncer interface {
	ProcessBatch(ctx context.Context, entityType string, records []json.RawMessage) (*domain.SyncResult, error)
}

type Service struct {
	conn     postgres.Conn
	syncRepo repository.MetaSyncRepository
	logRepo  repository.SyncLogRepository
}

func NewService(
	conn postgres.Conn,
	syncRepo repository.MetaSyncRepository,
	logRepo repository.SyncLogRepository,
) Syncer {
	return &Service{
		conn:     conn,
		syncRepo: syncRepo,
		logRepo:  logRepo,
	}
}

// ProcessBatch aplica todos os registros do lote na ordem recebida, dentro de
// uma única transação. A entrada de auditoria de sucesso participa da mesma
// transação; a de falha é gravada em uma escrita independente, depois do
// rollback, para que sobreviva ao desfazimento dos dados.
func (s *Service) ProcessBatch(ctx context.Context, entityType string, records []json.RawMessage) (*domain.SyncResult, error) {
	logger := log.ForContext(ctx)

	entity, err := domain.ParseSyncEntityType(entityType)
	if err != nil {
		return nil, ErrUnknownEntityType
	}

	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	startTime := time.Now()

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.applyBatch(tx, entity, records); err != nil {
			return err
		}

		return s.logRepo.Append(tx, &domain.SyncLogEntry{
			SyncType:         string(entity),
			RecordsProcessed: len(records),
			Status:           domain.SyncStatusSuccess,
			SyncStartTime:    startTime,
			SyncEndTime:      time.Now(),
		})
	})
	if err != nil {
		if pkgerrors.Is(err, postgres.ErrBeginTransaction) {
			// Falha antes de qualquer escrita: nada a desfazer, nada a auditar
			return nil, pkgerrors.Wrap(ErrAcquireConnection, err.Error())
		}

		logger.WithFields(log.Fields{
			"entity_type": string(entity),
			"records":     len(records),
			"error":       err.Error(),
		}).Error("sync: lote desfeito por erro de persistência")

		s.appendFailureLog(entity, len(records), startTime, err)

		return nil, pkgerrors.Wrap(err, ErrBatchFailed.Error())
	}

	logger.WithFields(log.Fields{
		"entity_type": string(entity),
		"records":     len(records),
	}).Info("sync: lote aplicado com sucesso")

	return &domain.SyncResult{
		EntityType:       entity,
		RecordsProcessed: len(records),
	}, nil
}

// applyBatch executa um upsert por registro, na ordem do lote. A primeira
// falha interrompe o laço e derruba a transação inteira.
func (s *Service) applyBatch(tx *sql.Tx, entity domain.SyncEntityType, records []json.RawMessage) error {
	for i, raw := range records {
		if err := s.applyRecord(tx, entity, raw); err != nil {
			return fmt.Errorf("registro %d de %d: %w", i+1, len(records), err)
		}
	}
	return nil
}

func (s *Service) applyRecord(tx *sql.Tx, entity domain.SyncEntityType, raw json.RawMessage) error {
	switch entity {
	case domain.SyncEntityAccounts:
		record := &domain.AccountRecord{}
		if err := jsonDecoder.Unmarshal(raw, record); err != nil {
			return fmt.Errorf("erro ao decodificar conta: %w", err)
		}
		return s.syncRepo.UpsertAccount(tx, record)

	case domain.SyncEntityCampaigns:
		record := &domain.CampaignRecord{}
		if err := jsonDecoder.Unmarshal(raw, record); err != nil {
			return fmt.Errorf("erro ao decodificar campanha: %w", err)
		}
		return s.syncRepo.UpsertCampaign(tx, record)

	case domain.SyncEntityAdSets:
		record := &domain.AdSetRecord{}
		if err := jsonDecoder.Unmarshal(raw, record); err != nil {
			return fmt.Errorf("erro ao decodificar conjunto de anúncios: %w", err)
		}
		return s.syncRepo.UpsertAdSet(tx, record)

	case domain.SyncEntityAds:
		record := &domain.AdRecord{}
		if err := jsonDecoder.Unmarshal(raw, record); err != nil {
			return fmt.Errorf("erro ao decodificar anúncio: %w", err)
		}
		return s.syncRepo.UpsertAd(tx, record)

	case domain.SyncEntityPerformance:
		record := domain.PerformanceRecord{}
		if err := jsonDecoder.Unmarshal(raw, &record); err != nil {
			return fmt.Errorf("erro ao decodificar registro de performance: %w", err)
		}
		return s.syncRepo.UpsertPerformance(tx, record)
	}

	return ErrUnknownEntityType
}

// appendFailureLog grava a entrada de auditoria de falha fora da transação já
// desfeita. É best-effort: uma falha aqui é logada e não substitui o erro
// original do lote.
func (s *Service) appendFailureLog(entity domain.SyncEntityType, records int, startTime time.Time, cause error) {
	message := cause.Error()

	entry := &domain.SyncLogEntry{
		SyncType:         string(entity),
		RecordsProcessed: records,
		Status:           domain.SyncStatusFailure,
		ErrorMessage:     &message,
		SyncStartTime:    startTime,
		SyncEndTime:      time.Now(),
	}

	if err := s.logRepo.Append(s.conn, entry); err != nil {
		log.L.WithFields(log.Fields{
			"entity_type": string(entity),
			"error":       err.Error(),
		}).Error("sync: erro ao registrar entrada de auditoria de falha")
	}
}
