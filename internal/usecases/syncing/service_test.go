package syncing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *mocks.MockMetaSyncRepository, *mocks.MockSyncLogRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	syncRepo := mocks.NewMockMetaSyncRepository(ctrl)
	logRepo := mocks.NewMockSyncLogRepository(ctrl)

	service := &Service{
		conn:     &postgres.Connection{DB: db},
		syncRepo: syncRepo,
		logRepo:  logRepo,
	}

	return service, mock, syncRepo, logRepo
}

func TestService_ProcessBatch_Sucesso(t *testing.T) {
	service, mock, syncRepo, logRepo := newTestService(t)

	records := []json.RawMessage{
		json.RawMessage(`{"account_id":"act_123","account_name":"Loja A","status":"ACTIVE"}`),
		json.RawMessage(`{"account_id":"act_456","account_name":"Loja B","status":"PAUSED"}`),
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	syncRepo.EXPECT().
		UpsertAccount(gomock.Any(), &domain.AccountRecord{
			AccountID:   "act_123",
			AccountName: "Loja A",
			Status:      "ACTIVE",
		}).
		Return(nil)

	syncRepo.EXPECT().
		UpsertAccount(gomock.Any(), &domain.AccountRecord{
			AccountID:   "act_456",
			AccountName: "Loja B",
			Status:      "PAUSED",
		}).
		Return(nil)

	// A entrada de auditoria de sucesso participa da mesma transação do lote
	logRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(q postgres.Queryer, entry *domain.SyncLogEntry) error {
			assert.Equal(t, "accounts", entry.SyncType)
			assert.Equal(t, 2, entry.RecordsProcessed)
			assert.Equal(t, domain.SyncStatusSuccess, entry.Status)
			assert.Nil(t, entry.ErrorMessage)
			assert.False(t, entry.SyncEndTime.Before(entry.SyncStartTime))
			return nil
		})

	result, err := service.ProcessBatch(context.Background(), "accounts", records)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, domain.SyncEntityAccounts, result.EntityType)
	assert.Equal(t, 2, result.RecordsProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_FalhaDesfazOLoteERegistraAuditoria(t *testing.T) {
	service, mock, syncRepo, logRepo := newTestService(t)

	records := []json.RawMessage{
		json.RawMessage(`{"campaign_id":"cmp_1","account_id":"act_123","campaign_name":"Campanha 1"}`),
		json.RawMessage(`{"campaign_id":"cmp_2","account_id":"act_123","campaign_name":"Campanha 2"}`),
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	syncRepo.EXPECT().
		UpsertCampaign(gomock.Any(), gomock.Any()).
		Return(nil)

	// O segundo registro falha: o lote inteiro é desfeito
	syncRepo.EXPECT().
		UpsertCampaign(gomock.Any(), gomock.Any()).
		Return(errors.New("violação de constraint"))

	// A entrada de falha é gravada fora da transação, depois do rollback
	logRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(q postgres.Queryer, entry *domain.SyncLogEntry) error {
			assert.Equal(t, "campaigns", entry.SyncType)
			assert.Equal(t, 2, entry.RecordsProcessed)
			assert.Equal(t, domain.SyncStatusFailure, entry.Status)
			require.NotNil(t, entry.ErrorMessage)
			assert.Contains(t, *entry.ErrorMessage, "registro 2 de 2")
			assert.Contains(t, *entry.ErrorMessage, "violação de constraint")
			return nil
		})

	result, err := service.ProcessBatch(context.Background(), "campaigns", records)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrBatchFailed.Error())
	assert.Contains(t, err.Error(), "registro 2 de 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_FalhaAoIniciarTransacao(t *testing.T) {
	service, mock, _, _ := newTestService(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool esgotado"))

	records := []json.RawMessage{
		json.RawMessage(`{"account_id":"act_123"}`),
	}

	// Nenhum Append é esperado: sem transação não há o que auditar
	result, err := service.ProcessBatch(context.Background(), "accounts", records)

	assert.Nil(t, result)
	assert.True(t, pkgerrors.Is(err, ErrAcquireConnection))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_TipoDeEntidadeDesconhecido(t *testing.T) {
	service, mock, _, _ := newTestService(t)

	records := []json.RawMessage{
		json.RawMessage(`{"account_id":"act_123"}`),
	}

	result, err := service.ProcessBatch(context.Background(), "pixels", records)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_LoteVazio(t *testing.T) {
	service, mock, _, _ := newTestService(t)

	result, err := service.ProcessBatch(context.Background(), "ads", nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_RegistroComJSONInvalido(t *testing.T) {
	service, mock, _, logRepo := newTestService(t)

	records := []json.RawMessage{
		json.RawMessage(`{"ad_id":`),
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	logRepo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(q postgres.Queryer, entry *domain.SyncLogEntry) error {
			assert.Equal(t, domain.SyncStatusFailure, entry.Status)
			require.NotNil(t, entry.ErrorMessage)
			assert.Contains(t, *entry.ErrorMessage, "registro 1 de 1")
			return nil
		})

	result, err := service.ProcessBatch(context.Background(), "ads", records)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ProcessBatch_RoteiaCadaEntidadeParaOUpsertCorreto(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		payload    string
		setup      func(syncRepo *mocks.MockMetaSyncRepository)
	}{
		{
			name:       "ad_sets vai para UpsertAdSet",
			entityType: "ad_sets",
			payload:    `{"ad_set_id":"as_1","campaign_id":"cmp_1","targeting":{"geo":"BR"}}`,
			setup: func(syncRepo *mocks.MockMetaSyncRepository) {
				syncRepo.EXPECT().
					UpsertAdSet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(q postgres.Queryer, record *domain.AdSetRecord) error {
						assert.Equal(t, "as_1", record.AdSetID)
						assert.JSONEq(t, `{"geo":"BR"}`, string(record.Targeting))
						return nil
					})
			},
		},
		{
			name:       "ads vai para UpsertAd",
			entityType: "ads",
			payload:    `{"ad_id":"ad_1","ad_set_id":"as_1","ad_name":"Criativo 1"}`,
			setup: func(syncRepo *mocks.MockMetaSyncRepository) {
				syncRepo.EXPECT().
					UpsertAd(gomock.Any(), gomock.Any()).
					DoAndReturn(func(q postgres.Queryer, record *domain.AdRecord) error {
						assert.Equal(t, "ad_1", record.AdID)
						return nil
					})
			},
		},
		{
			name:       "performance vai para UpsertPerformance com campos dinâmicos",
			entityType: "performance",
			payload:    `{"date_start":"2026-01-05","account_id":"act_123","impressions":1000,"spend":12.5}`,
			setup: func(syncRepo *mocks.MockMetaSyncRepository) {
				syncRepo.EXPECT().
					UpsertPerformance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(q postgres.Queryer, record domain.PerformanceRecord) error {
						assert.Equal(t, "2026-01-05", record["date_start"])
						assert.Equal(t, "act_123", record["account_id"])
						assert.Contains(t, record, "impressions")
						assert.Contains(t, record, "spend")
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock, syncRepo, logRepo := newTestService(t)

			mock.ExpectBegin()
			mock.ExpectCommit()

			tt.setup(syncRepo)
			logRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.ProcessBatch(context.Background(), tt.entityType, []json.RawMessage{
				json.RawMessage(tt.payload),
			})

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Equal(t, 1, result.RecordsProcessed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
