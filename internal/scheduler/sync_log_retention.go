package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-analytics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-analytics-api/internal/config"
)

// SyncLogRetentionConfig representa a configuração do agendador de limpeza da
// trilha de auditoria
type SyncLogRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// SyncLogRetentionService agenda a remoção periódica de entradas antigas de
// data_sync_logs. A tabela só cresce (uma entrada por lote recebido), então a
// retenção é a única forma de poda.
type SyncLogRetentionService struct {
	scheduler          *gocron.Scheduler
	config             SyncLogRetentionConfig
	syncLogRepo        repository.SyncLogRepository
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

// NewSyncLogRetentionService cria uma nova instância do serviço de retenção
func NewSyncLogRetentionService(
	syncLogRepo repository.SyncLogRepository,
	appConfig *config.Config,
) *SyncLogRetentionService {
	retentionConfig := SyncLogRetentionConfig{
		CronSchedule:  appConfig.SyncLogRetention.CronSchedule,
		RetentionDays: appConfig.SyncLogRetention.RetentionDays,
		Enabled:       appConfig.SyncLogRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de logs de sincronização carregada")

	return &SyncLogRetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      retentionConfig,
		syncLogRepo: syncLogRepo,
	}
}

// Start inicia o agendador
func (s *SyncLogRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de logs de sincronização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de logs de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de logs de sincronização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de logs de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa a limpeza imediatamente, fora do agendamento
func (s *SyncLogRetentionService) TriggerManualSync() {
	go s.runRetention()
}

// Status retorna o estado atual do agendador para o endpoint de cron
func (s *SyncLogRetentionService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"enabled":        s.config.Enabled,
		"cron_schedule":  s.config.CronSchedule,
		"retention_days": s.config.RetentionDays,
		"running":        s.running,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt
		status["last_run_deleted"] = s.lastRunDeleted
	}

	return status
}

// runRetention remove as entradas mais antigas que a janela de retenção
func (s *SyncLogRetentionService) runRetention() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de logs de sincronização já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza de logs de sincronização")

	deleted, err := s.syncLogRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover logs de sincronização antigos")
		return
	}

	s.runMutex.Lock()
	s.lastRunDeleted = deleted
	s.runMutex.Unlock()

	logrus.WithField("deleted", deleted).Info("Limpeza de logs de sincronização concluída")
}
