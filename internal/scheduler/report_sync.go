package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento da geração do relatório diário
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reportService       reporting.ReportService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportID        string
}

// NewReportSyncService cria uma nova instância do serviço de geração agendada de relatórios
func NewReportSyncService(
	reportService reporting.ReportService,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		LookbackDays: appConfig.ReportSync.LookbackDays,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		reportService: reportService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.generateDailyReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios diários")
		s.scheduler.Stop()
	}()

	return nil
}

// generateDailyReport gera e persiste o relatório do período configurado
func (s *ReportSyncService) generateDailyReport() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	end := time.Now()
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	request := &domain.CreateReportRequest{
		Title: fmt.Sprintf("Relatório diário de %s", end.Format(time.DateOnly)),
		Type:  domain.ReportTypeDaily,
		DateRange: &domain.DateRange{
			Start: start.Format(time.DateOnly),
			End:   end.Format(time.DateOnly),
		},
	}

	report, err := s.reportService.CreateReport(request)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar relatório diário agendado")
		return
	}

	s.lastReportID = report.ID
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"duration":  time.Since(startTime).String(),
	}).Info("Relatório diário gerado pelo agendador")
}

// TriggerManualSync inicia manualmente a geração do relatório
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual do relatório diário")
	go s.generateDailyReport()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_id":         s.lastReportID,
	}
}
