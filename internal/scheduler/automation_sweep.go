package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/usecases/automating"
	"github.com/sirupsen/logrus"
)

// AutomationSweepConfig representa a configuração da varredura de automações
type AutomationSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// AutomationSweepService agenda a varredura que avança o next_run das
// automações vencidas. A varredura é puramente informativa, nenhuma regra
// é executada.
type AutomationSweepService struct {
	scheduler            *gocron.Scheduler
	config               AutomationSweepConfig
	automationService    automating.AutomationService
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepRefreshed   int
}

// NewAutomationSweepService cria uma nova instância do serviço de varredura
func NewAutomationSweepService(
	automationService automating.AutomationService,
	appConfig *config.Config,
) *AutomationSweepService {
	sweepConfig := AutomationSweepConfig{
		CronSchedule: appConfig.AutomationSweep.CronSchedule,
		SweepEnabled: appConfig.AutomationSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de automações carregada")

	return &AutomationSweepService{
		scheduler:         scheduler,
		config:            sweepConfig,
		automationService: automationService,
		sweepRunning:      false,
	}
}

// Start inicia o agendador
func (s *AutomationSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de automações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de automações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de automações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de automações")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep avança as automações vencidas
func (s *AutomationSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de automações já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	refreshed, err := s.automationService.SweepDue(time.Now())
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de automações")
		return
	}

	s.lastSweepRefreshed = refreshed
	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"duration":  time.Since(startTime).String(),
	}).Info("Varredura de automações concluída")
}

// TriggerManualSync inicia manualmente a varredura
func (s *AutomationSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de automações já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de automações")
	go s.sweep()
}

// GetStatus retorna o status atual do agendador
func (s *AutomationSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_refreshed":    s.lastSweepRefreshed,
	}
}
