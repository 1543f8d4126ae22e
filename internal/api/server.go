package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growzzy/growzzy-os-api/internal/api/handler"
	"github.com/growzzy/growzzy-os-api/internal/api/handler/router"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/scheduler"
	"github.com/growzzy/growzzy-os-api/internal/usecases/authenticating"
	"github.com/growzzy/growzzy-os-api/internal/usecases/automating"
	"github.com/growzzy/growzzy-os-api/internal/usecases/campaigning"
	"github.com/growzzy/growzzy-os-api/internal/usecases/connecting"
	"github.com/growzzy/growzzy-os-api/internal/usecases/copiloting"
	"github.com/growzzy/growzzy-os-api/internal/usecases/crm"
	"github.com/growzzy/growzzy-os-api/internal/usecases/reporting"
	"github.com/growzzy/growzzy-os-api/internal/usecases/setup"
	"github.com/growzzy/growzzy-os-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	campaignService campaigning.CampaignService,
	leadService crm.LeadService,
	automationService automating.AutomationService,
	reportService reporting.ReportService,
	connectionService connecting.ConnectionService,
	copilotService copiloting.CopilotService,
	setupService setup.SetupService,
	authenticator authenticating.Authenticator,
	reportSyncService *scheduler.ReportSyncService,
	automationSweepService *scheduler.AutomationSweepService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ReportSyncService:      reportSyncService,
		AutomationSweepService: automationSweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.Leads(leadService)...),
		router.WithRoutes(handler.Automations(automationService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Connections(connectionService)...),
		router.WithRoutes(handler.Copilot(copilotService)...),
		router.WithRoutes(handler.SetupRoutes(setupService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Metrics(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
