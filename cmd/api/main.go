package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/database/postgres"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/gemini"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/google"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/linkedin"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/meta"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/shopify"
	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/api"
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
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	automationRepo := repository.NewAutomationRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Conectores OAuth das plataformas de anúncio e loja
	connectors := []integrator.Connector{
		meta.NewConnector(cfg),
		google.NewConnector(cfg),
		linkedin.NewConnector(cfg),
		shopify.NewConnector(cfg),
	}

	geminiClient := gemini.NewClient(cfg)

	campaignService := campaigning.NewService(campaignRepo)
	leadService := crm.NewService(leadRepo)
	automationService := automating.NewService(automationRepo)
	reportService := reporting.NewService(reportRepo, campaignRepo)
	connectionService := connecting.NewService(cfg, connectors, credentialRepo)
	copilotService := copiloting.NewService(geminiClient, campaignRepo)
	setupService := setup.NewService(cfg, pgConn, leadRepo)

	// Inicializa os agendadores em background
	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	automationSweepService := scheduler.NewAutomationSweepService(automationService, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de geração de relatórios")
	} else {
		logrus.Info("Agendador de geração de relatórios iniciado com sucesso")
	}

	if err := automationSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de automações")
	} else {
		logrus.Info("Agendador de varredura de automações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		leadService,
		automationService,
		reportService,
		connectionService,
		copilotService,
		setupService,
		authenticator,
		reportSyncService,
		automationSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
