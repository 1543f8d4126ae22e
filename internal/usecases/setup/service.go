package setup

import (
	"context"
	"fmt"

	"github.com/growzzy/growzzy-os-api/infrastructure/database/postgres"
	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// EnvCheck informa quais segredos estão configurados, sem expor valores
type EnvCheck struct {
	Database       bool `json:"database"`
	AuthSecret     bool `json:"auth_secret"`
	MetaApp        bool `json:"meta_app"`
	GoogleClient   bool `json:"google_client"`
	LinkedInClient bool `json:"linkedin_client"`
	ShopifyApp     bool `json:"shopify_app"`
	GeminiKey      bool `json:"gemini_key"`
}

// Diagnostics é o resultado de GET /v1/setup
type Diagnostics struct {
	DatabaseOK bool   `json:"database_ok"`
	LeadCount  int    `json:"lead_count"`
	Seeded     bool   `json:"seeded"`
	Message    string `json:"message"`
}

type SetupService interface {
	CheckEnv() *EnvCheck
	Diagnose(ctx context.Context) (*Diagnostics, error)
}

type Service struct {
	cfg            *config.Config
	conn           *postgres.Connection
	leadRepository repository.LeadRepository
}

func NewService(
	cfg *config.Config,
	conn *postgres.Connection,
	leadRepository repository.LeadRepository,
) SetupService {
	return &Service{
		cfg:            cfg,
		conn:           conn,
		leadRepository: leadRepository,
	}
}

// CheckEnv devolve booleanos por segredo configurado
func (s *Service) CheckEnv() *EnvCheck {
	return &EnvCheck{
		Database:       s.cfg.Database.URL != "" && s.cfg.Database.User != "",
		AuthSecret:     s.cfg.Auth.Secret != "",
		MetaApp:        s.cfg.Meta.AppID != "" && s.cfg.Meta.AppSecret != "",
		GoogleClient:   s.cfg.Google.ClientID != "" && s.cfg.Google.ClientSecret != "",
		LinkedInClient: s.cfg.LinkedIn.ClientID != "" && s.cfg.LinkedIn.ClientSecret != "",
		ShopifyApp:     s.cfg.Shopify.APIKey != "" && s.cfg.Shopify.APISecret != "",
		GeminiKey:      s.cfg.Gemini.APIKey != "",
	}
}

// Diagnose pinga o banco e, se a tabela de leads estiver vazia, insere o
// lead de exemplo para o kanban não nascer vazio
func (s *Service) Diagnose(ctx context.Context) (*Diagnostics, error) {
	diagnostics := &Diagnostics{}

	if err := s.conn.Ping(ctx); err != nil {
		logrus.WithError(err).Error("setup: banco de dados inacessível")
		diagnostics.Message = "Banco de dados inacessível"
		return diagnostics, fmt.Errorf("erro ao pingar o banco de dados: %w", err)
	}
	diagnostics.DatabaseOK = true

	count, err := s.leadRepository.Count()
	if err != nil {
		logrus.WithError(err).Error("setup: erro ao contar leads")
		diagnostics.Message = "Erro ao consultar a tabela de leads"
		return diagnostics, fmt.Errorf("erro ao contar leads: %w", err)
	}
	diagnostics.LeadCount = count

	if count == 0 {
		if err := s.seedSampleLead(); err != nil {
			logrus.WithError(err).Warn("setup: erro ao inserir lead de exemplo")
			diagnostics.Message = "Banco OK, mas o seed do lead de exemplo falhou"
			return diagnostics, nil
		}
		diagnostics.Seeded = true
		diagnostics.LeadCount = 1
		diagnostics.Message = "Banco OK, lead de exemplo inserido"
		return diagnostics, nil
	}

	diagnostics.Message = "Tudo configurado"
	return diagnostics, nil
}

func (s *Service) seedSampleLead() error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	lead := &domain.Lead{
		ID:      id,
		Name:    "Ana Souza",
		Email:   "ana.souza@exemplo.com.br",
		Phone:   "+55 11 91234-5678",
		Company: "Loja Exemplo",
		Value:   2500,
		Status:  domain.LeadStatusNew,
		Source:  "Setup",
		Notes:   "Lead de demonstração criado pelo diagnóstico inicial",
		Tags:    []string{"demo"},
		Score:   70,
	}

	return s.leadRepository.Create(lead)
}
