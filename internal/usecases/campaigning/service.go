package campaigning

import (
	"fmt"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CampaignService interface {
	ListCampaigns(filters *domain.CampaignFilters) ([]*domain.CampaignResponse, error)
	GetCampaign(id string) (*domain.CampaignResponse, error)
	CreateCampaign(request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
	UpdateCampaign(id string, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error)
	DeleteCampaign(id string) error
	LaunchCampaign(request *domain.LaunchCampaignRequest) (*domain.CampaignResponse, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
}

func NewService(campaignRepository repository.CampaignRepository) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
	}
}

func (s *Service) ListCampaigns(filters *domain.CampaignFilters) ([]*domain.CampaignResponse, error) {
	campaigns, err := s.campaignRepository.List(filters)
	if err != nil {
		logrus.WithError(err).Error("campaigns: erro ao listar campanhas no banco de dados")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	response := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		response = append(response, domain.NewCampaignResponse(campaign))
	}

	return response, nil
}

func (s *Service) GetCampaign(id string) (*domain.CampaignResponse, error) {
	campaign, err := s.campaignRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: erro ao buscar campanha")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	return domain.NewCampaignResponse(campaign), nil
}

func (s *Service) CreateCampaign(request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	if len(request.Name) < 2 {
		return nil, ErrNameRequired
	}

	if !request.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	if request.Status != nil && !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if request.DailyBudget != nil && *request.DailyBudget < 0 {
		return nil, ErrNegativeBudget
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	campaign := &domain.Campaign{
		ID:       id,
		Name:     request.Name,
		Platform: request.Platform,
		Status:   domain.CampaignStatusActive,
		Currency: "INR",
	}

	if request.Status != nil {
		campaign.Status = *request.Status
	}
	if request.DailyBudget != nil {
		campaign.DailyBudget = *request.DailyBudget
	}
	if request.Currency != nil {
		campaign.Currency = *request.Currency
	}
	if request.Spend != nil {
		campaign.Spend = *request.Spend
	}
	if request.Revenue != nil {
		campaign.Revenue = *request.Revenue
	}
	if request.Conversions != nil {
		campaign.Conversions = *request.Conversions
	}
	if request.Impressions != nil {
		campaign.Impressions = *request.Impressions
	}
	if request.CTR != nil {
		campaign.CTR = *request.CTR
	}
	if request.CPC != nil {
		campaign.CPC = *request.CPC
	}

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.WithError(err).WithField("campaign_name", request.Name).Error("campaigns: erro ao criar campanha")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return domain.NewCampaignResponse(campaign), nil
}

// UpdateCampaign aplica um merge parcial: campos nulos do request
// preservam o valor já persistido. O ROAS nunca é escrito, sempre
// derivado na resposta.
func (s *Service) UpdateCampaign(id string, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error) {
	campaign, err := s.campaignRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: erro ao buscar campanha para atualização")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if request.Platform != nil && !request.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	if request.Status != nil && !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if request.Name != nil {
		campaign.Name = *request.Name
	}
	if request.Platform != nil {
		campaign.Platform = *request.Platform
	}
	if request.Status != nil {
		campaign.Status = *request.Status
	}
	if request.DailyBudget != nil {
		campaign.DailyBudget = *request.DailyBudget
	}
	if request.Spend != nil {
		campaign.Spend = *request.Spend
	}
	if request.Revenue != nil {
		campaign.Revenue = *request.Revenue
	}
	if request.Conversions != nil {
		campaign.Conversions = *request.Conversions
	}
	if request.Impressions != nil {
		campaign.Impressions = *request.Impressions
	}
	if request.CTR != nil {
		campaign.CTR = *request.CTR
	}
	if request.CPC != nil {
		campaign.CPC = *request.CPC
	}

	if err := s.campaignRepository.Update(campaign); err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: erro ao atualizar campanha")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return domain.NewCampaignResponse(campaign), nil
}

func (s *Service) DeleteCampaign(id string) error {
	deleted, err := s.campaignRepository.Delete(id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("campaigns: erro ao remover campanha")
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !deleted {
		return ErrCampaignNotFound
	}

	return nil
}

// LaunchCampaign materializa o rascunho do assistente de lançamento como
// uma campanha agendada, sem métricas ainda
func (s *Service) LaunchCampaign(request *domain.LaunchCampaignRequest) (*domain.CampaignResponse, error) {
	if len(request.CampaignName) < 2 {
		return nil, ErrNameRequired
	}

	if !request.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	if request.DailyBudget < 0 {
		return nil, ErrNegativeBudget
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	campaign := &domain.Campaign{
		ID:          id,
		Name:        request.CampaignName,
		Platform:    request.Platform,
		Status:      domain.CampaignStatusScheduled,
		DailyBudget: request.DailyBudget,
		Currency:    "INR",
	}

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.WithError(err).WithField("campaign_name", request.CampaignName).Error("campaigns: erro ao lançar campanha")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"platform":    campaign.Platform,
		"goal":        request.Goal,
		"audiences":   len(request.Audiences),
		"creatives":   len(request.Creatives),
	}).Info("campaigns: campanha lançada pelo assistente")

	return domain.NewCampaignResponse(campaign), nil
}
