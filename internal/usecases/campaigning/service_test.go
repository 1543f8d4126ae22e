package campaigning

import (
	"testing"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pausedStatus := domain.CampaignStatusPaused
	invalidStatus := domain.CampaignStatus("archived")
	negativeBudget := -10.0
	budget := 150.0

	tests := []struct {
		name        string
		request     *domain.CreateCampaignRequest
		setup       func(repository *mocks.MockCampaignRepository)
		validate    func(t *testing.T, response *domain.CampaignResponse, err error)
		expectedErr error
	}{
		{
			name:        "Nome com menos de dois caracteres deve ser rejeitado",
			request:     &domain.CreateCampaignRequest{Name: "X", Platform: domain.PlatformMeta},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "Plataforma desconhecida deve ser rejeitada",
			request:     &domain.CreateCampaignRequest{Name: "Lançamento", Platform: domain.Platform("orkut")},
			expectedErr: ErrInvalidPlatform,
		},
		{
			name: "Status inválido deve ser rejeitado",
			request: &domain.CreateCampaignRequest{
				Name:     "Lançamento",
				Platform: domain.PlatformMeta,
				Status:   &invalidStatus,
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name: "Orçamento negativo deve ser rejeitado",
			request: &domain.CreateCampaignRequest{
				Name:        "Lançamento",
				Platform:    domain.PlatformMeta,
				DailyBudget: &negativeBudget,
			},
			expectedErr: ErrNegativeBudget,
		},
		{
			name:    "Campanha mínima deve receber status active e moeda INR",
			request: &domain.CreateCampaignRequest{Name: "Lançamento", Platform: domain.PlatformMeta},
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
					assert.Len(t, c.ID, 6)
					assert.Equal(t, domain.CampaignStatusActive, c.Status)
					assert.Equal(t, "INR", c.Currency)
					return nil
				})
			},
			validate: func(t *testing.T, response *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusActive, response.Status)
				assert.Equal(t, "INR", response.Currency)
				assert.Equal(t, 0.0, response.ROAS)
			},
		},
		{
			name: "Campos opcionais informados devem sobrescrever os padrões",
			request: &domain.CreateCampaignRequest{
				Name:        "Remarketing",
				Platform:    domain.PlatformGoogle,
				Status:      &pausedStatus,
				DailyBudget: &budget,
			},
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, response *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusPaused, response.Status)
				assert.Equal(t, 150.0, response.DailyBudget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaignRepository := mocks.NewMockCampaignRepository(ctrl)
			if tt.setup != nil {
				tt.setup(campaignRepository)
			}

			service := &Service{campaignRepository: campaignRepository}

			response, err := service.CreateCampaign(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)
				return
			}

			tt.validate(t, response, err)
		})
	}
}

func TestUpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := func() *domain.Campaign {
		return &domain.Campaign{
			ID:       "abc123",
			Name:     "Black Friday",
			Platform: domain.PlatformMeta,
			Status:   domain.CampaignStatusActive,
			Currency: "INR",
			Spend:    1000,
			Revenue:  3000,
		}
	}

	newName := "Black Friday v2"
	newRevenue := 5000.0

	tests := []struct {
		name        string
		request     *domain.UpdateCampaignRequest
		setup       func(repository *mocks.MockCampaignRepository)
		validate    func(t *testing.T, response *domain.CampaignResponse, err error)
		expectedErr error
	}{
		{
			name:    "Campanha inexistente deve retornar erro de não encontrado",
			request: &domain.UpdateCampaignRequest{Name: &newName},
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().GetByID("abc123").Return(nil, nil)
			},
			expectedErr: ErrCampaignNotFound,
		},
		{
			name:    "Campos nulos devem preservar os valores persistidos",
			request: &domain.UpdateCampaignRequest{Revenue: &newRevenue},
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().GetByID("abc123").Return(stored(), nil)
				repository.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
					assert.Equal(t, "Black Friday", c.Name)
					assert.Equal(t, 1000.0, c.Spend)
					assert.Equal(t, 5000.0, c.Revenue)
					return nil
				})
			},
			validate: func(t *testing.T, response *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				// ROAS recalculado a partir do novo revenue
				assert.Equal(t, 5.0, response.ROAS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaignRepository := mocks.NewMockCampaignRepository(ctrl)
			tt.setup(campaignRepository)

			service := &Service{campaignRepository: campaignRepository}

			response, err := service.UpdateCampaign("abc123", tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)
				return
			}

			tt.validate(t, response, err)
		})
	}
}

func TestDeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		setup       func(repository *mocks.MockCampaignRepository)
		expectedErr error
	}{
		{
			name: "Remoção de campanha existente não deve retornar erro",
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().Delete("abc123").Return(true, nil)
			},
		},
		{
			name: "Remoção de campanha inexistente deve retornar erro de não encontrado",
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().Delete("abc123").Return(false, nil)
			},
			expectedErr: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaignRepository := mocks.NewMockCampaignRepository(ctrl)
			tt.setup(campaignRepository)

			service := &Service{campaignRepository: campaignRepository}

			err := service.DeleteCampaign("abc123")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLaunchCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		request     *domain.LaunchCampaignRequest
		setup       func(repository *mocks.MockCampaignRepository)
		validate    func(t *testing.T, response *domain.CampaignResponse, err error)
		expectedErr error
	}{
		{
			name:        "Nome curto demais deve ser rejeitado",
			request:     &domain.LaunchCampaignRequest{CampaignName: "A", Platform: domain.PlatformMeta},
			expectedErr: ErrNameRequired,
		},
		{
			name: "Orçamento negativo deve ser rejeitado",
			request: &domain.LaunchCampaignRequest{
				CampaignName: "Lançamento de produto",
				Platform:     domain.PlatformMeta,
				DailyBudget:  -1,
			},
			expectedErr: ErrNegativeBudget,
		},
		{
			name: "Rascunho válido deve virar campanha agendada sem métricas",
			request: &domain.LaunchCampaignRequest{
				CampaignName: "Lançamento de produto",
				Platform:     domain.PlatformGoogle,
				DailyBudget:  200,
				Goal:         "conversions",
				Audiences:    []string{"lookalike"},
			},
			setup: func(repository *mocks.MockCampaignRepository) {
				repository.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Campaign) error {
					assert.Equal(t, domain.CampaignStatusScheduled, c.Status)
					assert.Equal(t, 0.0, c.Spend)
					return nil
				})
			},
			validate: func(t *testing.T, response *domain.CampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusScheduled, response.Status)
				assert.Equal(t, 200.0, response.DailyBudget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaignRepository := mocks.NewMockCampaignRepository(ctrl)
			if tt.setup != nil {
				tt.setup(campaignRepository)
			}

			service := &Service{campaignRepository: campaignRepository}

			response, err := service.LaunchCampaign(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)
				return
			}

			tt.validate(t, response, err)
		})
	}
}
