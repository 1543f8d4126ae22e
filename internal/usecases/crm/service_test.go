package crm

import (
	"testing"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	closedStatus := domain.LeadStatusClosed
	invalidStatus := domain.LeadStatus("archived")
	metaSource := "Meta Ads"

	tests := []struct {
		name        string
		request     *domain.CreateLeadRequest
		setup       func(repository *mocks.MockLeadRepository)
		validate    func(t *testing.T, lead *domain.Lead, err error)
		expectedErr error
	}{
		{
			name:        "Lead sem nome deve ser rejeitado",
			request:     &domain.CreateLeadRequest{Email: "ana@example.com"},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "Lead sem email deve ser rejeitado",
			request:     &domain.CreateLeadRequest{Name: "Ana Souza"},
			expectedErr: ErrEmailRequired,
		},
		{
			name: "Status inválido deve ser rejeitado",
			request: &domain.CreateLeadRequest{
				Name:   "Ana Souza",
				Email:  "ana@example.com",
				Status: &invalidStatus,
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:    "Lead mínimo deve receber status new, origem Manual e tags vazias",
			request: &domain.CreateLeadRequest{Name: "Ana Souza", Email: "ana@example.com"},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *domain.Lead) error {
					assert.Len(t, lead.ID, 6)
					assert.Equal(t, domain.LeadStatusNew, lead.Status)
					assert.Equal(t, "Manual", lead.Source)
					assert.NotNil(t, lead.Tags)
					assert.Empty(t, lead.Tags)
					return nil
				})
			},
			validate: func(t *testing.T, lead *domain.Lead, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.LeadStatusNew, lead.Status)
				assert.Equal(t, "Manual", lead.Source)
			},
		},
		{
			name: "Campos opcionais informados devem sobrescrever os padrões",
			request: &domain.CreateLeadRequest{
				Name:   "Sneha Kapoor",
				Email:  "sneha@example.com",
				Status: &closedStatus,
				Source: &metaSource,
				Tags:   []string{"vip"},
			},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, lead *domain.Lead, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.LeadStatusClosed, lead.Status)
				assert.Equal(t, "Meta Ads", lead.Source)
				assert.Equal(t, []string{"vip"}, lead.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepository := mocks.NewMockLeadRepository(ctrl)
			if tt.setup != nil {
				tt.setup(leadRepository)
			}

			service := &Service{leadRepository: leadRepository}

			lead, err := service.CreateLead(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, lead)
				return
			}

			tt.validate(t, lead, err)
		})
	}
}

func TestUpdateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := func() *domain.Lead {
		return &domain.Lead{
			ID:     "lead01",
			Name:   "Ana Souza",
			Email:  "ana@example.com",
			Status: domain.LeadStatusNew,
			Source: "Manual",
			Tags:   []string{"inbound"},
			Score:  40,
		}
	}

	newScore := 75

	tests := []struct {
		name        string
		request     *domain.UpdateLeadRequest
		setup       func(repository *mocks.MockLeadRepository)
		validate    func(t *testing.T, lead *domain.Lead, err error)
		expectedErr error
	}{
		{
			name:    "Lead inexistente deve retornar erro de não encontrado",
			request: &domain.UpdateLeadRequest{Score: &newScore},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().GetByID("lead01").Return(nil, nil)
			},
			expectedErr: ErrLeadNotFound,
		},
		{
			name:    "Tags nulas devem preservar as tags persistidas",
			request: &domain.UpdateLeadRequest{Score: &newScore},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().GetByID("lead01").Return(stored(), nil)
				repository.EXPECT().Update(gomock.Any()).DoAndReturn(func(lead *domain.Lead) error {
					assert.Equal(t, []string{"inbound"}, lead.Tags)
					assert.Equal(t, 75, lead.Score)
					return nil
				})
			},
			validate: func(t *testing.T, lead *domain.Lead, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 75, lead.Score)
			},
		},
		{
			name:    "Tags não nulas substituem a lista inteira",
			request: &domain.UpdateLeadRequest{Tags: []string{"vip", "retargeting"}},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().GetByID("lead01").Return(stored(), nil)
				repository.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, lead *domain.Lead, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"vip", "retargeting"}, lead.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepository := mocks.NewMockLeadRepository(ctrl)
			tt.setup(leadRepository)

			service := &Service{leadRepository: leadRepository}

			lead, err := service.UpdateLead("lead01", tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, lead)
				return
			}

			tt.validate(t, lead, err)
		})
	}
}

func TestMoveLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		request     *domain.MoveLeadRequest
		setup       func(repository *mocks.MockLeadRepository)
		validate    func(t *testing.T, lead *domain.Lead, err error)
		expectedErr error
	}{
		{
			name:        "Status fora do pipeline deve ser rejeitado",
			request:     &domain.MoveLeadRequest{Status: domain.LeadStatus("archived")},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:    "Lead inexistente deve retornar erro de não encontrado",
			request: &domain.MoveLeadRequest{Status: domain.LeadStatusClosed},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().UpdateStatus("lead01", domain.LeadStatusClosed).Return(false, nil)
			},
			expectedErr: ErrLeadNotFound,
		},
		{
			name:    "Movimento válido deve retornar o lead já na nova coluna",
			request: &domain.MoveLeadRequest{Status: domain.LeadStatusClosed},
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().UpdateStatus("lead01", domain.LeadStatusClosed).Return(true, nil)
				repository.EXPECT().GetByID("lead01").Return(&domain.Lead{
					ID:     "lead01",
					Name:   "Ana Souza",
					Status: domain.LeadStatusClosed,
				}, nil)
			},
			validate: func(t *testing.T, lead *domain.Lead, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.LeadStatusClosed, lead.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepository := mocks.NewMockLeadRepository(ctrl)
			if tt.setup != nil {
				tt.setup(leadRepository)
			}

			service := &Service{leadRepository: leadRepository}

			lead, err := service.MoveLead("lead01", tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, lead)
				return
			}

			tt.validate(t, lead, err)
		})
	}
}

func TestDeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		setup       func(repository *mocks.MockLeadRepository)
		expectedErr error
	}{
		{
			name: "Remoção de lead existente não deve retornar erro",
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().Delete("lead01").Return(true, nil)
			},
		},
		{
			name: "Remoção de lead inexistente deve retornar erro de não encontrado",
			setup: func(repository *mocks.MockLeadRepository) {
				repository.EXPECT().Delete("lead01").Return(false, nil)
			},
			expectedErr: ErrLeadNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadRepository := mocks.NewMockLeadRepository(ctrl)
			tt.setup(leadRepository)

			service := &Service{leadRepository: leadRepository}

			err := service.DeleteLead("lead01")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
