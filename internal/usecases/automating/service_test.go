package automating

import (
	"errors"
	"testing"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateAutomation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		request     *domain.CreateAutomationRequest
		setup       func(repository *mocks.MockAutomationRepository)
		validate    func(t *testing.T, automation *domain.Automation, err error)
		expectedErr error
	}{
		{
			name:        "Automação sem nome deve ser rejeitada",
			request:     &domain.CreateAutomationRequest{Trigger: "Daily at 9:00 AM"},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "Automação sem gatilho deve ser rejeitada",
			request:     &domain.CreateAutomationRequest{Name: "Relatório matinal"},
			expectedErr: ErrTriggerRequired,
		},
		{
			name: "Automação válida nasce ativa com next_run derivado do gatilho",
			request: &domain.CreateAutomationRequest{
				Name:    "Relatório matinal",
				Trigger: "Daily at 9:00 AM",
				Action:  "Send summary email",
			},
			setup: func(repository *mocks.MockAutomationRepository) {
				repository.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *domain.Automation) error {
					assert.Len(t, a.ID, 6)
					assert.Equal(t, domain.AutomationStatusActive, a.Status)
					assert.Nil(t, a.LastRun)
					assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), a.NextRun, time.Minute)
					return nil
				})
			},
			validate: func(t *testing.T, automation *domain.Automation, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.AutomationStatusActive, automation.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			automationRepository := mocks.NewMockAutomationRepository(ctrl)
			if tt.setup != nil {
				tt.setup(automationRepository)
			}

			service := &Service{automationRepository: automationRepository}

			automation, err := service.CreateAutomation(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, automation)
				return
			}

			tt.validate(t, automation, err)
		})
	}
}

func TestToggleAutomation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		setup          func(repository *mocks.MockAutomationRepository)
		expectedStatus domain.AutomationStatus
		expectedErr    error
	}{
		{
			name: "Automação ativa deve ser pausada",
			setup: func(repository *mocks.MockAutomationRepository) {
				repository.EXPECT().GetByID("auto01").Return(&domain.Automation{
					ID:     "auto01",
					Status: domain.AutomationStatusActive,
				}, nil)
				repository.EXPECT().Update(gomock.Any()).Return(nil)
			},
			expectedStatus: domain.AutomationStatusPaused,
		},
		{
			name: "Automação pausada deve voltar a ficar ativa",
			setup: func(repository *mocks.MockAutomationRepository) {
				repository.EXPECT().GetByID("auto01").Return(&domain.Automation{
					ID:     "auto01",
					Status: domain.AutomationStatusPaused,
				}, nil)
				repository.EXPECT().Update(gomock.Any()).Return(nil)
			},
			expectedStatus: domain.AutomationStatusActive,
		},
		{
			name: "Automação inexistente deve retornar erro de não encontrado",
			setup: func(repository *mocks.MockAutomationRepository) {
				repository.EXPECT().GetByID("auto01").Return(nil, nil)
			},
			expectedErr: ErrAutomationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			automationRepository := mocks.NewMockAutomationRepository(ctrl)
			tt.setup(automationRepository)

			service := &Service{automationRepository: automationRepository}

			automation, err := service.ToggleAutomation("auto01")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, automation)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, automation.Status)
		})
	}
}

func TestSweepDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	overdue := now.Add(-2 * time.Hour)

	t.Run("Deve registrar last_run e avançar o next_run das vencidas", func(t *testing.T) {
		automationRepository := mocks.NewMockAutomationRepository(ctrl)

		due := &domain.Automation{
			ID:      "auto01",
			Trigger: "Daily at 9:00 AM",
			Status:  domain.AutomationStatusActive,
			NextRun: overdue,
		}

		automationRepository.EXPECT().ListDue(now).Return([]*domain.Automation{due}, nil)
		automationRepository.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *domain.Automation) error {
			assert.NotNil(t, a.LastRun)
			assert.Equal(t, overdue, *a.LastRun)
			// next_run avança a partir de agora, não do horário vencido
			assert.Equal(t, now.AddDate(0, 0, 1), a.NextRun)
			return nil
		})

		service := &Service{automationRepository: automationRepository}

		refreshed, err := service.SweepDue(now)

		assert.NoError(t, err)
		assert.Equal(t, 1, refreshed)
	})

	t.Run("Falha de atualização pula a automação sem abortar o sweep", func(t *testing.T) {
		automationRepository := mocks.NewMockAutomationRepository(ctrl)

		first := &domain.Automation{ID: "auto01", Trigger: "Hourly check", NextRun: overdue}
		second := &domain.Automation{ID: "auto02", Trigger: "Hourly check", NextRun: overdue}

		automationRepository.EXPECT().ListDue(now).Return([]*domain.Automation{first, second}, nil)
		automationRepository.EXPECT().Update(first).Return(errors.New("deadlock detected"))
		automationRepository.EXPECT().Update(second).Return(nil)

		service := &Service{automationRepository: automationRepository}

		refreshed, err := service.SweepDue(now)

		assert.NoError(t, err)
		assert.Equal(t, 1, refreshed)
	})

	t.Run("Nenhuma automação vencida deve retornar zero", func(t *testing.T) {
		automationRepository := mocks.NewMockAutomationRepository(ctrl)
		automationRepository.EXPECT().ListDue(now).Return([]*domain.Automation{}, nil)

		service := &Service{automationRepository: automationRepository}

		refreshed, err := service.SweepDue(now)

		assert.NoError(t, err)
		assert.Equal(t, 0, refreshed)
	})

	t.Run("Erro de banco na listagem deve interromper o sweep", func(t *testing.T) {
		automationRepository := mocks.NewMockAutomationRepository(ctrl)
		automationRepository.EXPECT().ListDue(now).Return(nil, errors.New("connection refused"))

		service := &Service{automationRepository: automationRepository}

		refreshed, err := service.SweepDue(now)

		assert.ErrorIs(t, err, ErrDatabase)
		assert.Equal(t, 0, refreshed)
	})
}
