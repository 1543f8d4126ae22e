package automating

import (
	"fmt"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type AutomationService interface {
	ListAutomations() ([]*domain.Automation, error)
	GetAutomation(id string) (*domain.Automation, error)
	CreateAutomation(request *domain.CreateAutomationRequest) (*domain.Automation, error)
	UpdateAutomation(id string, request *domain.UpdateAutomationRequest) (*domain.Automation, error)
	ToggleAutomation(id string) (*domain.Automation, error)
	DeleteAutomation(id string) error
	SweepDue(now time.Time) (int, error)
}

type Service struct {
	automationRepository repository.AutomationRepository
}

func NewService(automationRepository repository.AutomationRepository) AutomationService {
	return &Service{
		automationRepository: automationRepository,
	}
}

func (s *Service) ListAutomations() ([]*domain.Automation, error) {
	automations, err := s.automationRepository.List()
	if err != nil {
		logrus.WithError(err).Error("automations: erro ao listar automações no banco de dados")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return automations, nil
}

func (s *Service) GetAutomation(id string) (*domain.Automation, error) {
	automation, err := s.automationRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao buscar automação")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if automation == nil {
		return nil, ErrAutomationNotFound
	}

	return automation, nil
}

func (s *Service) CreateAutomation(request *domain.CreateAutomationRequest) (*domain.Automation, error) {
	if request.Name == "" {
		return nil, ErrNameRequired
	}

	if request.Trigger == "" {
		return nil, ErrTriggerRequired
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	automation := &domain.Automation{
		ID:        id,
		Name:      request.Name,
		Trigger:   request.Trigger,
		Condition: request.Condition,
		Action:    request.Action,
		Status:    domain.AutomationStatusActive,
		NextRun:   NextRun(request.Trigger, time.Now()),
	}

	if err := s.automationRepository.Create(automation); err != nil {
		logrus.WithError(err).WithField("automation_name", request.Name).Error("automations: erro ao criar automação")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return automation, nil
}

// UpdateAutomation aplica um merge parcial. Alterar o gatilho recalcula
// o next_run a partir de agora.
func (s *Service) UpdateAutomation(id string, request *domain.UpdateAutomationRequest) (*domain.Automation, error) {
	automation, err := s.automationRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao buscar automação para atualização")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if automation == nil {
		return nil, ErrAutomationNotFound
	}

	if request.Status != nil && !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if request.Name != nil {
		automation.Name = *request.Name
	}
	if request.Trigger != nil {
		automation.Trigger = *request.Trigger
		automation.NextRun = NextRun(automation.Trigger, time.Now())
	}
	if request.Condition != nil {
		automation.Condition = *request.Condition
	}
	if request.Action != nil {
		automation.Action = *request.Action
	}
	if request.Status != nil {
		automation.Status = *request.Status
	}

	if err := s.automationRepository.Update(automation); err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao atualizar automação")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return automation, nil
}

// ToggleAutomation alterna entre ativa e pausada, usado pelo switch do
// dashboard
func (s *Service) ToggleAutomation(id string) (*domain.Automation, error) {
	automation, err := s.automationRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao buscar automação para alternar")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if automation == nil {
		return nil, ErrAutomationNotFound
	}

	if automation.Status == domain.AutomationStatusActive {
		automation.Status = domain.AutomationStatusPaused
	} else {
		automation.Status = domain.AutomationStatusActive
	}

	if err := s.automationRepository.Update(automation); err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao alternar automação")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return automation, nil
}

func (s *Service) DeleteAutomation(id string) error {
	deleted, err := s.automationRepository.Delete(id)
	if err != nil {
		logrus.WithError(err).WithField("automation_id", id).Error("automations: erro ao remover automação")
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !deleted {
		return ErrAutomationNotFound
	}

	return nil
}

// SweepDue avança o next_run das automações ativas vencidas e registra o
// last_run. As regras são apenas informativas: nenhuma ação é executada,
// o sweep só mantém os metadados de exibição coerentes.
func (s *Service) SweepDue(now time.Time) (int, error) {
	due, err := s.automationRepository.ListDue(now)
	if err != nil {
		logrus.WithError(err).Error("automations: erro ao buscar automações vencidas")
		return 0, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	refreshed := 0
	for _, automation := range due {
		lastRun := automation.NextRun
		automation.LastRun = &lastRun
		automation.NextRun = NextRun(automation.Trigger, now)

		if err := s.automationRepository.Update(automation); err != nil {
			logrus.WithError(err).WithField("automation_id", automation.ID).Warn("automations: erro ao avançar next_run")
			continue
		}

		refreshed++
	}

	if refreshed > 0 {
		logrus.WithField("refreshed", refreshed).Info("automations: sweep avançou automações vencidas")
	}

	return refreshed, nil
}
