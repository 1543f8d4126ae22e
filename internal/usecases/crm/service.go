package crm

import (
	"fmt"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type LeadService interface {
	ListLeads() ([]*domain.Lead, error)
	GetLead(id string) (*domain.Lead, error)
	CreateLead(request *domain.CreateLeadRequest) (*domain.Lead, error)
	UpdateLead(id string, request *domain.UpdateLeadRequest) (*domain.Lead, error)
	MoveLead(id string, request *domain.MoveLeadRequest) (*domain.Lead, error)
	DeleteLead(id string) error
}

type Service struct {
	leadRepository repository.LeadRepository
}

func NewService(leadRepository repository.LeadRepository) LeadService {
	return &Service{
		leadRepository: leadRepository,
	}
}

func (s *Service) ListLeads() ([]*domain.Lead, error) {
	leads, err := s.leadRepository.List()
	if err != nil {
		logrus.WithError(err).Error("leads: erro ao listar leads no banco de dados")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return leads, nil
}

func (s *Service) GetLead(id string) (*domain.Lead, error) {
	lead, err := s.leadRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", id).Error("leads: erro ao buscar lead")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

func (s *Service) CreateLead(request *domain.CreateLeadRequest) (*domain.Lead, error) {
	if request.Name == "" {
		return nil, ErrNameRequired
	}

	if request.Email == "" {
		return nil, ErrEmailRequired
	}

	if request.Status != nil && !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	lead := &domain.Lead{
		ID:     id,
		Name:   request.Name,
		Email:  request.Email,
		Status: domain.LeadStatusNew,
		Source: "Manual",
		Tags:   request.Tags,
	}

	if request.Phone != nil {
		lead.Phone = *request.Phone
	}
	if request.Company != nil {
		lead.Company = *request.Company
	}
	if request.Value != nil {
		lead.Value = *request.Value
	}
	if request.Status != nil {
		lead.Status = *request.Status
	}
	if request.Source != nil {
		lead.Source = *request.Source
	}
	if request.Notes != nil {
		lead.Notes = *request.Notes
	}
	if request.Score != nil {
		lead.Score = *request.Score
	}
	if lead.Tags == nil {
		lead.Tags = []string{}
	}

	if err := s.leadRepository.Create(lead); err != nil {
		logrus.WithError(err).WithField("lead_email", request.Email).Error("leads: erro ao criar lead")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return lead, nil
}

// UpdateLead aplica um merge parcial: campos nulos do request preservam
// o valor já persistido
func (s *Service) UpdateLead(id string, request *domain.UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := s.leadRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", id).Error("leads: erro ao buscar lead para atualização")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if lead == nil {
		return nil, ErrLeadNotFound
	}

	if request.Status != nil && !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if request.Name != nil {
		lead.Name = *request.Name
	}
	if request.Email != nil {
		lead.Email = *request.Email
	}
	if request.Phone != nil {
		lead.Phone = *request.Phone
	}
	if request.Company != nil {
		lead.Company = *request.Company
	}
	if request.Value != nil {
		lead.Value = *request.Value
	}
	if request.Status != nil {
		lead.Status = *request.Status
	}
	if request.Source != nil {
		lead.Source = *request.Source
	}
	if request.Notes != nil {
		lead.Notes = *request.Notes
	}
	if request.Tags != nil {
		lead.Tags = request.Tags
	}
	if request.Score != nil {
		lead.Score = *request.Score
	}

	if err := s.leadRepository.Update(lead); err != nil {
		logrus.WithError(err).WithField("lead_id", id).Error("leads: erro ao atualizar lead")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return lead, nil
}

// MoveLead troca apenas o status do lead, usado pelo arrastar e soltar
// entre as colunas do kanban
func (s *Service) MoveLead(id string, request *domain.MoveLeadRequest) (*domain.Lead, error) {
	if !request.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	moved, err := s.leadRepository.UpdateStatus(id, request.Status)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"lead_id": id,
			"status":  request.Status,
		}).Error("leads: erro ao mover lead no pipeline")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !moved {
		return nil, ErrLeadNotFound
	}

	return s.GetLead(id)
}

func (s *Service) DeleteLead(id string) error {
	deleted, err := s.leadRepository.Delete(id)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", id).Error("leads: erro ao remover lead")
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !deleted {
		return ErrLeadNotFound
	}

	return nil
}
