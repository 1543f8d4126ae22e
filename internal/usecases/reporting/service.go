package reporting

import (
	"fmt"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Período padrão, em dias, quando o cliente não informa o date_range
const defaultRangeDays = 30

type ReportService interface {
	ListReports() ([]*domain.Report, error)
	GetReport(id string) (*domain.Report, error)
	CreateReport(request *domain.CreateReportRequest) (*domain.Report, error)
	DeleteReport(id string) error
	GenerateFullReport(request *domain.CreateReportRequest) (*domain.GeneratedReport, error)
	GetKPISummary(filters *domain.CampaignFilters) (*domain.KPISummary, error)
	GetPlatformBreakdown(filters *domain.CampaignFilters) ([]*domain.PlatformGroup, error)
}

type Service struct {
	reportRepository   repository.ReportRepository
	campaignRepository repository.CampaignRepository
}

func NewService(
	reportRepository repository.ReportRepository,
	campaignRepository repository.CampaignRepository,
) ReportService {
	return &Service{
		reportRepository:   reportRepository,
		campaignRepository: campaignRepository,
	}
}

func (s *Service) ListReports() ([]*domain.Report, error) {
	reports, err := s.reportRepository.List()
	if err != nil {
		logrus.WithError(err).Error("reports: erro ao listar relatórios no banco de dados")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return reports, nil
}

func (s *Service) GetReport(id string) (*domain.Report, error) {
	report, err := s.reportRepository.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("report_id", id).Error("reports: erro ao buscar relatório")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if report == nil {
		return nil, ErrReportNotFound
	}

	return report, nil
}

// CreateReport agrega as campanhas do período e persiste um relatório com
// o snapshot das métricas
func (s *Service) CreateReport(request *domain.CreateReportRequest) (*domain.Report, error) {
	if request.Title == "" {
		return nil, ErrTitleRequired
	}

	if !request.Type.Valid() {
		return nil, ErrInvalidType
	}

	filters, err := s.rangeFilters(request.DateRange)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepository.List(filters)
	if err != nil {
		logrus.WithError(err).Error("reports: erro ao carregar campanhas do período")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateID
	}

	report := &domain.Report{
		ID:          id,
		Title:       request.Title,
		Type:        request.Type,
		Status:      "ready",
		Metrics:     BuildReportMetrics(campaigns),
		GeneratedAt: time.Now(),
	}

	if err := s.reportRepository.Create(report); err != nil {
		logrus.WithError(err).WithField("report_title", request.Title).Error("reports: erro ao persistir relatório")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"type":      report.Type,
		"campaigns": len(campaigns),
	}).Info("reports: relatório gerado")

	return report, nil
}

func (s *Service) DeleteReport(id string) error {
	deleted, err := s.reportRepository.Delete(id)
	if err != nil {
		logrus.WithError(err).WithField("report_id", id).Error("reports: erro ao remover relatório")
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !deleted {
		return ErrReportNotFound
	}

	return nil
}

// GenerateFullReport monta o payload completo do relatório sob demanda,
// com breakdown por plataforma e resumo executivo. Nada é persistido.
func (s *Service) GenerateFullReport(request *domain.CreateReportRequest) (*domain.GeneratedReport, error) {
	filters, err := s.rangeFilters(request.DateRange)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepository.List(filters)
	if err != nil {
		logrus.WithError(err).Error("reports: erro ao carregar campanhas do período")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	title := request.Title
	if title == "" {
		title = "Relatório de performance"
	}

	summary := Summarize(campaigns)
	breakdown := PlatformBreakdown(campaigns)

	campaignResponses := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignResponses = append(campaignResponses, domain.NewCampaignResponse(campaign))
	}

	return &domain.GeneratedReport{
		Title:             title,
		DateRange:         formatRange(filters),
		ExecutiveSummary:  BuildExecutiveSummary(campaigns),
		KPI:               summary,
		Campaigns:         campaignResponses,
		PlatformBreakdown: breakdown,
		Insights:          BuildInsights(summary, breakdown),
	}, nil
}

// GetKPISummary alimenta os cards do topo do dashboard
func (s *Service) GetKPISummary(filters *domain.CampaignFilters) (*domain.KPISummary, error) {
	campaigns, err := s.campaignRepository.List(filters)
	if err != nil {
		logrus.WithError(err).Error("reports: erro ao carregar campanhas para os KPIs")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return Summarize(campaigns), nil
}

// GetPlatformBreakdown alimenta o gráfico de distribuição por plataforma
func (s *Service) GetPlatformBreakdown(filters *domain.CampaignFilters) ([]*domain.PlatformGroup, error) {
	campaigns, err := s.campaignRepository.List(filters)
	if err != nil {
		logrus.WithError(err).Error("reports: erro ao carregar campanhas para o breakdown")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return PlatformBreakdown(campaigns), nil
}

// rangeFilters converte o date_range do request em filtros de listagem,
// caindo no período padrão quando não informado
func (s *Service) rangeFilters(dateRange *domain.DateRange) (*domain.CampaignFilters, error) {
	if dateRange == nil || (dateRange.Start == "" && dateRange.End == "") {
		start, end := utils.DefaultDateRange(defaultRangeDays)
		return &domain.CampaignFilters{StartDate: &start, EndDate: &end}, nil
	}

	start, err := utils.ParseDate(dateRange.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	end, err := utils.ParseDate(dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	if !start.IsZero() && !end.IsZero() && start.After(*end) {
		return nil, ErrInvalidPeriod
	}

	filters := &domain.CampaignFilters{}
	if !start.IsZero() {
		filters.StartDate = start
	}
	if !end.IsZero() {
		// Fim do dia para o filtro ser inclusivo
		endOfDay := end.AddDate(0, 0, 1).Add(-time.Second)
		filters.EndDate = &endOfDay
	}

	return filters, nil
}

func formatRange(filters *domain.CampaignFilters) string {
	if filters.StartDate == nil || filters.EndDate == nil {
		return ""
	}
	return fmt.Sprintf(
		"%s a %s",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)
}
