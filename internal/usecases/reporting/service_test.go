package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []*domain.Campaign{
		{Name: "Black Friday", Platform: domain.PlatformMeta, Spend: 1000, Revenue: 4000, Conversions: 12},
		{Name: "Remarketing", Platform: domain.PlatformGoogle, Spend: 500, Revenue: 500, Conversions: 3},
	}

	tests := []struct {
		name        string
		request     *domain.CreateReportRequest
		setup       func(reports *mocks.MockReportRepository, campaignsRepo *mocks.MockCampaignRepository)
		validate    func(t *testing.T, report *domain.Report, err error)
		expectedErr error
	}{
		{
			name:        "Relatório sem título deve ser rejeitado",
			request:     &domain.CreateReportRequest{Type: domain.ReportTypeWeekly},
			expectedErr: ErrTitleRequired,
		},
		{
			name:        "Tipo desconhecido deve ser rejeitado",
			request:     &domain.CreateReportRequest{Title: "Semana 42", Type: domain.ReportType("yearly")},
			expectedErr: ErrInvalidType,
		},
		{
			name: "Período com início depois do fim deve ser rejeitado",
			request: &domain.CreateReportRequest{
				Title:     "Semana 42",
				Type:      domain.ReportTypeWeekly,
				DateRange: &domain.DateRange{Start: "2024-06-10", End: "2024-06-01"},
			},
			expectedErr: ErrInvalidPeriod,
		},
		{
			name: "Data ilegível deve ser rejeitada como período inválido",
			request: &domain.CreateReportRequest{
				Title:     "Semana 42",
				Type:      domain.ReportTypeWeekly,
				DateRange: &domain.DateRange{Start: "10/06/2024", End: ""},
			},
			expectedErr: ErrInvalidPeriod,
		},
		{
			name:    "Relatório válido persiste o snapshot das métricas com status ready",
			request: &domain.CreateReportRequest{Title: "Semana 42", Type: domain.ReportTypeWeekly},
			setup: func(reports *mocks.MockReportRepository, campaignsRepo *mocks.MockCampaignRepository) {
				campaignsRepo.EXPECT().List(gomock.Any()).Return(campaigns, nil)
				reports.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *domain.Report) error {
					assert.Len(t, r.ID, 6)
					assert.Equal(t, "ready", r.Status)
					assert.WithinDuration(t, time.Now(), r.GeneratedAt, time.Minute)
					assert.Equal(t, 1500.0, r.Metrics.TotalSpend)
					assert.Equal(t, 4500.0, r.Metrics.TotalRevenue)
					assert.Equal(t, 3.0, r.Metrics.BlendedRoas)
					assert.Equal(t, "Black Friday", r.Metrics.TopCampaign)
					return nil
				})
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Semana 42", report.Title)
				assert.Equal(t, domain.ReportTypeWeekly, report.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportRepository := mocks.NewMockReportRepository(ctrl)
			campaignRepository := mocks.NewMockCampaignRepository(ctrl)
			if tt.setup != nil {
				tt.setup(reportRepository, campaignRepository)
			}

			service := &Service{
				reportRepository:   reportRepository,
				campaignRepository: campaignRepository,
			}

			report, err := service.CreateReport(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, report)
				return
			}

			tt.validate(t, report, err)
		})
	}
}

func TestGenerateFullReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve montar o payload completo sem persistir nada", func(t *testing.T) {
		reportRepository := mocks.NewMockReportRepository(ctrl)
		campaignRepository := mocks.NewMockCampaignRepository(ctrl)

		campaignRepository.EXPECT().List(gomock.Any()).Return([]*domain.Campaign{
			{Name: "Black Friday", Platform: domain.PlatformMeta, Spend: 1000, Revenue: 4000, Conversions: 12},
		}, nil)

		service := &Service{
			reportRepository:   reportRepository,
			campaignRepository: campaignRepository,
		}

		report, err := service.GenerateFullReport(&domain.CreateReportRequest{
			DateRange: &domain.DateRange{Start: "2024-06-01", End: "2024-06-07"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Relatório de performance", report.Title)
		assert.Equal(t, "2024-06-01 a 2024-06-07", report.DateRange)
		assert.Equal(t, 4.0, report.KPI.ROAS)
		assert.Len(t, report.Campaigns, 1)
		assert.Len(t, report.PlatformBreakdown, 1)
		assert.Len(t, report.ExecutiveSummary.Wins, 1)
	})
}

func TestGetKPISummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve agregar as campanhas retornadas pelo filtro", func(t *testing.T) {
		campaignRepository := mocks.NewMockCampaignRepository(ctrl)

		filters := &domain.CampaignFilters{}
		campaignRepository.EXPECT().List(filters).Return([]*domain.Campaign{
			{Name: "A", Spend: 200, Revenue: 800, Conversions: 4},
		}, nil)

		service := &Service{campaignRepository: campaignRepository}

		summary, err := service.GetKPISummary(filters)

		assert.NoError(t, err)
		assert.Equal(t, 200.0, summary.TotalSpend)
		assert.Equal(t, 4.0, summary.ROAS)
	})

	t.Run("Erro de banco deve ser propagado", func(t *testing.T) {
		campaignRepository := mocks.NewMockCampaignRepository(ctrl)
		campaignRepository.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

		service := &Service{campaignRepository: campaignRepository}

		summary, err := service.GetKPISummary(nil)

		assert.ErrorIs(t, err, ErrDatabase)
		assert.Nil(t, summary)
	})
}

func TestGetPlatformBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve agrupar as campanhas por plataforma", func(t *testing.T) {
		campaignRepository := mocks.NewMockCampaignRepository(ctrl)

		campaignRepository.EXPECT().List(gomock.Any()).Return([]*domain.Campaign{
			{Name: "A", Platform: domain.PlatformMeta, Spend: 100, Revenue: 300},
			{Name: "B", Platform: domain.PlatformMeta, Spend: 50, Revenue: 100},
		}, nil)

		service := &Service{campaignRepository: campaignRepository}

		groups, err := service.GetPlatformBreakdown(nil)

		assert.NoError(t, err)
		assert.Len(t, groups, 1)
		assert.Equal(t, 2, groups[0].Campaigns)
	})
}

func TestDeleteReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		setup       func(repository *mocks.MockReportRepository)
		expectedErr error
	}{
		{
			name: "Remoção de relatório existente não deve retornar erro",
			setup: func(repository *mocks.MockReportRepository) {
				repository.EXPECT().Delete("rep001").Return(true, nil)
			},
		},
		{
			name: "Remoção de relatório inexistente deve retornar erro de não encontrado",
			setup: func(repository *mocks.MockReportRepository) {
				repository.EXPECT().Delete("rep001").Return(false, nil)
			},
			expectedErr: ErrReportNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportRepository := mocks.NewMockReportRepository(ctrl)
			tt.setup(reportRepository)

			service := &Service{reportRepository: reportRepository}

			err := service.DeleteReport("rep001")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
