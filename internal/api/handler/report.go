package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/reporting"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func ListReports(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		reports, err := service.ListReports()
		if err != nil {
			logger.WithError(err).Error("reports: failed to list reports")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", nil)
			return
		}

		writeJSON(w, logger, reports)
	})
}

func GetReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetReport(id)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, report)
	})
}

// CreateReport agrega o período, persiste o relatório e devolve o snapshot
func CreateReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		report, err := service.CreateReport(&req)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"report_id": report.ID,
			"type":      report.Type,
		}).Info("reports: report created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}

func DeleteReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteReport(id); err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithField("report_id", id).Info("reports: report deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}

// GenerateReport monta o relatório completo sob demanda, sem persistir
func GenerateReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		report, err := service.GenerateFullReport(&req)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithField("campaigns", len(report.Campaigns)).Info("reports: full report generated")
		writeJSON(w, logger, report)
	})
}

// GetKPISummary alimenta os cards de resumo do dashboard
func GetKPISummary(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := campaignFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.GetKPISummary(filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, summary)
	})
}

// GetPlatformBreakdown alimenta o gráfico de distribuição por plataforma
func GetPlatformBreakdown(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := campaignFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		breakdown, err := service.GetPlatformBreakdown(filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		writeJSON(w, logger, breakdown)
	})
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, reporting.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Relatório não encontrado", nil)
	case errors.Is(err, reporting.ErrTitleRequired),
		errors.Is(err, reporting.ErrInvalidType),
		errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("reports: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar relatório", nil)
	}
}
