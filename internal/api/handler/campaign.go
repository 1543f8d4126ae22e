package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/campaigning"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := campaignFiltersFromQuery(r)
		if err != nil {
			logger.WithError(err).Warn("campaigns: invalid list filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns, err := service.ListCampaigns(filters)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list campaigns")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		writeJSON(w, logger, campaigns)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("campaign_id", id).Info("campaigns: fetching campaign by ID")

		campaign, err := service.GetCampaign(id)
		if err != nil {
			writeCampaignError(w, logger, err)
			return
		}

		writeJSON(w, logger, campaign)
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.CreateCampaign(&req)
		if err != nil {
			writeCampaignError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": campaign.ID,
			"platform":    campaign.Platform,
		}).Info("campaigns: campaign created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}

func UpdateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.UpdateCampaign(id, &req)
		if err != nil {
			writeCampaignError(w, logger, err)
			return
		}

		logger.WithField("campaign_id", id).Info("campaigns: campaign updated")
		writeJSON(w, logger, campaign)
	})
}

func DeleteCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(id); err != nil {
			writeCampaignError(w, logger, err)
			return
		}

		logger.WithField("campaign_id", id).Info("campaigns: campaign deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}

func LaunchCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.LaunchCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.LaunchCampaign(&req)
		if err != nil {
			writeCampaignError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": campaign.ID,
			"platform":    campaign.Platform,
		}).Info("campaigns: campaign launched from draft")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}

// campaignFiltersFromQuery monta os filtros opcionais da listagem
func campaignFiltersFromQuery(r *http.Request) (*domain.CampaignFilters, error) {
	filters := &domain.CampaignFilters{}

	if platform := r.URL.Query().Get("platform"); platform != "" {
		p := domain.Platform(platform)
		if !p.Valid() {
			return nil, errors.New("plataforma inválida")
		}
		filters.Platform = &p
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.CampaignStatus(status)
		if !s.Valid() {
			return nil, errors.New("status inválido")
		}
		filters.Status = &s
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		date, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		filters.StartDate = date
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		date, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		filters.EndDate = date
	}

	return filters, nil
}

func writeCampaignError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, campaigning.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)
	case errors.Is(err, campaigning.ErrNameRequired),
		errors.Is(err, campaigning.ErrInvalidPlatform),
		errors.Is(err, campaigning.ErrInvalidStatus),
		errors.Is(err, campaigning.ErrNegativeBudget):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("campaigns: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar campanha", nil)
	}
}
