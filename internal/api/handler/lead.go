package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/crm"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func ListLeads(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		leads, err := service.ListLeads()
		if err != nil {
			logger.WithError(err).Error("leads: failed to list leads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar leads", nil)
			return
		}

		writeJSON(w, logger, leads)
	})
}

func GetLead(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		lead, err := service.GetLead(id)
		if err != nil {
			writeLeadError(w, logger, err)
			return
		}

		writeJSON(w, logger, lead)
	})
}

func CreateLead(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		lead, err := service.CreateLead(&req)
		if err != nil {
			writeLeadError(w, logger, err)
			return
		}

		logger.WithField("lead_id", lead.ID).Info("leads: lead created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(lead); err != nil {
			logger.WithError(err).Error("leads: failed to encode response")
		}
	})
}

func UpdateLead(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		lead, err := service.UpdateLead(id, &req)
		if err != nil {
			writeLeadError(w, logger, err)
			return
		}

		logger.WithField("lead_id", id).Info("leads: lead updated")
		writeJSON(w, logger, lead)
	})
}

// MoveLead atende o arrastar e soltar do kanban: troca somente o status
func MoveLead(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.MoveLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		lead, err := service.MoveLead(id, &req)
		if err != nil {
			writeLeadError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"lead_id": id,
			"status":  req.Status,
		}).Info("leads: lead moved in pipeline")

		writeJSON(w, logger, lead)
	})
}

func DeleteLead(service crm.LeadService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteLead(id); err != nil {
			writeLeadError(w, logger, err)
			return
		}

		logger.WithField("lead_id", id).Info("leads: lead deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}

func writeLeadError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, crm.ErrLeadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Lead não encontrado", nil)
	case errors.Is(err, crm.ErrNameRequired),
		errors.Is(err, crm.ErrEmailRequired),
		errors.Is(err, crm.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("leads: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar lead", nil)
	}
}
