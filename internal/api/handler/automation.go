package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/automating"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func ListAutomations(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		automations, err := service.ListAutomations()
		if err != nil {
			logger.WithError(err).Error("automations: failed to list automations")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar automações", nil)
			return
		}

		writeJSON(w, logger, automations)
	})
}

func GetAutomation(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		automation, err := service.GetAutomation(id)
		if err != nil {
			writeAutomationError(w, logger, err)
			return
		}

		writeJSON(w, logger, automation)
	})
}

func CreateAutomation(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateAutomationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		automation, err := service.CreateAutomation(&req)
		if err != nil {
			writeAutomationError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"automation_id": automation.ID,
			"next_run":      automation.NextRun,
		}).Info("automations: automation created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(automation); err != nil {
			logger.WithError(err).Error("automations: failed to encode response")
		}
	})
}

func UpdateAutomation(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateAutomationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		automation, err := service.UpdateAutomation(id, &req)
		if err != nil {
			writeAutomationError(w, logger, err)
			return
		}

		logger.WithField("automation_id", id).Info("automations: automation updated")
		writeJSON(w, logger, automation)
	})
}

// ToggleAutomation atende o switch liga/desliga do dashboard
func ToggleAutomation(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		automation, err := service.ToggleAutomation(id)
		if err != nil {
			writeAutomationError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"automation_id": id,
			"status":        automation.Status,
		}).Info("automations: automation toggled")

		writeJSON(w, logger, automation)
	})
}

func DeleteAutomation(service automating.AutomationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAutomation(id); err != nil {
			writeAutomationError(w, logger, err)
			return
		}

		logger.WithField("automation_id", id).Info("automations: automation deleted")
		w.WriteHeader(http.StatusNoContent)
	})
}

func writeAutomationError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, automating.ErrAutomationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Automação não encontrada", nil)
	case errors.Is(err, automating.ErrNameRequired),
		errors.Is(err, automating.ErrTriggerRequired),
		errors.Is(err, automating.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("automations: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar automação", nil)
	}
}
