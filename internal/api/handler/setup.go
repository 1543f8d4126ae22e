package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/usecases/setup"
	"github.com/growzzy/growzzy-os-api/pkg/log"
)

// Setup atende o diagnóstico inicial do dashboard. Com action=check-env
// devolve os booleanos de configuração; sem action, pinga o banco e faz o
// seed do lead de exemplo quando a tabela está vazia.
func Setup(service setup.SetupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("action") == "check-env" {
			writeJSON(w, logger, service.CheckEnv())
			return
		}

		diagnostics, err := service.Diagnose(r.Context())
		if err != nil {
			logger.WithError(err).Error("setup: diagnostics failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			if encErr := json.NewEncoder(w).Encode(diagnostics); encErr != nil {
				logger.WithError(encErr).Error("setup: failed to encode response")
			}
			return
		}

		writeJSON(w, logger, diagnostics)
	})
}
