package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growzzy/growzzy-os-api/pkg/log"
)

// writeJSON serializa o payload como resposta 200
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
