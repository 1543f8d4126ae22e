package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/copiloting"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
)

// CopilotChat encaminha a conversa do chat ao modelo. Falhas do modelo
// viram resposta degradada dentro do próprio serviço, então aqui só
// tratamos request malformado.
func CopilotChat(service copiloting.CopilotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CopilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.Chat(&req)
		if err != nil {
			if errors.Is(err, copiloting.ErrEmptyConversation) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A conversa precisa ter ao menos uma mensagem", nil)
				return
			}

			logger.WithError(err).Error("copilot: unexpected error")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o copiloto", nil)
			return
		}

		writeJSON(w, logger, response)
	})
}
