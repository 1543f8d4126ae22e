package handler

import (
	"errors"
	"net/http"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/internal/usecases/connecting"
	"github.com/growzzy/growzzy-os-api/pkg/apiErrors"
	"github.com/growzzy/growzzy-os-api/pkg/log"
	"github.com/growzzy/growzzy-os-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

// Usuário atribuído aos callbacks OAuth quando o state não identifica a
// sessão (instalações de workspace único)
const defaultCallbackUserID = 1

// OAuthCallback recebe o redirect das plataformas. É rota pública: o
// navegador chega aqui vindo da tela de consentimento, sem bearer token.
// O resultado é sempre um redirect para a página de settings.
func OAuthCallback(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))
		code := r.URL.Query().Get("code")
		oauthError := r.URL.Query().Get("error")

		logger.WithFields(log.Fields{
			"platform":  platform,
			"has_code":  code != "",
			"has_error": oauthError != "",
		}).Info("connections: OAuth callback received")

		userID := callbackUserID(r, service)

		redirectTo := service.HandleCallback(userID, platform, code, oauthError)
		http.Redirect(w, r, redirectTo, http.StatusFound)
	})
}

func ListConnections(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		connections, err := service.ListConnections(userClaims.UserID)
		if err != nil {
			logger.WithError(err).Error("connections: failed to list connections")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar conexões", nil)
			return
		}

		writeJSON(w, logger, connections)
	})
}

func Disconnect(service connecting.ConnectionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		platform := domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		if err := service.Disconnect(userClaims.UserID, platform); err != nil {
			switch {
			case errors.Is(err, connecting.ErrConnectionNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conexão não encontrada", nil)
			case errors.Is(err, connecting.ErrUnsupportedPlatform):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma inválida", nil)
			default:
				logger.WithError(err).Error("connections: failed to disconnect platform")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desconectar plataforma", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"platform": platform,
			"user_id":  userClaims.UserID,
		}).Info("connections: platform disconnected")

		w.WriteHeader(http.StatusNoContent)
	})
}

// callbackUserID resolve o dono da credencial: claims da sessão quando o
// middleware as colocou no contexto, senão o token de sessão que o frontend
// embute no parâmetro state, senão o usuário padrão do workspace
func callbackUserID(r *http.Request, service connecting.ConnectionService) int {
	if userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
		return userClaims.UserID
	}
	if userID, ok := service.ResolveStateUser(r.URL.Query().Get("state")); ok {
		return userID
	}
	return defaultCallbackUserID
}
