package connecting

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Destino dos redirects pós-callback no dashboard
const settingsPath = "/dashboard/settings"

type ConnectionService interface {
	HandleCallback(userID int, platform domain.Platform, code, oauthError string) string
	ResolveStateUser(state string) (int, bool)
	ListConnections(userID int) ([]*domain.ConnectionResponse, error)
	Disconnect(userID int, platform domain.Platform) error
}

type Service struct {
	cfg                  *config.Config
	connectors           map[domain.Platform]integrator.Connector
	credentialRepository repository.CredentialRepository
}

func NewService(
	cfg *config.Config,
	connectors []integrator.Connector,
	credentialRepository repository.CredentialRepository,
) ConnectionService {
	connectorMap := make(map[domain.Platform]integrator.Connector, len(connectors))
	for _, connector := range connectors {
		connectorMap[connector.Platform()] = connector
	}

	return &Service{
		cfg:                  cfg,
		connectors:           connectorMap,
		credentialRepository: credentialRepository,
	}
}

// HandleCallback executa o pipeline do callback OAuth: troca o code por
// tokens, busca os dados da conta e faz o upsert da credencial. Sempre
// devolve uma URL de redirect para o dashboard; qualquer falha vira o
// parâmetro error, sem retry nem rollback.
func (s *Service) HandleCallback(userID int, platform domain.Platform, code, oauthError string) string {
	if oauthError != "" {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    oauthError,
		}).Warn("connections: plataforma negou a autorização")
		return s.redirectURL("error", oauthError)
	}

	if code == "" {
		return s.redirectURL("error", "no_code_provided")
	}

	connector, exists := s.connectors[platform]
	if !exists {
		logrus.WithField("platform", platform).Warn("connections: callback para plataforma não suportada")
		return s.redirectURL("error", "unsupported_platform")
	}

	token, err := connector.ExchangeCode(code)
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("connections: erro na troca do authorization code")
		return s.redirectURL("error", "connection_failed")
	}

	accountData, err := connector.FetchAccountData(token.AccessToken)
	if err != nil {
		logrus.WithError(err).WithField("platform", platform).Error("connections: erro ao buscar dados da conta")
		return s.redirectURL("error", "connection_failed")
	}

	credential := &domain.PlatformCredential{
		UserID:       userID,
		Platform:     platform,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		AccountData:  accountData,
	}
	if token.ExpiresIn > 0 {
		credential.ExpiresAt = time.Now().Unix() + token.ExpiresIn
	}

	if err := s.credentialRepository.Upsert(credential); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform": platform,
			"user_id":  userID,
		}).Error("connections: erro ao persistir credencial")
		return s.redirectURL("error", "connection_failed")
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"user_id":  userID,
	}).Info("connections: plataforma conectada")

	return s.redirectURL("success", fmt.Sprintf("%s_connected", platform))
}

// ResolveStateUser recupera o dono da sessão a partir do parâmetro state do
// callback, que o frontend preenche com o próprio token JWT da sessão. O
// redirect do navegador não carrega bearer, então o state é o único vínculo.
func (s *Service) ResolveStateUser(state string) (int, bool) {
	if state == "" {
		return 0, false
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		logrus.WithError(err).Warn("connections: state do callback não identifica uma sessão válida")
		return 0, false
	}

	return claims.UserID, true
}

func (s *Service) ListConnections(userID int) ([]*domain.ConnectionResponse, error) {
	credentials, err := s.credentialRepository.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("connections: erro ao listar conexões")
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	connections := make([]*domain.ConnectionResponse, 0, len(credentials))
	for _, credential := range credentials {
		connections = append(connections, domain.NewConnectionResponse(credential))
	}

	return connections, nil
}

func (s *Service) Disconnect(userID int, platform domain.Platform) error {
	if !platform.Valid() {
		return ErrUnsupportedPlatform
	}

	deleted, err := s.credentialRepository.Delete(userID, platform)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform": platform,
			"user_id":  userID,
		}).Error("connections: erro ao desconectar plataforma")
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if !deleted {
		return ErrConnectionNotFound
	}

	return nil
}

func (s *Service) redirectURL(param, value string) string {
	return fmt.Sprintf("%s%s?%s=%s", s.cfg.App.URL, settingsPath, param, value)
}
