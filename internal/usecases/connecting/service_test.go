package connecting

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	integratorMocks "github.com/growzzy/growzzy-os-api/infrastructure/integrator/mocks"
	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const dashboardURL = "http://localhost:3000"

func testConfig() *config.Config {
	return &config.Config{App: config.App{URL: dashboardURL}}
}

func TestHandleCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		platform    domain.Platform
		code        string
		oauthError  string
		setup       func(connector *integratorMocks.MockConnector, credentials *mocks.MockCredentialRepository)
		expectedURL string
	}{
		{
			name:        "Plataforma negou a autorização, redirect carrega o erro original",
			platform:    domain.PlatformMeta,
			oauthError:  "access_denied",
			expectedURL: dashboardURL + "/dashboard/settings?error=access_denied",
		},
		{
			name:        "Callback sem code deve redirecionar com no_code_provided",
			platform:    domain.PlatformMeta,
			expectedURL: dashboardURL + "/dashboard/settings?error=no_code_provided",
		},
		{
			name:        "Plataforma sem conector registrado deve redirecionar com unsupported_platform",
			platform:    domain.PlatformTikTok,
			code:        "abc",
			expectedURL: dashboardURL + "/dashboard/settings?error=unsupported_platform",
		},
		{
			name:     "Falha na troca do code deve redirecionar com connection_failed",
			platform: domain.PlatformMeta,
			code:     "abc",
			setup: func(connector *integratorMocks.MockConnector, credentials *mocks.MockCredentialRepository) {
				connector.EXPECT().ExchangeCode("abc").Return(nil, errors.New("invalid grant"))
			},
			expectedURL: dashboardURL + "/dashboard/settings?error=connection_failed",
		},
		{
			name:     "Falha ao buscar dados da conta deve redirecionar com connection_failed",
			platform: domain.PlatformMeta,
			code:     "abc",
			setup: func(connector *integratorMocks.MockConnector, credentials *mocks.MockCredentialRepository) {
				connector.EXPECT().ExchangeCode("abc").Return(&integrator.TokenResult{AccessToken: "tok"}, nil)
				connector.EXPECT().FetchAccountData("tok").Return(nil, errors.New("api unavailable"))
			},
			expectedURL: dashboardURL + "/dashboard/settings?error=connection_failed",
		},
		{
			name:     "Falha ao persistir a credencial deve redirecionar com connection_failed",
			platform: domain.PlatformMeta,
			code:     "abc",
			setup: func(connector *integratorMocks.MockConnector, credentials *mocks.MockCredentialRepository) {
				connector.EXPECT().ExchangeCode("abc").Return(&integrator.TokenResult{AccessToken: "tok"}, nil)
				connector.EXPECT().FetchAccountData("tok").Return(map[string]any{"name": "Conta Meta"}, nil)
				credentials.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectedURL: dashboardURL + "/dashboard/settings?error=connection_failed",
		},
		{
			name:     "Callback bem sucedido persiste a credencial e redireciona com success",
			platform: domain.PlatformMeta,
			code:     "abc",
			setup: func(connector *integratorMocks.MockConnector, credentials *mocks.MockCredentialRepository) {
				connector.EXPECT().ExchangeCode("abc").Return(&integrator.TokenResult{
					AccessToken: "tok",
					ExpiresIn:   3600,
				}, nil)
				connector.EXPECT().FetchAccountData("tok").Return(map[string]any{"name": "Conta Meta"}, nil)
				credentials.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(c *domain.PlatformCredential) error {
					assert.Equal(t, 7, c.UserID)
					assert.Equal(t, domain.PlatformMeta, c.Platform)
					assert.Equal(t, "tok", c.AccessToken)
					assert.Greater(t, c.ExpiresAt, int64(0))
					return nil
				})
			},
			expectedURL: dashboardURL + "/dashboard/settings?success=meta_connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := integratorMocks.NewMockConnector(ctrl)
			connector.EXPECT().Platform().Return(domain.PlatformMeta)
			credentialRepository := mocks.NewMockCredentialRepository(ctrl)

			if tt.setup != nil {
				tt.setup(connector, credentialRepository)
			}

			service := NewService(testConfig(), []integrator.Connector{connector}, credentialRepository)

			redirect := service.HandleCallback(7, tt.platform, tt.code, tt.oauthError)

			assert.Equal(t, tt.expectedURL, redirect)
		})
	}
}

func TestListConnections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve listar as conexões do usuário sem expor tokens", func(t *testing.T) {
		credentialRepository := mocks.NewMockCredentialRepository(ctrl)
		credentialRepository.EXPECT().ListByUser(7).Return([]*domain.PlatformCredential{
			{
				UserID:      7,
				Platform:    domain.PlatformMeta,
				AccessToken: "tok",
				ExpiresAt:   1900000000,
				AccountData: map[string]any{"name": "Conta Meta"},
			},
		}, nil)

		service := &Service{
			cfg:                  testConfig(),
			credentialRepository: credentialRepository,
		}

		connections, err := service.ListConnections(7)

		assert.NoError(t, err)
		assert.Len(t, connections, 1)
		assert.Equal(t, domain.PlatformMeta, connections[0].Platform)
		assert.Equal(t, "Conta Meta", connections[0].AccountData["name"])
	})

	t.Run("Erro de banco deve ser propagado", func(t *testing.T) {
		credentialRepository := mocks.NewMockCredentialRepository(ctrl)
		credentialRepository.EXPECT().ListByUser(7).Return(nil, errors.New("connection refused"))

		service := &Service{
			cfg:                  testConfig(),
			credentialRepository: credentialRepository,
		}

		connections, err := service.ListConnections(7)

		assert.ErrorIs(t, err, ErrDatabase)
		assert.Nil(t, connections)
	})
}

func TestDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		platform    domain.Platform
		setup       func(credentials *mocks.MockCredentialRepository)
		expectedErr error
	}{
		{
			name:        "Plataforma desconhecida deve ser rejeitada",
			platform:    domain.Platform("orkut"),
			expectedErr: ErrUnsupportedPlatform,
		},
		{
			name:     "Desconexão sem credencial salva deve retornar erro de não encontrado",
			platform: domain.PlatformMeta,
			setup: func(credentials *mocks.MockCredentialRepository) {
				credentials.EXPECT().Delete(7, domain.PlatformMeta).Return(false, nil)
			},
			expectedErr: ErrConnectionNotFound,
		},
		{
			name:     "Desconexão de plataforma conectada não deve retornar erro",
			platform: domain.PlatformMeta,
			setup: func(credentials *mocks.MockCredentialRepository) {
				credentials.EXPECT().Delete(7, domain.PlatformMeta).Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credentialRepository := mocks.NewMockCredentialRepository(ctrl)
			if tt.setup != nil {
				tt.setup(credentialRepository)
			}

			service := &Service{
				cfg:                  testConfig(),
				credentialRepository: credentialRepository,
			}

			err := service.Disconnect(7, tt.platform)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResolveStateUser(t *testing.T) {
	const secret = "test-secret"

	signedState := func(t *testing.T, key string, userID int) string {
		t.Helper()

		claims := &domain.Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		assert.NoError(t, err)

		return state
	}

	service := &Service{cfg: &config.Config{Auth: config.Auth{Secret: secret}}}

	tests := []struct {
		name           string
		state          func(t *testing.T) string
		expectedUserID int
		expectedOk     bool
	}{
		{
			name:  "State vazio não identifica sessão",
			state: func(t *testing.T) string { return "" },
		},
		{
			name:  "State que não é um JWT deve ser rejeitado",
			state: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "State assinado com outro secret deve ser rejeitado",
			state: func(t *testing.T) string {
				return signedState(t, "wrong-secret", 7)
			},
		},
		{
			name: "State válido devolve o usuário da sessão",
			state: func(t *testing.T) string {
				return signedState(t, secret, 7)
			},
			expectedUserID: 7,
			expectedOk:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := service.ResolveStateUser(tt.state(t))

			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expectedUserID, userID)
		})
	}
}
