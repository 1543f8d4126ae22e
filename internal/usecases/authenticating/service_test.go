package authenticating

import (
	"testing"

	"github.com/growzzy/growzzy-os-api/infrastructure/repository/mocks"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{Auth: config.Auth{Secret: "test-secret"}}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		user        *domain.User
		setup       func(repository *mocks.MockUserRepository)
		validate    func(t *testing.T, created *domain.User, err error)
		expectedErr error
	}{
		{
			name:        "Cadastro sem email, nome ou senha deve ser rejeitado",
			user:        &domain.User{Email: "ana@example.com"},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Email já cadastrado deve ser rejeitado",
			user: &domain.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "senha123"},
			setup: func(repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name: "Cadastro válido normaliza o email e grava a senha com hash",
			user: &domain.User{Name: "Ana", Email: " Ana@Example.com ", PasswordHash: "senha123"},
			setup: func(repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
				repository.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
					assert.Equal(t, "ana@example.com", u.Email)
					assert.NotEqual(t, "senha123", u.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
					assert.True(t, u.Active)
					assert.Equal(t, 2, u.RoleID)
					u.ID = 10
					return u, nil
				})
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 10, created.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepository := mocks.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(userRepository)
			}

			service := &Service{userRepo: userRepository, cfg: authConfig()}

			created, err := service.CreateUser(tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			tt.validate(t, created, err)
		})
	}
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(t *testing.T, repository *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Login sem email ou senha deve ser rejeitado",
			email:       "ana@example.com",
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente deve retornar erro de não encontrado",
			email:    "ana@example.com",
			password: "senha123",
			setup: func(t *testing.T, repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada deve ser rejeitada antes de conferir a senha",
			email:    "ana@example.com",
			password: "senha123",
			setup: func(t *testing.T, repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:     1,
					Active: false,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta deve retornar erro de credenciais",
			email:    "ana@example.com",
			password: "senhaerrada",
			setup: func(t *testing.T, repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           1,
					Active:       true,
					PasswordHash: hashPassword(t, "senha123"),
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Login válido deve emitir um token",
			email:    " Ana@Example.com ",
			password: "senha123",
			setup: func(t *testing.T, repository *mocks.MockUserRepository) {
				repository.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
					ID:           1,
					Name:         "Ana",
					Email:        "ana@example.com",
					Active:       true,
					RoleID:       2,
					PasswordHash: hashPassword(t, "senha123"),
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepository := mocks.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(t, userRepository)
			}

			service := &Service{userRepo: userRepository, cfg: authConfig()}

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token emitido deve validar com o mesmo segredo
			claims, err := service.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, "ana@example.com", claims.UserEmail)
		})
	}
}

func TestGetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Perfil retornado nunca carrega o hash da senha", func(t *testing.T) {
		userRepository := mocks.NewMockUserRepository(ctrl)
		userRepository.EXPECT().GetUserByID(1).Return(&domain.User{
			ID:           1,
			Name:         "Ana",
			PasswordHash: "$2a$10$hash",
		}, nil)

		service := &Service{userRepo: userRepository, cfg: authConfig()}

		user, err := service.GetUserProfile(1)

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente deve retornar erro de não encontrado", func(t *testing.T) {
		userRepository := mocks.NewMockUserRepository(ctrl)
		userRepository.EXPECT().GetUserByID(1).Return(nil, nil)

		service := &Service{userRepo: userRepository, cfg: authConfig()}

		user, err := service.GetUserProfile(1)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{cfg: authConfig()}

	t.Run("Token adulterado deve ser rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo deve ser rejeitado", func(t *testing.T) {
		other := &Service{cfg: &config.Config{Auth: config.Auth{Secret: "outro-segredo"}}}

		userRepository := mocks.NewMockUserRepository(ctrl)
		userRepository.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
			ID:           1,
			Email:        "ana@example.com",
			Active:       true,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

		issuer := &Service{userRepo: userRepository, cfg: authConfig()}
		token, err := issuer.LoginUser("ana@example.com", "senha123")
		assert.NoError(t, err)

		claims, err := other.ValidateToken(token)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
