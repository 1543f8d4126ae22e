package google

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type GoogleConnector struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewConnector(cfg *config.Config) integrator.Connector {
	return &GoogleConnector{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GoogleConnector) Platform() domain.Platform {
	return domain.PlatformGoogle
}

// ExchangeCode troca o authorization code por tokens no endpoint OAuth2 do Google
func (c *GoogleConnector) ExchangeCode(code string) (*integrator.TokenResult, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code não pode ser vazio")
	}

	form := url.Values{}
	form.Add("grant_type", "authorization_code")
	form.Add("client_id", c.cfg.Google.ClientID)
	form.Add("client_secret", c.cfg.Google.ClientSecret)
	form.Add("redirect_uri", c.cfg.Google.RedirectURI)
	form.Add("code", code)

	resp, err := c.httpClient.Post(
		c.cfg.Google.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar code por access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na troca de token do Google. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro na troca de token do Google. Status: %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	result := &integrator.TokenResult{
		AccessToken: tokenResp.AccessToken,
		ExpiresIn:   tokenResp.ExpiresIn,
	}
	if tokenResp.RefreshToken != "" {
		result.RefreshToken = &tokenResp.RefreshToken
	}

	return result, nil
}

// FetchAccountData busca o perfil básico do usuário conectado
func (c *GoogleConnector) FetchAccountData(accessToken string) (map[string]any, error) {
	profileURL := fmt.Sprintf("%s?access_token=%s", c.cfg.Google.UserInfoURL, accessToken)

	profileBody, err := utils.MakeRequest(profileURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil no Google: %w", err)
	}

	var profile map[string]any
	if err := json.Unmarshal(profileBody, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil: %w", err)
	}

	return map[string]any{
		"user_id": profile["id"],
		"name":    profile["name"],
		"email":   profile["email"],
	}, nil
}
