package linkedin

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
	"github.com/sirupsen/logrus"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LinkedInConnector struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewConnector(cfg *config.Config) integrator.Connector {
	return &LinkedInConnector{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *LinkedInConnector) Platform() domain.Platform {
	return domain.PlatformLinkedIn
}

// ExchangeCode troca o authorization code por tokens no endpoint OAuth2 do LinkedIn
func (c *LinkedInConnector) ExchangeCode(code string) (*integrator.TokenResult, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code não pode ser vazio")
	}

	form := url.Values{}
	form.Add("grant_type", "authorization_code")
	form.Add("client_id", c.cfg.LinkedIn.ClientID)
	form.Add("client_secret", c.cfg.LinkedIn.ClientSecret)
	form.Add("redirect_uri", c.cfg.LinkedIn.RedirectURI)
	form.Add("code", code)

	resp, err := c.httpClient.Post(
		c.cfg.LinkedIn.TokenURL,
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
		logrus.Errorf("Erro na troca de token do LinkedIn. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro na troca de token do LinkedIn. Status: %d", resp.StatusCode)
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

// FetchAccountData busca o perfil do usuário conectado. A API do LinkedIn
// exige o token no header Authorization, não como query param.
func (c *LinkedInConnector) FetchAccountData(accessToken string) (map[string]any, error) {
	req, err := http.NewRequest(http.MethodGet, c.cfg.LinkedIn.ProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil no LinkedIn: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao buscar perfil no LinkedIn. Status: %d", resp.StatusCode)
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil: %w", err)
	}

	return map[string]any{
		"user_id": profile["sub"],
		"name":    profile["name"],
		"email":   profile["email"],
	}, nil
}
