package meta

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um code por token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type MetaConnector struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewConnector(cfg *config.Config) integrator.Connector {
	return &MetaConnector{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *MetaConnector) Platform() domain.Platform {
	return domain.PlatformMeta
}

// ExchangeCode troca o authorization code por um access token no Graph API
func (c *MetaConnector) ExchangeCode(code string) (*integrator.TokenResult, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code não pode ser vazio")
	}

	endpoint := fmt.Sprintf("%s/oauth/access_token", c.cfg.Meta.URL)

	params := url.Values{}
	params.Add("client_id", c.cfg.Meta.AppID)
	params.Add("client_secret", c.cfg.Meta.AppSecret)
	params.Add("redirect_uri", c.cfg.Meta.RedirectURI)
	params.Add("code", code)

	requestURL := endpoint + "?" + params.Encode()

	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar code por access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na troca de token do Meta. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro na troca de token do Meta. Status: %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &integrator.TokenResult{
		AccessToken: tokenResp.AccessToken,
		ExpiresIn:   tokenResp.ExpiresIn,
	}, nil
}

// FetchAccountData busca o perfil e as contas de anúncio do usuário conectado
func (c *MetaConnector) FetchAccountData(accessToken string) (map[string]any, error) {
	profileURL := fmt.Sprintf("%s/me?fields=id,name,email&access_token=%s", c.cfg.Meta.URL, accessToken)

	profileBody, err := utils.MakeRequest(profileURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil no Meta: %w", err)
	}

	var profile map[string]any
	if err := json.Unmarshal(profileBody, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil: %w", err)
	}

	accountsURL := fmt.Sprintf(
		"%s/me/adaccounts?fields=id,name,account_id,account_status,currency&access_token=%s",
		c.cfg.Meta.URL, accessToken,
	)

	accountsBody, err := utils.MakeRequest(accountsURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contas de anúncio no Meta: %w", err)
	}

	var accounts struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(accountsBody, &accounts); err != nil {
		return nil, fmt.Errorf("erro ao decodificar contas de anúncio: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"platform":    domain.PlatformMeta,
		"ad_accounts": len(accounts.Data),
	}).Debug("connect: fetched account data from Meta")

	return map[string]any{
		"user_id":     profile["id"],
		"name":        profile["name"],
		"email":       profile["email"],
		"ad_accounts": accounts.Data,
	}, nil
}
