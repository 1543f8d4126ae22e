package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/growzzy/growzzy-os-api/infrastructure/integrator"
	"github.com/growzzy/growzzy-os-api/internal/config"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

type ShopifyConnector struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewConnector(cfg *config.Config) integrator.Connector {
	return &ShopifyConnector{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *ShopifyConnector) Platform() domain.Platform {
	return domain.PlatformShopify
}

// ExchangeCode troca o authorization code por um access token permanente.
// Tokens da Shopify não expiram, então ExpiresIn fica zerado.
func (c *ShopifyConnector) ExchangeCode(code string) (*integrator.TokenResult, error) {
	if code == "" {
		return nil, fmt.Errorf("authorization code não pode ser vazio")
	}

	payload, err := json.Marshal(map[string]string{
		"client_id":     c.cfg.Shopify.APIKey,
		"client_secret": c.cfg.Shopify.APISecret,
		"code":          code,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o payload: %w", err)
	}

	tokenURL := fmt.Sprintf("https://%s/admin/oauth/access_token", c.cfg.Shopify.ShopDomain)

	resp, err := c.httpClient.Post(tokenURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao trocar code por access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro na troca de token da Shopify. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro na troca de token da Shopify. Status: %d", resp.StatusCode)
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
	}, nil
}

// FetchAccountData busca os dados da loja conectada via Admin API
func (c *ShopifyConnector) FetchAccountData(accessToken string) (map[string]any, error) {
	shopURL := fmt.Sprintf("https://%s/admin/api/2024-01/shop.json", c.cfg.Shopify.ShopDomain)

	req, err := http.NewRequest(http.MethodGet, shopURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar dados da loja: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao buscar dados da loja. Status: %d", resp.StatusCode)
	}

	var payload struct {
		Shop map[string]any `json:"shop"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar dados da loja: %w", err)
	}

	return map[string]any{
		"shop_id":     payload.Shop["id"],
		"name":        payload.Shop["name"],
		"email":       payload.Shop["email"],
		"shop_domain": payload.Shop["myshopify_domain"],
	}, nil
}
