package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigRedirectURIs(t *testing.T) {
	t.Setenv("APP_URL", "https://app.growzzy.example")
	t.Setenv("API_URL", "https://api.growzzy.example")

	config, err := NewConfig()
	assert.NoError(t, err)

	// redirect_uri registrado nas plataformas aponta para a API; os
	// redirects do navegador pós-callback continuam indo para o dashboard
	assert.Equal(t, "https://api.growzzy.example/v1/auth/meta/callback", config.Meta.RedirectURI)
	assert.Equal(t, "https://api.growzzy.example/v1/auth/google/callback", config.Google.RedirectURI)
	assert.Equal(t, "https://api.growzzy.example/v1/auth/linkedin/callback", config.LinkedIn.RedirectURI)
	assert.Equal(t, "https://api.growzzy.example/v1/auth/shopify/callback", config.Shopify.RedirectURI)
	assert.Equal(t, "https://app.growzzy.example", config.App.URL)
}
