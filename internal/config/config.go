package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Google          Google          `mapstructure:",squash"`
	LinkedIn        LinkedIn        `mapstructure:",squash"`
	Shopify         Shopify         `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	ReportSync      ReportSync      `mapstructure:",squash"`
	AutomationSweep AutomationSweep `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// URL pública do dashboard, usada nos redirects para a página de settings
	URL string `mapstructure:"app_url"`
	// URL pública desta API, registrada nas plataformas como redirect_uri
	// dos callbacks OAuth
	APIURL string `mapstructure:"api_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	RedirectURI string `mapstructure:"-"`
}

type Google struct {
	TokenURL     string `mapstructure:"google_token_url"`
	UserInfoURL  string `mapstructure:"google_userinfo_url"`
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	RedirectURI  string `mapstructure:"-"`
}

type LinkedIn struct {
	TokenURL     string `mapstructure:"linkedin_token_url"`
	ProfileURL   string `mapstructure:"linkedin_profile_url"`
	ClientID     string `mapstructure:"linkedin_client_id"`
	ClientSecret string `mapstructure:"linkedin_client_secret"`
	RedirectURI  string `mapstructure:"-"`
}

type Shopify struct {
	ShopDomain  string `mapstructure:"shopify_shop_domain"`
	APIKey      string `mapstructure:"shopify_api_key"`
	APISecret   string `mapstructure:"shopify_api_secret"`
	RedirectURI string `mapstructure:"-"`
}

type Gemini struct {
	URL    string `mapstructure:"gemini_url"`
	Model  string `mapstructure:"gemini_model"`
	APIKey string `mapstructure:"gemini_api_key"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	LookbackDays int    `mapstructure:"report_sync_lookback_days"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

type AutomationSweep struct {
	CronSchedule string `mapstructure:"automation_sweep_cron"`
	Enabled      bool   `mapstructure:"automation_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_URL", "http://localhost:3000")
	viper.SetDefault("API_URL", "http://localhost:8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/growzzy")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")

	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo")
	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")

	viper.SetDefault("LINKEDIN_TOKEN_URL", "https://www.linkedin.com/oauth/v2/accessToken")
	viper.SetDefault("LINKEDIN_PROFILE_URL", "https://api.linkedin.com/v2/userinfo")
	viper.SetDefault("LINKEDIN_CLIENT_ID", "your_client_id")
	viper.SetDefault("LINKEDIN_CLIENT_SECRET", "your_client_secret")

	viper.SetDefault("SHOPIFY_SHOP_DOMAIN", "your-shop.myshopify.com")
	viper.SetDefault("SHOPIFY_API_KEY", "your_api_key")
	viper.SetDefault("SHOPIFY_API_SECRET", "your_api_secret")

	viper.SetDefault("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-pro")
	viper.SetDefault("GEMINI_API_KEY", "")

	// Relatório diário gerado às 3h da manhã
	viper.SetDefault("REPORT_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("REPORT_SYNC_LOOKBACK_DAYS", 1)
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	// Varredura de automações a cada hora
	viper.SetDefault("AUTOMATION_SWEEP_CRON", "0 * * * *")
	viper.SetDefault("AUTOMATION_SWEEP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// Os redirect URIs apontam de volta para esta API, que então redireciona
	// o navegador para a página de settings do dashboard (App.URL)
	config.Meta.RedirectURI = fmt.Sprintf("%s/v1/auth/meta/callback", config.App.APIURL)
	config.Google.RedirectURI = fmt.Sprintf("%s/v1/auth/google/callback", config.App.APIURL)
	config.LinkedIn.RedirectURI = fmt.Sprintf("%s/v1/auth/linkedin/callback", config.App.APIURL)
	config.Shopify.RedirectURI = fmt.Sprintf("%s/v1/auth/shopify/callback", config.App.APIURL)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
