package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres   PostgresConfig
	LocalStore LocalStoreConfig

	// Auth
	Auth  AuthConfig
	OAuth OAuthConfig

	// Date-only arithmetic (due dates, daily buckets)
	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL string
}

// LocalStoreConfig configures the JSON-snapshot fallback used when Postgres
// is unreachable at startup.
type LocalStoreConfig struct {
	Path     string
	MaxUsers int
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiry     time.Duration
	RateLimitPerMin int
}

type OAuthConfig struct {
	Google OAuthProviderConfig
	GitHub OAuthProviderConfig
}

type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if pgURL := viper.GetString("database_url"); pgURL != "" {
		cfg.Postgres.URL = pgURL
	}
	cfg.LocalStore.Path = viper.GetString("localstore.path")
	cfg.LocalStore.MaxUsers = viper.GetInt("localstore.max_users")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.TokenExpiry = viper.GetDuration("auth.token_expiry")
	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")

	// OAuth providers
	cfg.OAuth.Google.ClientID = viper.GetString("oauth.google.client_id")
	cfg.OAuth.Google.ClientSecret = viper.GetString("oauth.google.client_secret")
	cfg.OAuth.Google.RedirectURL = viper.GetString("oauth.google.redirect_url")
	cfg.OAuth.GitHub.ClientID = viper.GetString("oauth.github.client_id")
	cfg.OAuth.GitHub.ClientSecret = viper.GetString("oauth.github.client_secret")
	cfg.OAuth.GitHub.RedirectURL = viper.GetString("oauth.github.redirect_url")

	cfg.Timezone = viper.GetString("timezone")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("localstore.path", "./data")
	viper.SetDefault("localstore.max_users", 128)
	viper.SetDefault("auth.token_expiry", "30m")
	viper.SetDefault("auth.rate_limit_per_min", 30)
	viper.SetDefault("timezone", "UTC")
}
