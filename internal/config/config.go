// internal/config/config.go
package config

import (
	"os"
	"time"
)

// AuthMode controls how inbound requests are resolved to users.
type AuthMode string

const (
	// AuthModeProduction verifies provider-issued tokens and never falls back.
	AuthModeProduction AuthMode = "production"
	// AuthModeDevFallback verifies tokens when present but substitutes a fixed
	// development user when none is supplied.
	AuthModeDevFallback AuthMode = "dev_fallback"
	// AuthModeLocalMock bypasses verification entirely and resolves every
	// request to a fixed local user.
	AuthModeLocalMock AuthMode = "local_mock"
)

type Config struct {
	Environment string `json:"environment"`

	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	Auth struct {
		Mode         AuthMode      `json:"mode"`
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"auth"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Paystack struct {
		SecretKey string `json:"secret_key"`
	} `json:"paystack"`
	BaseURL string `json:"base_url"`
}

// IsProduction reports whether the service runs with production semantics.
// Development-only fallbacks (auth substitution, verbose error bodies,
// degraded warning responses) must all key off this.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func Load() *Config {
	cfg := &Config{}

	cfg.Environment = getEnv("APP_ENV", "development")

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "emate")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// Auth configuration
	cfg.Auth.Mode = AuthMode(getEnv("AUTH_MODE", string(AuthModeDevFallback)))
	cfg.Auth.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.Auth.ExpiryPeriod = time.Hour * 24

	// Production never honors a mock or fallback auth mode, whatever the
	// environment variables say.
	if cfg.IsProduction() {
		cfg.Auth.Mode = AuthModeProduction
	}

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	// Paystack configuration
	cfg.Paystack.SecretKey = getEnv("PAYSTACK_SECRET_KEY", "")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
