package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "smartpark/libs/config"

	"smartpark/internal/billing"
)

// Config defines the smartpark backend configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"SMARTPARK_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"SMARTPARK_DB_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"SMARTPARK_REDIS_ADDR"`
		Password string `yaml:"password" env:"SMARTPARK_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"SMARTPARK_REDIS_DB"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret  string        `yaml:"jwtSecret" env:"SMARTPARK_JWT_SECRET"`
		TokenTTL   time.Duration `yaml:"tokenTtl" env:"SMARTPARK_TOKEN_TTL"`
		SessionTTL time.Duration `yaml:"sessionTtl" env:"SMARTPARK_SESSION_TTL"`
		BcryptCost int           `yaml:"bcryptCost" env:"SMARTPARK_BCRYPT_COST"`
	} `yaml:"auth"`
	Billing struct {
		NegativeDurationPolicy string `yaml:"negativeDurationPolicy" env:"SMARTPARK_NEGATIVE_DURATION_POLICY"`
	} `yaml:"billing"`
	Company struct {
		Name    string `yaml:"name" env:"SMARTPARK_COMPANY_NAME"`
		Address string `yaml:"address" env:"SMARTPARK_COMPANY_ADDRESS"`
		Phone   string `yaml:"phone" env:"SMARTPARK_COMPANY_PHONE"`
		Email   string `yaml:"email" env:"SMARTPARK_COMPANY_EMAIL"`
	} `yaml:"company"`
}

// Load reads configuration via the shared helper and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8080"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Auth.SessionTTL = 24 * time.Hour
	cfg.Billing.NegativeDurationPolicy = string(billing.ClampNegative)
	cfg.Company.Name = "SmartPark"

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	if !cfg.NegativePolicy().Valid() {
		return nil, fmt.Errorf("config: unknown negative duration policy %q", cfg.Billing.NegativeDurationPolicy)
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// NegativePolicy returns the configured negative duration policy.
func (c *Config) NegativePolicy() billing.NegativeDurationPolicy {
	return billing.NegativeDurationPolicy(strings.ToLower(strings.TrimSpace(c.Billing.NegativeDurationPolicy)))
}
