package config

import (
	"errors"
	"os"
)

type Config struct {
	AppPort string

	StripeSecretKey string

	DashboardPassword     string
	DashboardPasswordHash string

	SessionSecret string

	RedisAddr     string
	RedisPassword string

	CookieSecure bool

	WebDir string
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		DashboardPassword:     os.Getenv("DASHBOARD_PASSWORD"),
		DashboardPasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",

		WebDir: os.Getenv("WEB_DIR"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8000"
	}
	if cfg.WebDir == "" {
		cfg.WebDir = "./web"
	}

	return cfg

}

// Validate checks the values the process cannot run without. Optional
// values (Redis, SESSION_SECRET) are handled by the callers that use them.
func (c Config) Validate() error {
	if c.StripeSecretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required")
	}
	if c.DashboardPassword == "" && c.DashboardPasswordHash == "" {
		return errors.New("DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH is required")
	}
	return nil
}
