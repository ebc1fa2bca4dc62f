package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	JWTSecret     string `env:"JWT_SECRET"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN, default=http://localhost:5173"`

	Salesforce SalesforceConfig
	Redis      RedisConfig
}

// SalesforceConfig holds the service-level CRM credentials used for the
// OAuth username-password flow at startup.
type SalesforceConfig struct {
	LoginURL     string `env:"SF_LOGIN_URL, default=https://login.salesforce.com"`
	ClientID     string `env:"SF_CLIENT_ID"`
	ClientSecret string `env:"SF_CLIENT_SECRET"`
	Username     string `env:"SF_USERNAME"`
	Password     string `env:"SF_PASSWORD"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
