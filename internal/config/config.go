package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DBConfig holds the individual Postgres connection settings
type DBConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Name     string `env:"NAME" envDefault:"ethicalfolio"`
}

// Config holds application configuration
type Config struct {
	GRPCAddr  string `env:"GRPC_ADDR" envDefault:":8080"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8081"`
	APIToken  string `env:"API_TOKEN" envDefault:"dev-token"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// CORSOrigins are the browser origins allowed to call the HTTP API
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// UseDatabase switches portfolio storage from the in-memory catalog to Postgres
	UseDatabase bool     `env:"USE_DATABASE" envDefault:"false"`
	DBConnStr   string   `env:"DB_CONN_STR"`
	DB          DBConfig `envPrefix:"DB_"`

	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepEvery string        `env:"SESSION_SWEEP_SCHEDULE" envDefault:"@every 5m"`

	RingOuterRadius float64 `env:"RING_OUTER_RADIUS" envDefault:"120"`
	RingInnerRadius float64 `env:"RING_INNER_RADIUS" envDefault:"70"`
}

// Load reads configuration from a .env file, when present, and the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can start a server
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("API_TOKEN is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.RingInnerRadius < 0 || c.RingInnerRadius >= c.RingOuterRadius {
		return fmt.Errorf("ring radii must satisfy 0 <= inner < outer, got inner=%g outer=%g",
			c.RingInnerRadius, c.RingOuterRadius)
	}
	return nil
}

// ConnString returns DB_CONN_STR when set, otherwise builds it from the DB_* vars
func (c *Config) ConnString() string {
	if c.DBConnStr != "" {
		return c.DBConnStr
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name)
}
