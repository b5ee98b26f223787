package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	HTTPAddress    string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required,notEmpty"`

	// Records are saved in-process when RabbitmqURL is empty.
	RabbitmqURL         string `env:"RABBITMQ_URL"`
	RabbitmqImportQueue string `env:"RABBITMQ_IMPORT_QUEUE" envDefault:"restaurant-import"`

	HoursCacheTTL      time.Duration `env:"HOURS_CACHE_TTL" envDefault:"24h"`
	Timezone           string        `env:"TIMEZONE" envDefault:"UTC"`
	RateLimitPerMinute uint32        `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`

	CSVPath      string `env:"CSV_PATH"`
	CSVHasHeader bool   `env:"CSV_HAS_HEADER" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`

	location *time.Location
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	config.location = location

	if config.RateLimitPerMinute == 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return config, nil
}

// Location is the timezone in which restaurant hours are interpreted.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
