package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	DB struct {
		ConnString     string        `envconfig:"DB_CONN_STRING" required:"true"`
		Name           string        `envconfig:"DB_NAME" default:"sample_mflix"`
		Collection     string        `envconfig:"DB_COLLECTION" default:"movies"`
		ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
		MaxPoolSize    uint64        `envconfig:"DB_MAX_POOL_SIZE"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
