package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store backends
const (
	BackendDynamo = "dynamo"
	BackendMemory = "memory"
)

// Config is the process configuration, read from the environment
type Config struct {
	Port         string `env:"PORT" env-default:"8080"`
	Env          string `env:"APP_ENV" env-default:"development"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	StoreBackend string `env:"STORE_BACKEND" env-default:"dynamo"`
	TablePrefix  string `env:"TABLE_PREFIX" env-default:"timepass_"`
	AWSRegion    string `env:"AWS_REGION" env-default:"us-east-1"`
	S3Bucket     string `env:"S3_BUCKET_NAME"`
	// RedisAddr enables the read-through document cache when set
	RedisAddr string `env:"REDIS_ADDR"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}
