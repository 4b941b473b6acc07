package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=12h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	DB    DBConfig
	Paths PathsConfig
}

type DBConfig struct {
	Path string `env:"DB_PATH, default=smartfix.db"`
}

type PathsConfig struct {
	// ImageDir is where uploaded part photos are stored.
	ImageDir string `env:"IMAGE_DIR, default=images_upload"`
	// ModelPath is the classifier artifact loaded at startup. May be empty:
	// classification stays unavailable until a model is uploaded at runtime.
	ModelPath string `env:"MODEL_PATH"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
