package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration: defaults, then the YAML file at path (when
// path is not empty), then .env files, then the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// a missing .env is normal outside local development
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("PORT", &cfg.Port)
	str("APP_ENV", &cfg.Env)
	str("STORAGE", &cfg.Storage)
	str("DATABASE_URL", &cfg.DatabaseURL)
	str("DB_LOG_LEVEL", &cfg.DBLogLevel)
	str("API_KEY", &cfg.APIKey)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("TELEGRAM_TOKEN", &cfg.Telegram.Token)
	str("S3_BUCKET", &cfg.S3.Bucket)
	str("S3_REGION", &cfg.S3.Region)
	str("S3_PUBLIC_URL", &cfg.S3.PublicURL)
	str("SES_SENDER", &cfg.SES.Sender)
	str("SES_REGION", &cfg.SES.Region)

	if v, ok := lookup("AWS_REGION"); ok && v != "" {
		if cfg.S3.Region == "" {
			cfg.S3.Region = v
		}
		if cfg.SES.Region == "" {
			cfg.SES.Region = v
		}
	}
	if v, ok := lookup("ADMIN_IDS"); ok && v != "" {
		cfg.Telegram.AdminIDs = ParseAdminIDs(v)
	}
	if v, ok := lookup("JWT_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL %q: %w", v, err)
		}
		cfg.JWTTTL = d
	}
	return nil
}
