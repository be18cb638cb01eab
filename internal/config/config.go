package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the process configuration shared by cmd/api and cmd/bot.
type Config struct {
	Port        string        `yaml:"port"`
	Env         string        `yaml:"env"`
	Storage     string        `yaml:"storage"`
	DatabaseURL string        `yaml:"database_url"`
	DBLogLevel  string        `yaml:"db_log_level"`
	APIKey      string        `yaml:"api_key"`
	JWTSecret   string        `yaml:"jwt_secret"`
	JWTTTL      time.Duration `yaml:"jwt_ttl"`

	Telegram TelegramConfig `yaml:"telegram"`
	S3       S3Config       `yaml:"s3"`
	SES      SESConfig      `yaml:"ses"`
}

type TelegramConfig struct {
	Token    string  `yaml:"token"`
	AdminIDs []int64 `yaml:"admin_ids"`
}

// S3Config - recipe image uploads. Disabled while Bucket is empty.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	PublicURL string `yaml:"public_url"` // CDN or bucket URL prefix for uploaded keys
}

func (c S3Config) Enabled() bool { return c.Bucket != "" }

// SESConfig - report emails. Disabled while Sender is empty.
type SESConfig struct {
	Sender string `yaml:"sender"`
	Region string `yaml:"region"`
}

func (c SESConfig) Enabled() bool { return c.Sender != "" }

func Default() *Config {
	return &Config{
		Port:       "8080",
		Env:        "development",
		Storage:    StoragePostgres,
		DBLogLevel: "warn",
		JWTTTL:     12 * time.Hour,
	}
}

// AuthEnabled - true once an API key or a JWT secret is configured
func (c *Config) AuthEnabled() bool {
	return c.APIKey != "" || c.JWTSecret != ""
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StoragePostgres, StorageMemory)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("jwt ttl must be positive, got %s", c.JWTTTL)
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

// ValidateBot - Validate plus the settings only cmd/bot needs
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.Token == "" {
		return fmt.Errorf("TELEGRAM_TOKEN not set")
	}
	return nil
}

// ParseAdminIDs converts "123, 456,789" into []int64, skipping entries that are not numbers.
func ParseAdminIDs(ids string) []int64 {
	var result []int64
	if ids == "" {
		return result
	}
	for _, s := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}
