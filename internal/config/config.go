package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

type Config struct {
	API           APIConfig           `yaml:"api"`
	Realtime      RealtimeConfig      `yaml:"realtime"`
	Credentials   CredentialsConfig   `yaml:"credentials"`
	Language      string              `yaml:"language"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RealtimeConfig struct {
	// URL is the fallback media/event stream endpoint, used when the voice
	// session response does not carry one.
	URL string `yaml:"url"`
}

type CredentialsConfig struct {
	File string `yaml:"file"`
}

type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load reads the config file, then applies environment overrides on top.
// A missing file is not an error; everything has a default.
func Load() (*Config, error) {
	cfg := defaults()

	path := configPath()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        api.DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Credentials: CredentialsConfig{
			File: filepath.Join(homeDir(), ".medbot", "credentials.json"),
		},
		Language: "en",
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = envOrDefault("MEDBOT_API_URL", cfg.API.BaseURL)
	cfg.API.TimeoutSeconds = envOrDefaultInt("MEDBOT_API_TIMEOUT", cfg.API.TimeoutSeconds)
	cfg.Realtime.URL = envOrDefault("MEDBOT_REALTIME_URL", cfg.Realtime.URL)
	cfg.Credentials.File = envOrDefault("MEDBOT_CREDENTIALS_FILE", cfg.Credentials.File)
	cfg.Language = envOrDefault("MEDBOT_LANGUAGE", cfg.Language)
	cfg.Observability.LogLevel = envOrDefault("MEDBOT_LOG_LEVEL", cfg.Observability.LogLevel)
	cfg.Observability.LogFormat = envOrDefault("MEDBOT_LOG_FORMAT", cfg.Observability.LogFormat)
	cfg.Observability.MetricsAddr = envOrDefault("MEDBOT_METRICS_ADDR", cfg.Observability.MetricsAddr)
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func configPath() string {
	if p := os.Getenv("MEDBOT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".medbot", "config.yaml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envOrDefaultBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return def
	}
	return b
}
