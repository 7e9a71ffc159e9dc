// config — источник загрузки конфигурации клиента ленты.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	API     APIConfig     `yaml:"api"`
	Feed    FeedConfig    `yaml:"feed"`
	Session SessionConfig `yaml:"session"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig — параметры REST-бэкенда.
type APIConfig struct {
	BaseURL       string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8080/api"`
	Timeout       time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"15s"`
	UploadTimeout time.Duration `yaml:"upload_timeout" env:"API_UPLOAD_TIMEOUT" env-default:"2m"`
}

// FeedConfig — параметры пагинации и предзагрузки ленты.
type FeedConfig struct {
	PageSize     int `yaml:"page_size" env:"FEED_PAGE_SIZE" env-default:"10"`
	PreloadAhead int `yaml:"preload_ahead" env:"FEED_PRELOAD_AHEAD" env-default:"3"`
	// PreloadBehind — сколько записей позади активной держим в окне
	// предзагрузки; всё, что дальше, вытесняется.
	PreloadBehind int `yaml:"preload_behind" env:"FEED_PRELOAD_BEHIND" env-default:"10"`
}

// SessionConfig — локальное хранилище авторизационной сессии.
type SessionConfig struct {
	StorePath string `yaml:"store_path" env:"SESSION_STORE_PATH" env-default:"session.db"`
}

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR" env-default:"0.0.0.0:50085"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	return &cfg, nil
}
