package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port       string `yaml:"port"`
		StaticDir  string `yaml:"static_dir"`
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL              string `yaml:"ttl"`
		QuestionSeconds  int    `yaml:"question_seconds"`
		ExtraTimeSeconds int    `yaml:"extra_time_seconds"`
		SessionIdleTTL   string `yaml:"session_idle_ttl"`
		ResultCacheSize  int    `yaml:"result_cache_size"`
	} `yaml:"quiz"`
	Contact struct {
		RatePerMinute int `yaml:"rate_per_minute"`
	} `yaml:"contact"`
}

// Load reads YAML config from path. A missing file yields the zero config,
// which runs the service on in-memory stores with the built-in question bank.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
