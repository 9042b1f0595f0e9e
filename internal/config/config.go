package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures the runtime configuration for the TutorHub client.
type Config struct {
	API   APIConfig
	Store StoreConfig
	Log   LogConfig
}

// APIConfig holds remote endpoint settings.
type APIConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// StoreConfig holds local persistence settings.
type StoreConfig struct {
	Path string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. A TOML file is looked up under
// the user config dir unless TUTORHUB_CONFIG points elsewhere; env var
// overrides use prefix TUTORHUB_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://127.0.0.1:8000")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.requests_per_second", 10.0)
	v.SetDefault("api.burst", 5)
	v.SetDefault("store.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tutorhub", "session.db"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TUTORHUB_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tutorhub"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TUTORHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	cfg := Config{
		API: APIConfig{
			BaseURL:           strings.TrimRight(v.GetString("api.base_url"), "/"),
			Timeout:           v.GetDuration("api.timeout"),
			RequestsPerSecond: v.GetFloat64("api.requests_per_second"),
			Burst:             v.GetInt("api.burst"),
		},
		Store: StoreConfig{
			Path: v.GetString("store.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}

	if cfg.API.BaseURL == "" {
		return Config{}, fmt.Errorf("api.base_url must not be empty")
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}

	return cfg, nil
}
