package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Mode selects the backend for the whole process: "mock" serves and queries
// the in-memory store, "live" points the client at a real API endpoint. It
// is never switched per call.
const (
	ModeMock = "mock"
	ModeLive = "live"
)

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	RequireAuth bool   `yaml:"require_auth"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ClientConfig struct {
	Mode           string `yaml:"mode"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	TokenPath      string `yaml:"token_path"`
	SessionPath    string `yaml:"session_path"`
}

type ReportsConfig struct {
	FontPath string `yaml:"font_path"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Client   ClientConfig   `yaml:"client"`
	Reports  ReportsConfig  `yaml:"reports"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "secconsole.db",
		},
		Client: ClientConfig{
			Mode:           ModeMock,
			BaseURL:        "http://127.0.0.1:8080/api",
			TimeoutSeconds: 10,
			TokenPath:      ".auth-token",
			SessionPath:    ".auth-session",
		},
	}
}

// Load reads the YAML config, falling back to defaults when the file is
// absent, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()

	if cfg.Client.Mode != ModeMock && cfg.Client.Mode != ModeLive {
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Client.Mode, ModeMock, ModeLive)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SECCONSOLE_MODE"); v != "" {
		c.Client.Mode = v
	}
	if v := os.Getenv("SECCONSOLE_API_BASE_URL"); v != "" {
		c.Client.BaseURL = v
	}
	if v := os.Getenv("SECCONSOLE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("SECCONSOLE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("SECCONSOLE_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("SECCONSOLE_REQUIRE_AUTH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.RequireAuth = b
		}
	}
}
