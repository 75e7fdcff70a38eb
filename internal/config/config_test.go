package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.Client.Mode != ModeMock {
		t.Errorf("mode = %q, want mock", cfg.Client.Mode)
	}
	if cfg.Client.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d", cfg.Client.TimeoutSeconds)
	}
	if cfg.Database.Path != "secconsole.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 0.0.0.0
  port: 9090
  require_auth: true
client:
  mode: live
  base_url: https://console.example.com/api
reports:
  font_path: /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 || !cfg.Server.RequireAuth {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Client.Mode != ModeLive || cfg.Client.BaseURL != "https://console.example.com/api" {
		t.Errorf("client = %+v", cfg.Client)
	}
	// Unset keys keep their defaults.
	if cfg.Client.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d, want default 10", cfg.Client.TimeoutSeconds)
	}
	if cfg.Reports.FontPath == "" {
		t.Error("font path not read")
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("client:\n  mode: hybrid\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid mode should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SECCONSOLE_MODE", "live")
	t.Setenv("SECCONSOLE_PORT", "7070")
	t.Setenv("SECCONSOLE_REQUIRE_AUTH", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Client.Mode != ModeLive {
		t.Errorf("mode = %q", cfg.Client.Mode)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if !cfg.Server.RequireAuth {
		t.Error("require_auth override not applied")
	}
}
