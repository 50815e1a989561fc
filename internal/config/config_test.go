package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"saffron/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
timeout_seconds = 5
follow_redirects = false
user_agent = "custom/1.0"
history_limit = 25
color = "off"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TimeoutSeconds != 5 || cfg.FollowRedirects || cfg.UserAgent != "custom/1.0" ||
		cfg.HistoryLimit != 25 || cfg.Color != "off" {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `history_limit = 7`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HistoryLimit != 7 {
		t.Errorf("history_limit = %d", cfg.HistoryLimit)
	}
	if cfg.TimeoutSeconds != 30 || !cfg.FollowRedirects || cfg.Color != "auto" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `timeouts = 5`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load should reject unknown keys")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, content := range []string{
		`timeout_seconds = 0`,
		`timeout_seconds = -1`,
		`history_limit = -5`,
		`color = "maybe"`,
	} {
		path := writeConfig(t, content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("Load should reject %q", content)
		}
	}
}
