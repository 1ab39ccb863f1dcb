package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/hubctl/internal/config"
)

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestEffectivePageSize_Default(t *testing.T) {
	b := config.BrowseConfig{}
	if got := b.EffectivePageSize(); got != 10 {
		t.Errorf("EffectivePageSize = %d, want 10", got)
	}
}

func TestEffectivePageSize_Configured(t *testing.T) {
	b := config.BrowseConfig{PageSize: 25}
	if got := b.EffectivePageSize(); got != 25 {
		t.Errorf("EffectivePageSize = %d, want 25", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome should leave absolute paths alone: %q", got)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HUBCTL_CONFIG", filepath.Join(dir, "config.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Browse.PageSize != 10 {
		t.Errorf("PageSize = %d", cfg.Browse.PageSize)
	}
	if cfg.Defaults.CacheDir == "" {
		t.Error("CacheDir is empty")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "api:\n  base_url: https://hub.example.com\nbrowse:\n  page_size: 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HUBCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://hub.example.com" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Browse.PageSize != 5 {
		t.Errorf("PageSize = %d", cfg.Browse.PageSize)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HUBCTL_CONFIG", filepath.Join(dir, "config.yml"))
	t.Setenv("HUBCTL_TOKEN", "")

	if got := config.LoadSession(); got != "" {
		t.Fatalf("LoadSession before save = %q", got)
	}
	if err := config.SaveSession("tok-abc"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if got := config.LoadSession(); got != "tok-abc" {
		t.Errorf("LoadSession = %q", got)
	}
	if err := config.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if got := config.LoadSession(); got != "" {
		t.Errorf("LoadSession after clear = %q", got)
	}
}

func TestSession_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HUBCTL_CONFIG", filepath.Join(dir, "config.yml"))
	t.Setenv("HUBCTL_TOKEN", "env-token")
	if got := config.LoadSession(); got != "env-token" {
		t.Errorf("LoadSession = %q, want env-token", got)
	}
}
