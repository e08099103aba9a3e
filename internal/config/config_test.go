package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.App.Port)
	}
	if cfg.Upload.Dir != "uploads/photos" {
		t.Errorf("default upload dir = %q", cfg.Upload.Dir)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development-like")
	}
}

func TestLoad_YamlAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.test.yaml")
	yaml := `
app:
  env: production
  port: 9000
database:
  host: db.internal
  name: meetyou_prod
upload:
  dir: /srv/photos
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("APP_PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Env != "production" {
		t.Errorf("env = %q, want production", cfg.App.Env)
	}
	if cfg.App.Port != 9100 {
		t.Errorf("port = %d, want env override 9100", cfg.App.Port)
	}
	if cfg.Database.Host != "override.internal" {
		t.Errorf("db host = %q, want env override", cfg.Database.Host)
	}
	if cfg.Upload.Dir != "/srv/photos" {
		t.Errorf("upload dir = %q, want yaml value", cfg.Upload.Dir)
	}
	if cfg.IsDevelopment() {
		t.Error("production must not be development")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 3306, User: "u", Password: "p",
		Name: "meetyou", Params: "parseTime=True",
	}}
	want := "u:p@tcp(localhost:3306)/meetyou?parseTime=True"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
