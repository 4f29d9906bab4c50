package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db_password")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write secret: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	// Test with default values
	t.Setenv("DB_PASSWORD_FILE", writeSecret(t, "s3cret"))
	t.Setenv("API_PORT", "")
	t.Setenv("API_HOST", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DB_POOL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIPort != "5001" {
		t.Errorf("expected default APIPort=5001, got %s", cfg.APIPort)
	}

	if cfg.APIHost != "0.0.0.0" {
		t.Errorf("expected default APIHost=0.0.0.0, got %s", cfg.APIHost)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel=info, got %s", cfg.LogLevel)
	}

	if cfg.DBPool {
		t.Error("expected pooling to be disabled by default")
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("CONTAINER_NAME", "web-1")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("DB_PASSWORD_FILE", writeSecret(t, "  hunter2\n"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_POOL", "TRUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ContainerName != "web-1" {
		t.Errorf("expected ContainerName=web-1, got %s", cfg.ContainerName)
	}
	if cfg.DBHost != "db" || cfg.DBPort != "6543" || cfg.DBUser != "app" || cfg.DBName != "inventory" {
		t.Errorf("unexpected db settings: %+v", cfg)
	}
	if cfg.DBPassword != "hunter2" {
		t.Errorf("expected trimmed password, got %q", cfg.DBPassword)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", cfg.LogLevel)
	}
	if !cfg.DBPool {
		t.Error("expected pooling to be enabled")
	}
}

func TestLoadUnsetVariablesPassThrough(t *testing.T) {
	t.Setenv("DB_PASSWORD_FILE", writeSecret(t, "pw"))
	for _, key := range []string{"CONTAINER_NAME", "DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ContainerName != "" || cfg.DBHost != "" || cfg.DBPort != "" || cfg.DBUser != "" || cfg.DBName != "" {
		t.Errorf("expected empty values, got %+v", cfg)
	}
}

func TestLoadMissingPasswordFile(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unset path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope")},
		{"directory", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_PASSWORD_FILE", tt.path)

			cfg, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if cfg != nil {
				t.Errorf("expected nil config, got %+v", cfg)
			}
		})
	}
}
