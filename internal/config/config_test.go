package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    string
		wantErr error
	}{
		{name: "missing file", content: nil, wantErr: ErrMissingAPIKey},
		{name: "empty file", content: ptr(""), wantErr: ErrMissingAPIKey},
		{name: "whitespace only", content: ptr("  \n\t"), wantErr: ErrMissingAPIKey},
		{name: "trimmed key", content: ptr("  AIza-123 \n"), want: "AIza-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				writeFile(t, filepath.Join(dir, APIKeyFile), *tt.content)
			}

			got, err := LoadAPIKey(dir)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadAPIKey() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadAPIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "gemini" || cfg.Model != "gemini-2.5-flash" {
		t.Errorf("defaults = %s/%s, want gemini/gemini-2.5-flash", cfg.Provider, cfg.Model)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
}

func TestLoadYAMLAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, ConfigPath(dir), "provider: openai\nmodel: gpt-4o\ntimeout: 15s\nlog_level: debug\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "openai" || cfg.Model != "gpt-4o" {
		t.Errorf("yaml = %s/%s, want openai/gpt-4o", cfg.Provider, cfg.Model)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Timeout)
	}

	writeFile(t, filepath.Join(dir, EnvFile), "PROMPTSIA_PROVIDER=groq\nPROMPTSIA_LOG_LEVEL=warn\n")

	cfg, err = Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider != "groq" {
		t.Errorf("Provider = %q, want groq from .env", cfg.Provider)
	}
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q, want the groq default", cfg.Model)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, ConfigPath(dir), "provider: [unterminated\n")

	if _, err := Load(dir); err == nil {
		t.Error("Load() expected error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.Provider = "ollama"
	cfg.Model = "qwen2.5:7b"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists(dir) {
		t.Fatal("config file not written")
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Provider != "ollama" || got.Model != "qwen2.5:7b" || got.Timeout != cfg.Timeout {
		t.Errorf("round trip = %+v", got)
	}
}

func ptr(s string) *string { return &s }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

// clearEnv unsets overrides for the test; godotenv never overwrites set vars.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PROMPTSIA_PROVIDER", "PROMPTSIA_MODEL", "PROMPTSIA_BASE_URL", "PROMPTSIA_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}
