package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scsdk.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `
email: seller@example.com
api_key_env: SCSDK_TEST_API_KEY
base_url: https://sandbox.example.com/
api_version: "1.0"
api_format: xml
timeout: 15s
proxies:
  - http://proxy.local:8080
user_agents:
  - ua-a
  - ua-b
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s := cfg.Get()
	if s.Email != "seller@example.com" {
		t.Errorf("Unexpected email: %s", s.Email)
	}
	if s.BaseURL != "https://sandbox.example.com/" {
		t.Errorf("Unexpected base url: %s", s.BaseURL)
	}
	if s.APIFormat != "xml" {
		t.Errorf("Unexpected format: %s", s.APIFormat)
	}
	if s.Timeout != 15*time.Second {
		t.Errorf("Unexpected timeout: %v", s.Timeout)
	}
	if len(s.Proxies) != 1 || len(s.UserAgents) != 2 {
		t.Errorf("Unexpected pools: %v %v", s.Proxies, s.UserAgents)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWithDefaults(t *testing.T) {
	path := writeSettings(t, "email: seller@example.com\n")

	cfg, err := Load(path, WithDefaults(map[string]any{
		"api_format": "json",
		"timeout":    "30s",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s := cfg.Get()
	if s.APIFormat != "json" {
		t.Errorf("Expected default format, got %s", s.APIFormat)
	}
	if s.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout, got %v", s.Timeout)
	}
}

func TestWithEnvOverride(t *testing.T) {
	path := writeSettings(t, "email: seller@example.com\napi_format: json\n")
	t.Setenv("SCSDK_API_FORMAT", "xml")

	cfg, err := Load(path, WithEnv("SCSDK"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := cfg.Get().APIFormat; got != "xml" {
		t.Errorf("Expected env override, got %s", got)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("SCSDK_TEST_API_KEY", "s3cr3t")

	s := Settings{APIKeyEnv: "SCSDK_TEST_API_KEY"}
	if got := s.APIKey(); got != "s3cr3t" {
		t.Errorf("Expected key from env, got %q", got)
	}
	if got := (Settings{}).APIKey(); got != "" {
		t.Errorf("Expected empty key without env name, got %q", got)
	}
}

func TestClientOptionsSkipZeroValues(t *testing.T) {
	none := Settings{}
	if got := len(none.ClientOptions()); got != 0 {
		t.Errorf("Expected no options from zero settings, got %d", got)
	}

	full := Settings{
		BaseURL:    "https://sandbox.example.com/",
		APIVersion: "1.0",
		APIFormat:  "xml",
		Timeout:    10 * time.Second,
		Proxies:    []string{"http://proxy.local:8080"},
		UserAgents: []string{"ua-a"},
	}
	if got := len(full.ClientOptions()); got != 6 {
		t.Errorf("Expected 6 options, got %d", got)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	path := writeSettings(t, "proxies:\n  - http://proxy.local:8080\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	s := cfg.Get()
	s.Proxies[0] = "mutated"

	if cfg.Get().Proxies[0] != "http://proxy.local:8080" {
		t.Error("Expected Get to return an independent copy")
	}
}
