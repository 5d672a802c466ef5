package summit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.UserAgent != "summit-go/"+Version {
		t.Errorf("expected summit-go/%s, got %s", Version, cfg.UserAgent)
	}
}

func TestConfig_ApplyDefaults_PreservesValues(t *testing.T) {
	cfg := Config{
		BaseURL:   "https://api.example.com",
		UserAgent: "custom/1.0",
	}
	cfg.ApplyDefaults()
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("base URL was overwritten: %s", cfg.BaseURL)
	}
	if cfg.UserAgent != "custom/1.0" {
		t.Errorf("user agent was overwritten: %s", cfg.UserAgent)
	}
}

func TestConfig_Validate_EmptyBaseURL(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://api.example.com")
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvTimeout, "5s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("expected https://api.example.com, got %s", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Timeout)
	}
	if cfg.Credentials == nil {
		t.Fatal("expected credentials from environment")
	}
	token, err := cfg.Credentials.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "env-token" {
		t.Errorf("expected env-token, got %q", token)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvToken, "")
	t.Setenv(EnvTimeout, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected zero timeout, got %s", cfg.Timeout)
	}
	if cfg.Credentials != nil {
		t.Error("expected nil credentials when no token is set")
	}
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "banana")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
	if !strings.Contains(err.Error(), EnvTimeout) {
		t.Errorf("error should name %s, got %v", EnvTimeout, err)
	}
}

func TestFromEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "SUMMIT_API_URL=https://dotenv.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Chdir(dir)

	// godotenv only fills variables that are not already set, so make sure
	// the variable is absent (t.Setenv registers the restore).
	t.Setenv(EnvBaseURL, "")
	os.Unsetenv(EnvBaseURL)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://dotenv.example.com" {
		t.Errorf("expected value from .env file, got %s", cfg.BaseURL)
	}
}

func TestFromEnv_RealEnvWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SUMMIT_API_URL=https://dotenv.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Chdir(dir)
	t.Setenv(EnvBaseURL, "https://real.example.com")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://real.example.com" {
		t.Errorf("expected real environment to win, got %s", cfg.BaseURL)
	}
}
