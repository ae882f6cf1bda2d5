package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"API_FIRESTORE_PROJECT_ID": "zsyio-test",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Firestore.DatabaseName != "zsyio_db" {
		t.Errorf("expected default database name, got %q", cfg.Firestore.DatabaseName)
	}
	if cfg.Auth.AccessTTL != 30*time.Minute {
		t.Errorf("expected default access TTL, got %v", cfg.Auth.AccessTTL)
	}
	if cfg.Mail.FromEmail != "onboarding@resend.dev" {
		t.Errorf("expected default from email, got %q", cfg.Mail.FromEmail)
	}
	if cfg.Chat.Model != "gpt-4o" {
		t.Errorf("expected default chat model, got %q", cfg.Chat.Model)
	}
	if len(cfg.Site.StructuredFields) != 3 {
		t.Errorf("expected default structured fields, got %v", cfg.Site.StructuredFields)
	}
	if !cfg.Features.EnableMail {
		t.Errorf("expected mail feature enabled by default")
	}
}

func TestLoadMissingProjectID(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := validation.Fields()
	found := false
	for _, field := range fields {
		if field == "Firestore.ProjectID" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Firestore.ProjectID in %v", fields)
	}
}

func TestLoadEnvMapPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	contents := "API_SERVER_PORT=9001\nAPI_FIRESTORE_PROJECT_ID=from-dotenv\nAPI_AUTH_ALLOWED_EMAILS=a@zsyio.com, b@zsyio.com\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(envFile),
		WithEnvMap(map[string]string{"API_SERVER_PORT": "9002"}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9002" {
		t.Errorf("env map should take precedence over dotenv, got %q", cfg.Server.Port)
	}
	if cfg.Firestore.ProjectID != "from-dotenv" {
		t.Errorf("expected dotenv project id, got %q", cfg.Firestore.ProjectID)
	}
	if len(cfg.Auth.AllowedEmails) != 2 || cfg.Auth.AllowedEmails[1] != "b@zsyio.com" {
		t.Errorf("expected trimmed allowed emails, got %v", cfg.Auth.AllowedEmails)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	cfg, err := Load(
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(map[string]string{
			"API_FIRESTORE_PROJECT_ID": "zsyio-test",
			"API_AUTH_ACCESS_TTL":      "not-a-duration",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AccessTTL != 30*time.Minute {
		t.Errorf("expected fallback TTL, got %v", cfg.Auth.AccessTTL)
	}
}
