package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestConfigService(t *testing.T, repo *memorySiteConfigRepository, audit *recordingAuditLogger) *ConfigService {
	t.Helper()
	svc, err := NewConfigService(ConfigServiceDeps{
		Repo:  repo,
		Audit: audit,
		Clock: func() time.Time { return time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewConfigService returned error: %v", err)
	}
	return svc
}

func TestSiteConfigCreatedWithDefaults(t *testing.T) {
	repo := &memorySiteConfigRepository{}
	svc := newTestConfigService(t, repo, &recordingAuditLogger{})

	resp, err := svc.SiteConfig(context.Background())
	if err != nil {
		t.Fatalf("SiteConfig returned error: %v", err)
	}
	if resp.SiteName != "Zsyio" || resp.SiteTagline != "Innovative Digital Solutions" {
		t.Fatalf("config = %+v", resp.SiteConfig)
	}
	if resp.ContactEmail != "contact@zsyio.com" {
		t.Fatalf("contact email = %q", resp.ContactEmail)
	}
	if repo.cfg == nil {
		t.Fatalf("singleton not persisted on first read")
	}
	if len(resp.ThemeColors) != 2 {
		t.Fatalf("theme palette modes = %d", len(resp.ThemeColors))
	}
	if resp.ThemeColors["dark"]["base"] != "240 21% 15%" {
		t.Fatalf("dark base = %q", resp.ThemeColors["dark"]["base"])
	}
	if resp.ThemeColors["light"]["blue"] != "217 92% 76%" {
		t.Fatalf("shared blue = %q", resp.ThemeColors["light"]["blue"])
	}
}

func TestLogPrivacyConsent(t *testing.T) {
	audit := &recordingAuditLogger{}
	svc := newTestConfigService(t, &memorySiteConfigRepository{}, audit)

	if err := svc.LogPrivacyConsent(context.Background(), "203.0.113.9", "Accepted"); err != nil {
		t.Fatalf("LogPrivacyConsent returned error: %v", err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Collection != "privacy_consents" {
		t.Fatalf("audit entries = %+v", audit.entries)
	}
	doc := audit.entries[0].Doc
	if doc["ip_address"] != "203.0.113.9" || doc["status"] != "accepted" {
		t.Fatalf("doc = %v", doc)
	}

	if err := svc.LogPrivacyConsent(context.Background(), "203.0.113.9", "maybe"); !errors.Is(err, ErrInvalidConsentStatus) {
		t.Fatalf("expected ErrInvalidConsentStatus, got %v", err)
	}
}

func TestGlobalDataShape(t *testing.T) {
	svc := newTestConfigService(t, &memorySiteConfigRepository{}, &recordingAuditLogger{})

	data := svc.GlobalData()
	links, ok := data["navLinks"].([]map[string]any)
	if !ok || len(links) != 5 {
		t.Fatalf("navLinks = %v", data["navLinks"])
	}
	if links[0]["path"] != "/" {
		t.Fatalf("first nav link = %v", links[0])
	}
	about, ok := data["aboutData"].(map[string]any)
	if !ok {
		t.Fatalf("aboutData = %v", data["aboutData"])
	}
	if _, ok := about["stats"]; !ok {
		t.Fatalf("aboutData missing stats")
	}
}
