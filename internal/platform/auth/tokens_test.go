package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zsyio/api/internal/platform/config"
	"github.com/zsyio/api/internal/platform/requestctx"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SigningSecret: "test-secret",
		Issuer:        "Zsyio",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, err := NewTokenService(testAuthConfig(), func() time.Time { return now })
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty tokens")
	}
	if got, want := pair.ExpiresAt, now.Add(15*time.Minute); !got.Equal(want) {
		t.Fatalf("ExpiresAt = %v, want %v", got, want)
	}

	subject, err := svc.Verify(pair.AccessToken, TokenKindAccess)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "admin@zsyio.com" {
		t.Fatalf("subject = %q", subject)
	}
}

func TestVerifyRejectsWrongKind(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), nil)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(pair.RefreshToken, TokenKindAccess); !errors.Is(err, ErrWrongTokenKind) {
		t.Fatalf("expected ErrWrongTokenKind, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt

	svc, err := NewTokenService(testAuthConfig(), func() time.Time { return current })
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	current = issuedAt.Add(16 * time.Minute)
	if _, err := svc.Verify(pair.AccessToken, TokenKindAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsTamperedSecret(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), nil)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	otherCfg := testAuthConfig()
	otherCfg.SigningSecret = "different-secret"
	other, err := NewTokenService(otherCfg, nil)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	if _, err := other.Verify(pair.AccessToken, TokenKindAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), nil)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	renewed, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if renewed.AccessToken == "" || renewed.RefreshToken == "" {
		t.Fatalf("expected refreshed tokens to be populated")
	}

	if _, err := svc.Refresh(pair.AccessToken); err == nil {
		t.Fatalf("expected error when refreshing with an access token")
	}
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.SigningSecret = "  "
	if _, err := NewTokenService(cfg, nil); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if err := VerifyPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig(), nil)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	pair, err := svc.Issue("admin@zsyio.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	var gotSubject string
	handler := RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = requestctx.Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + pair.AccessToken, wantStatus: http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotSubject = ""
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusNoContent && gotSubject != "admin@zsyio.com" {
				t.Fatalf("subject = %q", gotSubject)
			}
		})
	}
}
