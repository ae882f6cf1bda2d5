package auth

import (
	"net/http"
	"strings"

	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/platform/requestctx"
)

const bearerPrefix = "Bearer "

// Verifier validates an access token and returns the subject it was issued to.
type Verifier interface {
	Verify(raw, kind string) (string, error)
}

// RequireAuth rejects requests without a valid bearer access token and records
// the subject on the request context.
func RequireAuth(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "authentication is not configured", http.StatusUnauthorized))
				return
			}

			raw := bearerToken(r)
			if raw == "" {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "missing bearer token", http.StatusUnauthorized))
				return
			}

			subject, err := verifier.Verify(raw, TokenKindAccess)
			if err != nil {
				httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "invalid or expired token", http.StatusUnauthorized))
				return
			}

			ctx := requestctx.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
