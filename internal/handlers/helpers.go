package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/platform/httpx"
)

const maxBodySize = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return err
	}
	if len(body) > maxBodySize {
		return errBodyTooLarge
	}
	if len(body) == 0 {
		return errors.New("request body is empty")
	}
	return json.Unmarshal(body, dst)
}

func writeBodyError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
}

// writeStoreError maps repository failures onto the 5xx taxonomy.
func writeStoreError(ctx context.Context, w http.ResponseWriter, err error) {
	if fs.IsUnavailable(err) {
		httpx.WriteError(ctx, w, httpx.NewError("store_unavailable", "data store is unavailable", http.StatusServiceUnavailable))
		return
	}
	httpx.WriteError(ctx, w, httpx.NewError("internal_error", "unexpected server error", http.StatusInternalServerError))
}

// guestID resolves the anonymous cart owner from header or cookie. A new id
// is minted when the request carries neither.
func guestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Guest-ID")); id != "" {
		return id
	}
	if cookie, err := r.Cookie("guest_id"); err == nil {
		if id := strings.TrimSpace(cookie.Value); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

// clientIP extracts the caller address, preferring the first X-Forwarded-For
// hop over the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
