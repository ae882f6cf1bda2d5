package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zsyio/api/internal/platform/config"
)

const defaultSendTimeout = 10 * time.Second

// ErrMissingAPIKey is returned when the Resend client is built without credentials.
var ErrMissingAPIKey = errors.New("mail: resend api key is required")

// ResendMailer delivers email through the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// ResendOption customises the ResendMailer.
type ResendOption func(*ResendMailer)

// WithHTTPClient overrides the HTTP client used for delivery.
func WithHTTPClient(client *http.Client) ResendOption {
	return func(m *ResendMailer) {
		if client != nil {
			m.client = client
		}
	}
}

// NewResendMailer constructs a Resend client from configuration.
func NewResendMailer(cfg config.MailConfig, opts ...ResendOption) (*ResendMailer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		endpoint = "https://api.resend.com"
	}

	mailer := &ResendMailer{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(mailer)
		}
	}
	return mailer, nil
}

// Send posts the message to the Resend /emails endpoint.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("mail: at least one recipient is required")
	}
	if strings.TrimSpace(msg.From) == "" {
		return errors.New("mail: sender is required")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("mail: encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mail: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail: send request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail: resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
