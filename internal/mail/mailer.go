// Package mail provides the transactional email client used for contact-form
// notifications and newsletter welcome messages.
package mail

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
)

// Message describes a single outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NoopMailer discards every message. Used when mail is disabled.
type NoopMailer struct{}

// Send implements Mailer.
func (NoopMailer) Send(context.Context, Message) error { return nil }

var strictPolicy = bluemonday.StrictPolicy()

// EscapeUserContent strips all markup from user-supplied text before it is
// interpolated into email HTML bodies.
func EscapeUserContent(value string) string {
	return strictPolicy.Sanitize(value)
}
