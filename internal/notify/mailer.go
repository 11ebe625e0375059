package notify

import (
	"context"

	"gopkg.in/gomail.v2"

	"jobboard-backend/internal/shared/telemetry"
)

// Message is a plain-text email to be delivered over the configured relay.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer attempts delivery of a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers messages over an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer for the given relay credentials.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return m.dialer.DialAndSend(gm)
}

// LogMailer stands in for a relay in dev and tests; it only logs.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	telemetry.Info("mail.dev_send", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
