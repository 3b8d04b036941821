// Package mailer delivers rendered digests over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/abelbrown/briefing/internal/config"
)

// Mailer sends multipart digest emails through a single SMTP account.
type Mailer struct {
	smtp config.SMTP
}

// New returns a Mailer bound to the given SMTP settings.
func New(smtp config.SMTP) *Mailer {
	return &Mailer{smtp: smtp}
}

// Send delivers a message with a plaintext body and an HTML alternative.
func (m *Mailer) Send(ctx context.Context, subject, text, html string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.smtp.From); err != nil {
		return fmt.Errorf("set sender %q: %w", m.smtp.From, err)
	}
	if err := msg.To(m.smtp.To); err != nil {
		return fmt.Errorf("set recipient %q: %w", m.smtp.To, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(m.smtp.Server,
		mail.WithPort(m.smtp.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.smtp.User),
		mail.WithPassword(m.smtp.Pass),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", m.smtp.Server, err)
	}
	return nil
}
