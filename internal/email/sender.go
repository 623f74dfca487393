package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a rendered email ready for transport.
type Message struct {
	To      string
	Bcc     string
	Subject string
	HTML    string
}

// Sender delivers rendered messages. Satisfied by SendGridSender in
// production and by fakes in tests.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SendGridSender delivers mail through the SendGrid v3 API.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
}

func NewSendGridSender(apiKey, from, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	if s.apiKey == "" || s.from == "" {
		return fmt.Errorf("email sender not configured: missing SENDGRID_API_KEY or SENDGRID_FROM_EMAIL")
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(s.fromName, s.from))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	if msg.Bcc != "" && msg.Bcc != msg.To {
		p.AddBCCs(mail.NewEmail("", msg.Bcc))
	}
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", msg.HTML))

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d: %s", resp.StatusCode, resp.Body)
	}

	slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
