// Package email sends ticket notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Menatic/IT-Support/internal/shared/config"
)

// TicketNotifier notifies requesters about ticket lifecycle events.
type TicketNotifier interface {
	NotifyTicketResolved(to, requesterName, ticketTitle string) error
}

type SMTPNotifier struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPNotifier) NotifyTicketResolved(to, requesterName, ticketTitle string) error {
	subject := fmt.Sprintf("Your ticket has been resolved: %s", ticketTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Resolved</h2>
			<p>Hi %s,</p>
			<p>Your support ticket <strong>%s</strong> has been marked as resolved.</p>
			<p>If the issue persists, reply on the ticket and it will be picked up again.</p>
		</body>
		</html>
	`, requesterName, ticketTitle)

	plainBody := fmt.Sprintf(`
Hi %s,

Your support ticket "%s" has been marked as resolved.

If the issue persists, reply on the ticket and it will be picked up again.
	`, requesterName, ticketTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (*NoopNotifier) NotifyTicketResolved(to, requesterName, ticketTitle string) error {
	return nil
}
