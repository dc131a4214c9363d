// Package notifier sends leave decision emails over SMTP. Delivery is
// best effort: the caller fires it after commit and a failure only
// logs, never rolls back a decision.
package notifier

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/kelola-hr/leave-ledger-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxSendRetries = 3

// DecisionNotification carries everything the decision email renders.
type DecisionNotification struct {
	To           string
	EmployeeName string
	StartDate    string
	EndDate      string
	Days         string
	Status       string
	Reason       *string
}

// Notifier delivers leave decision notifications.
type Notifier interface {
	SendLeaveDecision(ctx context.Context, n DecisionNotification) error
}

type smtpNotifier struct {
	cfg    config.SMTPConfig
	tmpl   *template.Template
	logger *slog.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, logger *slog.Logger) (Notifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &smtpNotifier{cfg: cfg, tmpl: tmpl, logger: logger}, nil
}

// SendLeaveDecision implements Notifier. When SMTP is not configured
// the notification is dropped with a log line so local setups work
// without a mail server.
func (s *smtpNotifier) SendLeaveDecision(ctx context.Context, n DecisionNotification) error {
	if s.cfg.Host == "" || n.To == "" {
		s.logger.InfoContext(ctx, "smtp not configured, skipping decision email",
			slog.String("to", n.To),
		)
		return nil
	}

	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, "leave_decision.html", n); err != nil {
		return fmt.Errorf("failed to render decision email: %w", err)
	}

	subject := fmt.Sprintf("Leave request %s", n.Status)
	msg := s.buildMessage(n.To, subject, body.String())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var lastErr error
	for attempt := 0; attempt < maxSendRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second << attempt):
			}
		}

		lastErr = smtp.SendMail(addr, auth, s.cfg.From, []string{n.To}, msg)
		if lastErr == nil {
			return nil
		}
		s.logger.WarnContext(ctx, "failed to send decision email, retrying",
			slog.String("to", n.To),
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()),
		)
	}

	return fmt.Errorf("failed to send decision email after %d attempts: %w", maxSendRetries, lastErr)
}

func (s *smtpNotifier) buildMessage(to, subject, htmlBody string) []byte {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}
