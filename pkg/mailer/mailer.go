package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
)

// Mailer delivers notification email over SMTP. When SMTP is not
// configured, Send is a logged no-op upstream; delivery here is
// best-effort with no retries.
type Mailer struct {
	cfg config.SMTPConfig
}

// New constructs a mailer from the SMTP configuration.
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether the mailer has a configured SMTP host.
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send delivers a single HTML message to the configured recipient.
func (m *Mailer) Send(subject, htmlBody string) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}
	to := m.cfg.To
	if to == "" {
		to = m.cfg.User
	}
	if from == "" || to == "" {
		return fmt.Errorf("smtp sender and recipient are required")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String()))
}
