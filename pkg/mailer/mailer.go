// Package mailer sends account emails through SendGrid, degrading to
// logged simulated sends when no API key is configured.
package mailer

import (
	"fmt"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/logging"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer defines the interface for outbound account email.
type Mailer interface {
	SendWelcome(toEmail, name string) error
}

// Config holds sender identity and the SendGrid credential.
type Config struct {
	APIKey      string // Empty enables simulation mode
	FromAddress string
	FromName    string
}

// sendGridMailer implements Mailer. With no API key it logs the mail
// instead of sending, so registration flows keep working in development.
type sendGridMailer struct {
	client *sendgrid.Client
	cfg    Config
	logger *zap.Logger
}

// New creates a mailer. A nil client (no API key) means simulation mode.
func New(cfg Config, logger *zap.Logger) Mailer {
	var client *sendgrid.Client
	if cfg.APIKey != "" {
		client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return &sendGridMailer{
		client: client,
		cfg:    cfg,
		logger: logger.Named("mailer"),
	}
}

// SendWelcome sends the post-registration welcome email. Failures are
// logged and the mail falls back to a simulated send; callers treat the
// welcome email as best-effort.
func (m *sendGridMailer) SendWelcome(toEmail, name string) error {
	subject := "Welcome to DermaSafe!"
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to DermaSafe!\n\nYour account has been successfully created. "+
			"We are excited to help you analyze skincare products safely.\n\nBest regards,\nThe DermaSafe Team\n",
		name)

	if m.client == nil {
		m.simulate(toEmail, subject)
		return nil
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := mail.NewEmail(name, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := m.client.Send(message)
	if err != nil {
		m.logger.Warn("SendGrid send failed, falling back to simulation", zap.Error(err))
		m.simulate(toEmail, subject)
		return nil
	}
	if resp.StatusCode >= 400 {
		m.logger.Warn("SendGrid rejected message, falling back to simulation",
			zap.Int("status", resp.StatusCode))
		m.simulate(toEmail, subject)
		return nil
	}

	m.logger.Info("Welcome email sent", zap.String("to", logging.RedactEmail(toEmail)))
	return nil
}

// simulate records the mail in the log instead of sending it.
func (m *sendGridMailer) simulate(toEmail, subject string) {
	m.logger.Info("Simulated email send",
		zap.String("to", logging.RedactEmail(toEmail)),
		zap.String("subject", subject))
}
