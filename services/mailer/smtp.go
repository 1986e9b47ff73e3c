package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"clinicbook/config"
	"clinicbook/models"

	"gopkg.in/gomail.v2"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h1>Appointment Confirmation</h1>
<p>Dear {{.Name}},</p>
<p>Your appointment has been scheduled for {{.Date}} at {{.Time}}.</p>
{{if .MeetLink}}<p>Join the meeting using this <a href="{{.MeetLink}}">Google Meet Link</a>.</p>
{{end}}<p>Thank you for booking with us!</p>
`))

// SMTPMailer sends confirmations over authenticated SMTPS.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	subject string
	timeout time.Duration
}

// NewSMTPMailer builds the mailer from the configured SMTP account.
func NewSMTPMailer() (*SMTPMailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("smtp credentials are not configured")
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	dialer.SSL = cfg.SMTPPort == 465
	return &SMTPMailer{
		dialer:  dialer,
		from:    cfg.SMTPUser,
		subject: fmt.Sprintf("%s - Appointment", cfg.ClinicName),
		timeout: 15 * time.Second,
	}, nil
}

// RenderConfirmation produces the HTML body for one confirmation.
func RenderConfirmation(conf models.Confirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, conf); err != nil {
		return "", fmt.Errorf("rendering confirmation email: %w", err)
	}
	return buf.String(), nil
}

// SendConfirmation renders and delivers one confirmation message. The
// SMTP dial is bounded by the mailer timeout or the caller's context,
// whichever ends first.
func (m *SMTPMailer) SendConfirmation(ctx context.Context, conf models.Confirmation) error {
	body, err := RenderConfirmation(conf)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", conf.To)
	msg.SetHeader("Subject", m.subject)
	msg.SetBody("text/plain", "Sending you Appointment Details")
	msg.AddAlternative("text/html", body)

	// gomail has no context support, so run the send on the side and
	// race it against the deadline.
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send confirmation to %s: %w", conf.To, err)
		}
		return nil
	case <-ctxWithTimeout.Done():
		return fmt.Errorf("timed out sending confirmation to %s: %w", conf.To, ctxWithTimeout.Err())
	}
}
