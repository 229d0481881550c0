package mailer

import (
	"fmt"
	"time"

	"github.com/geniesugar/geniesugar/internal/config"
	"github.com/geniesugar/geniesugar/internal/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer delivers transactional email over SMTP. When no SMTP host is
// configured it logs and drops messages instead of failing callers, so the
// application remains usable in development.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	appURL string
	dialer *gomail.Dialer
}

func New(cfg config.SMTPConfig, appURL string) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg, appURL: appURL}
	if cfg.Host == "" {
		logger.Warn("SMTP host is not configured, emails will not be sent")
		return m
	}
	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		logger.Warn("Dropping email, SMTP not configured", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func roleLabel(role string) string {
	switch role {
	case "physician":
		return "Physician"
	case "dietitian":
		return "Dietitian"
	default:
		return "Patient"
	}
}

// SendWelcome greets a freshly registered user.
func (m *SMTPMailer) SendWelcome(to, fullName, role string) error {
	body := fmt.Sprintf(`
<h2>Welcome to GenieSugar, %s</h2>
<p>We're excited to welcome you to <strong>GenieSugar</strong>, a diabetes management
platform that helps patients and healthcare providers track glucose, food and health
insights easily.</p>
<p>You registered as a <strong>%s</strong>.</p>
<p><a href="%s/login">Log in to GenieSugar</a></p>`,
		fullName, roleLabel(role), m.appURL)
	return m.send(to, "Welcome to GenieSugar", body)
}

// SendVerification asks the user to confirm their email address.
func (m *SMTPMailer) SendVerification(to, fullName, token string) error {
	url := fmt.Sprintf("%s/api/verify-email/%s", m.appURL, token)
	body := fmt.Sprintf(`
<p>Hello %s,</p>
<p>Please verify your email address:</p>
<a href="%s">Verify Email</a>`, fullName, url)
	return m.send(to, "Verify your GenieSugar email", body)
}

// SendGlucoseAlert notifies the patient of a high or low reading.
func (m *SMTPMailer) SendGlucoseAlert(to, fullName string, value int, alertType string, timestamp time.Time) error {
	title := "Low Glucose Alert"
	if alertType == "high" {
		title = "High Glucose Alert"
	}
	body := fmt.Sprintf(`
<h2>%s</h2>
<p>Dear %s,</p>
<p>Your glucose reading is <strong>%d mg/dL</strong>.</p>
<p>Recorded at: %s</p>`, title, fullName, value, timestamp.Format("Jan 2, 2006 15:04"))
	return m.send(to, fmt.Sprintf("GenieSugar Alert: %d mg/dL", value), body)
}

// SendFamilyAlert copies a family contact on a patient's glucose alert.
func (m *SMTPMailer) SendFamilyAlert(to, contactName, patientName string, value int, alertType string) error {
	body := fmt.Sprintf(`
<p>Dear %s,</p>
<p>%s recorded a %s glucose value:</p>
<h2>%d mg/dL</h2>`, contactName, patientName, alertType, value)
	return m.send(to, fmt.Sprintf("Family Alert: %s", patientName), body)
}

// SendAppointmentBooked confirms a newly booked appointment to the patient.
func (m *SMTPMailer) SendAppointmentBooked(to, patientName, physicianName string, date time.Time, duration int, notes, requirements string) error {
	body := fmt.Sprintf(`
<p>Hello %s,</p>
<p>Your appointment with <strong>%s</strong> is confirmed.</p>
<p>%s (%d minutes)</p>`, patientName, physicianName, date.Format("Jan 2, 2006 15:04"), duration)
	if notes != "" {
		body += fmt.Sprintf("<p><strong>Notes:</strong> %s</p>", notes)
	}
	if requirements != "" {
		body += fmt.Sprintf("<p><strong>Prepare:</strong> %s</p>", requirements)
	}
	return m.send(to, fmt.Sprintf("Appointment with %s", physicianName), body)
}

// SendAppointmentReminder reminds the patient of an upcoming appointment.
func (m *SMTPMailer) SendAppointmentReminder(to, patientName, physicianName string, date time.Time, daysUntil int, requirements string) error {
	body := fmt.Sprintf(`
<p>Hello %s,</p>
<p>You have an appointment with <strong>%s</strong>.</p>
<p>Date: %s</p>`, patientName, physicianName, date.Format("Jan 2, 2006 15:04"))
	if requirements != "" {
		body += fmt.Sprintf("<p>%s</p>", requirements)
	}
	return m.send(to, fmt.Sprintf("Reminder: Appointment in %d day(s)", daysUntil), body)
}

// SendPasswordReset mails a password reset link.
func (m *SMTPMailer) SendPasswordReset(to, fullName, token string) error {
	url := fmt.Sprintf("%s/reset-password/%s", m.appURL, token)
	body := fmt.Sprintf(`
<p>Hello %s,</p>
<p>Click below to reset your password:</p>
<a href="%s">Reset Password</a>`, fullName, url)
	return m.send(to, "Reset your GenieSugar password", body)
}
