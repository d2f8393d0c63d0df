package services

import (
	"log"

	"gopkg.in/gomail.v2"

	"skyplanner/config"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
}

var mailer *Mailer

// InitMailer wires SMTP notification from configuration. Without SMTP
// settings the email endpoint only logs requests.
func InitMailer(cfg config.Config) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" {
		mailer = nil
		log.Println("⚠️  SMTP not configured — email notifications will be logged only")
		return
	}

	mailer = &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
	log.Println("✅ SMTP notifier initialized")
}

// MailerConfigured reports whether real email delivery is available.
func MailerConfigured() bool {
	return mailer != nil
}

// SendEmail delivers a plain-text notification via SMTP.
func SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", mailer.username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(mailer.host, mailer.port, mailer.username, mailer.password)
	return d.DialAndSend(m)
}
