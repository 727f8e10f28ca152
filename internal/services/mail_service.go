package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lifesync/internal/models/db_models"
)

type IMailService interface {
	SendContactNotification(contact *db_models.Contact) error
	SendNewsletterWelcome(email string) error
}

// SMTPConfig holds the mail transport and branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // e.g. "no-reply@lifesyncpro.app"

	// Staff inbox receiving contact-form notifications.
	ContactInbox string
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewMailService(cfg SMTPConfig) IMailService {
	if cfg.Host == "" {
		log.Println("Warning: SMTP_HOST not set, outbound mail disabled")
	}
	return &smtpMailService{cfg: cfg}
}

func (m *smtpMailService) SendContactNotification(contact *db_models.Contact) error {
	subject := "New contact form submission"
	if contact.Subject != nil && *contact.Subject != "" {
		subject = fmt.Sprintf("Contact: %s", *contact.Subject)
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", contact.Name, contact.Email, contact.Message)
	return m.send(m.cfg.ContactInbox, subject, body)
}

func (m *smtpMailService) SendNewsletterWelcome(email string) error {
	body := strings.Join([]string{
		"Welcome to the LifeSync Pro newsletter!",
		"",
		"You can unsubscribe at any time from the link in any of our emails.",
	}, "\n")
	return m.send(email, "Welcome to LifeSync Pro", body)
}

func (m *smtpMailService) send(to, subject, body string) error {
	if m.cfg.Host == "" || to == "" {
		// Mail is optional; a missing transport is not an error for callers.
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
