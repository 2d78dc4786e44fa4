package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, username string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, username string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Task Tracker!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Thank you for registering with us. Your account has been successfully created.</p>
		<p>You can now log in and start working with your tasks.</p>
		<p>Best regards,<br>The Task Tracker Team</p>
	`, username)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
