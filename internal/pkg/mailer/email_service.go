package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLoginCode(toEmail, code string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	mockMode    bool
}

// NewEmailService builds the mailer. With no SMTP host configured it runs in
// mock mode: the code is only echoed to the console, which is the intended
// behavior for the mocked verification flow.
func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	mock := host == ""
	var d *gomail.Dialer
	if !mock {
		d = gomail.NewDialer(host, port, username, password)
	}
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		mockMode:    mock,
	}
}

func (s *emailService) SendLoginCode(toEmail, code string) error {
	if s.mockMode {
		fmt.Printf("[MAILER MOCK] Login code for %s: %s\n", toEmail, code)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Verification Code")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Sign in to your dashboard</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send login code to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Login code sent to %s\n", toEmail)
	return nil
}
