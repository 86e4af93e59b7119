// utils/mailer.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ErrMailerNotConfigured is surfaced verbatim to the caller so operators
// can tell a missing SMTP configuration apart from a transport failure.
var ErrMailerNotConfigured = errors.New("Email service is not configured")

// SendOTPEmail delivers a one-time code to the recipient over SMTP.
func SendOTPEmail(to, otp string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASSWORD")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return ErrMailerNotConfigured
	}

	smtpPort := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			smtpPort = port
		}
	}

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = smtpUser
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Pharmacy OTP Code</h2>
			<p>Your OTP code is:</p>
			<h3 style="background-color: #f0f0f0; padding: 10px; font-size: 24px; letter-spacing: 5px; text-align: center;">%s</h3>
			<p>This code expires in 10 minutes.</p>
			<p>If you did not request this code, please ignore this email.</p>
		</body>
		</html>
	`, otp)

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Pharmacy OTP Code")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
