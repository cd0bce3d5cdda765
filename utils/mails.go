package utils

import (
	"net/smtp"
	"os"
)

// SendMail delivers a raw MIME message to a single recipient. When SMTP is
// not configured (local development, tests) the mail is logged and dropped.
func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	if from == "" || password == "" {
		LogInfo("SMTP not configured, skipping mail to " + email)
		return
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message); err != nil {
		LogError(err, "Error sending mail to "+email)
		return
	}

	LogSuccess("Mail sent to " + email)
}
