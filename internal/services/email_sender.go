package services

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EmailSender abstracts outbound mail so local runs can write to disk
// instead of talking to a relay.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// SMTPSender sends through a plain-auth SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPSender) Send(_ context.Context, to []string, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	msg := strings.Join([]string{
		"From: " + s.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, s.From, to, []byte(msg))
}

// FileSender writes each message to a directory. Used when no relay is
// configured.
type FileSender struct {
	Dir string
}

func (s *FileSender) Send(_ context.Context, to []string, subject, body string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%d.eml", time.Now().UnixNano())
	content := fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n", strings.Join(to, ", "), subject, body)
	return os.WriteFile(filepath.Join(s.Dir, name), []byte(content), 0o644)
}
