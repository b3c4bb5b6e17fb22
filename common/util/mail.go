package util

import (
	"fmt"
	"html"
	"io"
	"log/slog"

	"github.com/sunthewhat/koa-member-api/common"
	"gopkg.in/gomail.v2"
)

const defaultMailPort = 587

func InitDialer() {
	port := defaultMailPort
	if common.Config.MailPort != nil {
		port = *common.Config.MailPort
	}
	dailer := gomail.NewDialer(*common.Config.MailHost, port, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dailer
}

// BadgeMailer sends rendered badges through the configured SMTP dialer.
type BadgeMailer struct {
	from string
}

func NewBadgeMailer(from string) *BadgeMailer {
	return &BadgeMailer{from: from}
}

func (m *BadgeMailer) SendBadgeMail(recipient string, name string, filename string, content []byte) error {
	if common.Dialer == nil {
		return fmt.Errorf("mail dialer not initialized")
	}

	mailer := NewBadgeMessage(m.from, recipient, name, filename, content)

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", recipient)
		return err
	}

	slog.Info("Badge email sent successfully", "recipient", recipient, "filename", filename)
	return nil
}

func NewBadgeMessage(from string, recipient string, name string, filename string, content []byte) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", from)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", "KERALA ORTHOPAEDIC ASSOCIATION - Membership Badge")
	mailer.SetBody("text/html", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Please find your KOA membership badge attached to this email.</p>
		<p>Best regards,<br>Kerala Orthopaedic Association</p>
	`, html.EscapeString(name)))

	mailer.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}),
		gomail.SetHeader(map[string][]string{
			"Content-Type": {"application/pdf"},
		}),
	)

	return mailer
}
