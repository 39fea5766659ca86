package mail

import (
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name    string
	Content io.Reader
}

// Sender delivers HTML mail over SMTP. Inline attachments are embedded with
// their Name as Content-ID so the HTML body can reference them via cid: URLs.
type Sender interface {
	SendMail(to []string, cc []string, subject, htmlBody, textBody string, attachments []Attachment, inline []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(to []string, cc []string, subject, htmlBody, textBody string, attachments []Attachment, inline []Attachment) error {
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	if len(cc) > 0 {
		m.SetHeader("Cc", cc...)
	}
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.AddAlternative("text/plain", textBody)
	}
	if htmlBody != "" {
		m.SetBody("text/html", htmlBody)
	}

	for _, attachment := range attachments {
		if attachment.Content != nil && attachment.Name != "" {
			m.Attach(attachment.Name, mail.SetCopyFunc(copyContent(attachment.Content)))
		}
	}
	for _, embedded := range inline {
		if embedded.Content != nil && embedded.Name != "" {
			m.Embed(embedded.Name, mail.SetCopyFunc(copyContent(embedded.Content)))
		}
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}

func copyContent(content io.Reader) func(w io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.Copy(w, content)
		return err
	}
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
