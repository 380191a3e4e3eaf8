package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/leadflow/internal/entity"
)

//go:embed templates/*.html
var templates embed.FS

var landingTemplate = template.Must(template.ParseFS(templates, "templates/landing.html"))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		From:   from,
		dialer: gomail.NewDialer(host, port, user, password),
	}
}

// SendLandingNotification tells the owner about a new public form entry.
func (s *EmailSender) SendLandingNotification(to, companyName string, sub entity.LandingSubmission) error {
	m, err := s.landingMessage(to, companyName, sub)
	if err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP email: %w", err)
	}
	return nil
}

func (s *EmailSender) landingMessage(to, companyName string, sub entity.LandingSubmission) (*gomail.Message, error) {
	body, err := renderLanding(LandingEmailData{
		CompanyName:     companyName,
		Name:            sub.Name,
		Email:           sub.Email,
		Phone:           sub.Phone,
		ServiceInterest: sub.ServiceInterest,
		SubmittedAt:     sub.CreatedAt.Format(time.RFC1123),
	})
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", sub.Email)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s (%s)", sub.Name, sub.ServiceInterest))
	m.SetBody("text/html", body)
	return m, nil
}

func renderLanding(data LandingEmailData) (string, error) {
	var body bytes.Buffer
	if err := landingTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return body.String(), nil
}
