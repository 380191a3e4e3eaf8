package mail

import "gopkg.in/gomail.v2"

type LandingEmailData struct {
	CompanyName     string
	Name            string
	Email           string
	Phone           string
	ServiceInterest string
	SubmittedAt     string
}

// dialer is satisfied by *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From   string
	dialer dialer
}
