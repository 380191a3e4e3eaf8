package entity

import (
	"fmt"
	"strings"
	"time"
)

// LandingSubmission is a public intake form entry.
type LandingSubmission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	ServiceInterest string    `json:"serviceInterest"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewLandingSubmission struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	ServiceInterest string `json:"serviceInterest"`
}

// Lead builds the inbound lead that accompanies every submission.
func (s NewLandingSubmission) Lead() NewLead {
	parts := strings.Fields(s.Name)
	var first, last string
	if len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}
	return NewLead{
		FirstName:    first,
		LastName:     last,
		PlatformType: PlatformEmail,
		Email:        s.Email,
		Phone:        s.Phone,
		Status:       StatusNew,
		Tags:         []string{"Inbound", s.ServiceInterest},
		Notes:        fmt.Sprintf("Interested in: %s", s.ServiceInterest),
		Source:       SourceInbound,
	}
}
