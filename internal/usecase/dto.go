package usecase

import (
	"io"

	"github.com/xavierca1/leadflow/internal/entity"
)

type ImportLeadsInput struct {
	// Filename picks the parser; Text is used when File is nil.
	Filename string
	File     io.Reader
	Text     string
}

type ImportLeadsOutput struct {
	Imported int           `json:"imported"`
	Leads    []entity.Lead `json:"leads"`
}

type CreateClientInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Notes     string   `json:"notes"`
	Services  []string `json:"services"`
}

type CreateQuoteInput struct {
	ClientID    string             `json:"clientId"`
	Service     string             `json:"service"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	Description string             `json:"description"`
	Status      entity.QuoteStatus `json:"status"`
	ValidDays   int                `json:"validDays"`
}

type CreateQuoteOutput struct {
	Quote entity.Quote         `json:"quote"`
	Event entity.TimelineEvent `json:"event"`
}

type GenerateMessageInput struct {
	ProfileID string `json:"profileId"`
	// Exactly one of LeadID and ClientID is expected.
	LeadID    string `json:"leadId"`
	ClientID  string `json:"clientId"`
	Highlight string `json:"highlight"`
}

type GenerateMessageOutput struct {
	Message   string `json:"message"`
	ProfileID string `json:"profileId"`
	TargetID  string `json:"targetId"`
}

type CaptureLandingOutput struct {
	Submission entity.LandingSubmission `json:"submission"`
	Lead       entity.Lead              `json:"lead"`
}
