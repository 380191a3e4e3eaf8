package entity

import "time"

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected:
		return true
	}
	return false
}

type Quote struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"clientId"`
	Service     string      `json:"service"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	ValidUntil  time.Time   `json:"validUntil"`
}

type NewQuote struct {
	ClientID    string      `json:"clientId"`
	Service     string      `json:"service"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
	ValidUntil  time.Time   `json:"validUntil"`
}

type QuoteUpdate struct {
	Service     *string      `json:"service,omitempty"`
	Amount      *float64     `json:"amount,omitempty"`
	Currency    *string      `json:"currency,omitempty"`
	Description *string      `json:"description,omitempty"`
	Status      *QuoteStatus `json:"status,omitempty"`
	ValidUntil  *time.Time   `json:"validUntil,omitempty"`
}

func (u QuoteUpdate) Apply(q *Quote) {
	if u.Service != nil {
		q.Service = *u.Service
	}
	if u.Amount != nil {
		q.Amount = *u.Amount
	}
	if u.Currency != nil {
		q.Currency = *u.Currency
	}
	if u.Description != nil {
		q.Description = *u.Description
	}
	if u.Status != nil {
		q.Status = *u.Status
	}
	if u.ValidUntil != nil {
		q.ValidUntil = *u.ValidUntil
	}
}
