package entity

import (
	"strings"
	"time"
)

type PlatformType string

const (
	PlatformInstagram PlatformType = "instagram"
	PlatformTwitter   PlatformType = "twitter"
	PlatformFacebook  PlatformType = "facebook"
	PlatformEmail     PlatformType = "email"
	PlatformPhone     PlatformType = "phone"
	PlatformOther     PlatformType = "other"
)

// Platforms lists every platform type in dashboard order.
var Platforms = []PlatformType{
	PlatformInstagram,
	PlatformTwitter,
	PlatformFacebook,
	PlatformEmail,
	PlatformPhone,
	PlatformOther,
}

func (p PlatformType) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// LeadStatus is an open state: any status may follow any other through
// UpdateLead. Only MarkMessageSent (Sent) and conversion (Client) force a value.
type LeadStatus string

const (
	StatusNew        LeadStatus = "New"
	StatusSent       LeadStatus = "Sent"
	StatusReplied    LeadStatus = "Replied"
	StatusInterested LeadStatus = "Interested"
	StatusClient     LeadStatus = "Client"
	StatusArchived   LeadStatus = "Archived"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusSent, StatusReplied, StatusInterested, StatusClient, StatusArchived:
		return true
	}
	return false
}

type LeadSource string

const (
	SourceSocial  LeadSource = "social"
	SourceEmail   LeadSource = "email"
	SourcePhone   LeadSource = "phone"
	SourceInbound LeadSource = "inbound"
	SourceOther   LeadSource = "other"
)

func (s LeadSource) Valid() bool {
	switch s {
	case SourceSocial, SourceEmail, SourcePhone, SourceInbound, SourceOther:
		return true
	}
	return false
}

// Entidade: Lead
type Lead struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName,omitempty"`
	PlatformType PlatformType `json:"platformType"`
	ProfileLink  string       `json:"profileLink,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Status       LeadStatus   `json:"status"`
	Tags         []string     `json:"tags"`
	Notes        string       `json:"notes"`
	Source       LeadSource   `json:"source"`
	Bio          string       `json:"bio,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastActionAt time.Time    `json:"lastActionAt"`
	MessageSent  bool         `json:"messageSent,omitempty"`
	MessageDate  *time.Time   `json:"messageDate,omitempty"`
	IsClient     bool         `json:"isClient"`
}

func (l Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// NewLead carries the caller-supplied part of a lead; the store assigns
// id and timestamps.
type NewLead struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName,omitempty"`
	PlatformType PlatformType `json:"platformType"`
	ProfileLink  string       `json:"profileLink,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Status       LeadStatus   `json:"status"`
	Tags         []string     `json:"tags"`
	Notes        string       `json:"notes"`
	Source       LeadSource   `json:"source"`
	Bio          string       `json:"bio,omitempty"`
}

// LeadUpdate is a partial update; nil fields are left untouched.
// IsClient is deliberately absent: only conversion changes it.
type LeadUpdate struct {
	FirstName    *string       `json:"firstName,omitempty"`
	LastName     *string       `json:"lastName,omitempty"`
	PlatformType *PlatformType `json:"platformType,omitempty"`
	ProfileLink  *string       `json:"profileLink,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Status       *LeadStatus   `json:"status,omitempty"`
	Tags         *[]string     `json:"tags,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
	Source       *LeadSource   `json:"source,omitempty"`
	Bio          *string       `json:"bio,omitempty"`
}

func (u LeadUpdate) Apply(l *Lead) {
	if u.FirstName != nil {
		l.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		l.LastName = *u.LastName
	}
	if u.PlatformType != nil {
		l.PlatformType = *u.PlatformType
	}
	if u.ProfileLink != nil {
		l.ProfileLink = *u.ProfileLink
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.Tags != nil {
		l.Tags = append([]string{}, (*u.Tags)...)
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	if u.Source != nil {
		l.Source = *u.Source
	}
	if u.Bio != nil {
		l.Bio = *u.Bio
	}
}

// LeadFilter mirrors the leads table: clients are hidden unless asked for.
type LeadFilter struct {
	Platform       PlatformType
	Status         LeadStatus
	IncludeClients bool
}

func (f LeadFilter) Match(l Lead) bool {
	if l.IsClient && !f.IncludeClients {
		return false
	}
	if f.Platform != "" && l.PlatformType != f.Platform {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	return true
}
