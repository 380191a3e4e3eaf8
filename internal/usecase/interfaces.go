package usecase

import "github.com/xavierca1/leadflow/internal/entity"

// LeadStore is the part of the application state the lead use cases touch.
// *store.Store satisfies every interface in this file.
type LeadStore interface {
	AddLead(in entity.NewLead) entity.Lead
	AddLeads(in []entity.NewLead) []entity.Lead
	GetLead(id string) (entity.Lead, bool)
	DeleteLead(id string) bool
}

type ClientStore interface {
	ConvertToClient(leadID string) (entity.Client, bool)
	GetClient(id string) (entity.Client, bool)
	AddClientService(id, service string) (entity.Client, bool)
	AddQuote(in entity.NewQuote) entity.Quote
	AddTimelineEvent(in entity.NewTimelineEvent) entity.TimelineEvent
}

type ProfileStore interface {
	GetMessageProfile(id string) (entity.MessageProfile, bool)
}

type LandingStore interface {
	AddLandingSubmission(in entity.NewLandingSubmission) (entity.LandingSubmission, entity.Lead)
	Settings() entity.Settings
}

type EmailService interface {
	SendLandingNotification(to, companyName string, sub entity.LandingSubmission) error
}
