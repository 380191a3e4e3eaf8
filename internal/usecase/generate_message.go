package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/outreach"
)

const timelinePreviewLength = 50

type GenerateMessageUseCase struct {
	Leads    LeadStore
	Clients  ClientStore
	Profiles ProfileStore
	log      *zap.Logger
}

func NewGenerateMessageUseCase(leads LeadStore, clients ClientStore, profiles ProfileStore, log *zap.Logger) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{Leads: leads, Clients: clients, Profiles: profiles, log: log}
}

// Execute renders a profile for a lead or a client. Leads use their bio as
// the highlight, clients their notes.
func (uc *GenerateMessageUseCase) Execute(ctx context.Context, in GenerateMessageInput) (GenerateMessageOutput, error) {
	profile, ok := uc.Profiles.GetMessageProfile(in.ProfileID)
	if !ok {
		return GenerateMessageOutput{}, notFound(entity.ErrProfileNotFound, in.ProfileID)
	}

	var (
		rc     outreach.Context
		target string
	)
	switch {
	case in.ClientID != "":
		client, ok := uc.Clients.GetClient(in.ClientID)
		if !ok {
			return GenerateMessageOutput{}, notFound(entity.ErrClientNotFound, in.ClientID)
		}
		rc, target = outreach.ContextForClient(client), client.ID
	case in.LeadID != "":
		lead, ok := uc.Leads.GetLead(in.LeadID)
		if !ok {
			return GenerateMessageOutput{}, notFound(entity.ErrLeadNotFound, in.LeadID)
		}
		rc, target = outreach.ContextFor(lead), lead.ID
	default:
		return GenerateMessageOutput{}, invalid([]ValidationError{{"leadId", "leadId or clientId is required"}})
	}
	if in.Highlight != "" {
		rc.Highlight = in.Highlight
	}

	msg := outreach.Render(profile, rc)
	uc.log.Debug("message generated", zap.String("profile_id", profile.ID), zap.String("target_id", target))
	return GenerateMessageOutput{Message: msg, ProfileID: profile.ID, TargetID: target}, nil
}

// RecordClientMessage notes a sent message on the client's timeline.
func (uc *GenerateMessageUseCase) RecordClientMessage(ctx context.Context, clientID, message string) (entity.TimelineEvent, error) {
	if _, ok := uc.Clients.GetClient(clientID); !ok {
		return entity.TimelineEvent{}, notFound(entity.ErrClientNotFound, clientID)
	}
	preview := message
	if r := []rune(preview); len(r) > timelinePreviewLength {
		preview = string(r[:timelinePreviewLength])
	}
	return uc.Clients.AddTimelineEvent(entity.NewTimelineEvent{
		ClientID: clientID,
		Type:     entity.EventMessage,
		Content:  fmt.Sprintf("Message sent: %s...", preview),
	}), nil
}
