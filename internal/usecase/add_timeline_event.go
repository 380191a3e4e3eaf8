package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

// AddTimelineEventUseCase records a manual entry (note, call, status change)
// on a client's timeline. Quote and message entries come from their own
// use cases.
type AddTimelineEventUseCase struct {
	Clients ClientStore
	log     *zap.Logger
}

func NewAddTimelineEventUseCase(clients ClientStore, log *zap.Logger) *AddTimelineEventUseCase {
	return &AddTimelineEventUseCase{Clients: clients, log: log}
}

func (uc *AddTimelineEventUseCase) Execute(ctx context.Context, in entity.NewTimelineEvent) (entity.TimelineEvent, error) {
	if errs := ValidateTimelineEntry(in); len(errs) > 0 {
		return entity.TimelineEvent{}, invalid(errs)
	}
	if _, ok := uc.Clients.GetClient(in.ClientID); !ok {
		return entity.TimelineEvent{}, notFound(entity.ErrClientNotFound, in.ClientID)
	}
	event := uc.Clients.AddTimelineEvent(in)
	uc.log.Info("timeline event added",
		zap.String("client_id", in.ClientID),
		zap.String("type", string(event.Type)))
	return event, nil
}
