package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/leadflow/internal/entity"
)

var (
	// ErrMissingParent is a change that references a row the mirror lacks,
	// e.g. a quote for a client whose upsert never arrived.
	ErrMissingParent = errors.New("parent record missing in mirror")
	ErrBadChange     = errors.New("change has no payload")
)

// Mirror applies local changes to the remote tables of one owner.
type Mirror struct {
	Leads    *LeadRepository
	Clients  *ClientRepository
	Quotes   *QuoteRepository
	Timeline *TimelineRepository
	Profiles *ProfileRepository
	Landing  *LandingRepository
}

func NewMirror(db Execer, userID string) *Mirror {
	return &Mirror{
		Leads:    NewLeadRepository(db, userID),
		Clients:  NewClientRepository(db, userID),
		Quotes:   NewQuoteRepository(db, userID),
		Timeline: NewTimelineRepository(db, userID),
		Profiles: NewProfileRepository(db, userID),
		Landing:  NewLandingRepository(db),
	}
}

func (m *Mirror) Apply(ctx context.Context, c entity.Change) error {
	err := m.apply(ctx, c)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return fmt.Errorf("%w: %s %s: %v", ErrMissingParent, c.Kind, c.ID, err)
	}
	return err
}

func (m *Mirror) apply(ctx context.Context, c entity.Change) error {
	if c.Op == entity.OpDelete {
		switch c.Kind {
		case entity.KindLead:
			return m.Leads.Delete(ctx, c.ID)
		case entity.KindClient:
			return m.Clients.Delete(ctx, c.ID)
		case entity.KindQuote:
			return m.Quotes.Delete(ctx, c.ID)
		case entity.KindTimeline:
			return m.Timeline.Delete(ctx, c.ID)
		case entity.KindProfile:
			return m.Profiles.Delete(ctx, c.ID)
		}
		return fmt.Errorf("delete not supported for %s", c.Kind)
	}

	switch {
	case c.Kind == entity.KindLead && c.Lead != nil:
		return m.Leads.Upsert(ctx, c.Lead)
	case c.Kind == entity.KindClient && c.Client != nil:
		return m.Clients.Upsert(ctx, c.Client)
	case c.Kind == entity.KindQuote && c.Quote != nil:
		return m.Quotes.Upsert(ctx, c.Quote)
	case c.Kind == entity.KindTimeline && c.Event != nil:
		return m.Timeline.Insert(ctx, c.Event)
	case c.Kind == entity.KindProfile && c.Profile != nil:
		return m.Profiles.Upsert(ctx, c.Profile)
	case c.Kind == entity.KindSettings && c.Settings != nil:
		return m.Profiles.UpsertSettings(ctx, c.Settings)
	case c.Kind == entity.KindLanding && c.Landing != nil:
		return m.Landing.Insert(ctx, c.Landing)
	}
	return fmt.Errorf("%w: %s %s", ErrBadChange, c.Kind, c.ID)
}
