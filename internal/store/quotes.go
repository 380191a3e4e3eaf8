package store

import (
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
)

func quoteChange(q entity.Quote) entity.Change {
	return entity.Change{Kind: entity.KindQuote, Op: entity.OpUpsert, ID: q.ID, Quote: &q}
}

// AddQuote stores the quote as given; ownership and amount are the caller's
// concern.
func (s *Store) AddQuote(in entity.NewQuote) entity.Quote {
	var q entity.Quote
	s.mutate(func(now time.Time) []entity.Change {
		q = entity.Quote{
			ID:          s.newID(),
			ClientID:    in.ClientID,
			Service:     in.Service,
			Amount:      in.Amount,
			Currency:    in.Currency,
			Description: in.Description,
			Status:      in.Status,
			CreatedAt:   now,
			ValidUntil:  in.ValidUntil,
		}
		if q.Status == "" {
			q.Status = entity.QuoteDraft
		}
		if q.Currency == "" {
			q.Currency = s.state.Settings.DefaultCurrency
		}
		s.state.Quotes = append(s.state.Quotes, q)
		return []entity.Change{quoteChange(q)}
	})
	return q
}

func (s *Store) UpdateQuote(id string, u entity.QuoteUpdate) (entity.Quote, bool) {
	var (
		q     entity.Quote
		found bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		for i := range s.state.Quotes {
			if s.state.Quotes[i].ID == id {
				found = true
				u.Apply(&s.state.Quotes[i])
				q = s.state.Quotes[i]
				return []entity.Change{quoteChange(q)}
			}
		}
		return nil
	})
	return q, found
}

func (s *Store) DeleteQuote(id string) bool {
	var found bool
	s.mutate(func(now time.Time) []entity.Change {
		for i := range s.state.Quotes {
			if s.state.Quotes[i].ID == id {
				found = true
				s.state.Quotes = append(s.state.Quotes[:i], s.state.Quotes[i+1:]...)
				return []entity.Change{{Kind: entity.KindQuote, Op: entity.OpDelete, ID: id}}
			}
		}
		return nil
	})
	return found
}

func (s *Store) GetQuote(id string) (entity.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.state.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entity.Quote{}, false
}

// ListQuotes returns every quote, or only clientID's when it is set.
func (s *Store) ListQuotes(clientID string) []entity.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Quote{}
	for _, q := range s.state.Quotes {
		if clientID == "" || q.ClientID == clientID {
			out = append(out, q)
		}
	}
	return out
}

// AddTimelineEvent appends to the client's activity log.
func (s *Store) AddTimelineEvent(in entity.NewTimelineEvent) entity.TimelineEvent {
	var e entity.TimelineEvent
	s.mutate(func(now time.Time) []entity.Change {
		e = entity.TimelineEvent{
			ID:        s.newID(),
			ClientID:  in.ClientID,
			Type:      in.Type,
			Content:   in.Content,
			CreatedAt: now,
		}
		s.state.TimelineEvents = append(s.state.TimelineEvents, e)
		ev := e
		return []entity.Change{{Kind: entity.KindTimeline, Op: entity.OpUpsert, ID: e.ID, Event: &ev}}
	})
	return e
}

func (s *Store) ListTimeline(clientID string) []entity.TimelineEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.TimelineEvent{}
	for _, e := range s.state.TimelineEvents {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out
}
