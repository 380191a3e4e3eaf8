package store

import (
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
)

func (s *Store) clientIndex(id string) int {
	for i := range s.state.Clients {
		if s.state.Clients[i].ID == id {
			return i
		}
	}
	return -1
}

func clientChange(c entity.Client) entity.Change {
	cc := cloneClient(c)
	return entity.Change{Kind: entity.KindClient, Op: entity.OpUpsert, ID: c.ID, Client: &cc}
}

// removeClientLocked drops the client at ci together with the quotes and
// timeline events it owns.
func (s *Store) removeClientLocked(ci int) []entity.Change {
	id := s.state.Clients[ci].ID
	s.state.Clients = append(s.state.Clients[:ci], s.state.Clients[ci+1:]...)
	changes := []entity.Change{{Kind: entity.KindClient, Op: entity.OpDelete, ID: id}}

	quotes := s.state.Quotes[:0]
	for _, q := range s.state.Quotes {
		if q.ClientID == id {
			changes = append(changes, entity.Change{Kind: entity.KindQuote, Op: entity.OpDelete, ID: q.ID})
			continue
		}
		quotes = append(quotes, q)
	}
	s.state.Quotes = quotes

	events := s.state.TimelineEvents[:0]
	for _, e := range s.state.TimelineEvents {
		if e.ClientID == id {
			changes = append(changes, entity.Change{Kind: entity.KindTimeline, Op: entity.OpDelete, ID: e.ID})
			continue
		}
		events = append(events, e)
	}
	s.state.TimelineEvents = events
	return changes
}

// ConvertToClient promotes a lead. The client keeps the lead's id, and the
// lead stays in place flagged as a client. Converting an already converted
// lead returns the existing client.
func (s *Store) ConvertToClient(leadID string) (entity.Client, bool) {
	var (
		client entity.Client
		found  bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		i := s.leadIndex(leadID)
		if i < 0 {
			return nil
		}
		found = true
		if ci := s.clientIndex(leadID); ci >= 0 {
			client = cloneClient(s.state.Clients[ci])
			return nil
		}

		lead := &s.state.Leads[i]
		lead.IsClient = true
		lead.Status = entity.StatusClient

		client = entity.Client{
			Lead:        cloneLead(*lead),
			Services:    []string{},
			Quotes:      []entity.Quote{},
			Timeline:    []entity.TimelineEvent{},
			ConvertedAt: now,
		}
		s.state.Clients = append(s.state.Clients, client)
		return []entity.Change{leadChange(*lead), clientChange(client)}
	})
	return cloneClient(client), found
}

// DeleteClient removes the client and hands the lead back to the pipeline
// as Interested.
func (s *Store) DeleteClient(id string) bool {
	var found bool
	s.mutate(func(now time.Time) []entity.Change {
		ci := s.clientIndex(id)
		if ci < 0 {
			return nil
		}
		found = true
		changes := s.removeClientLocked(ci)
		if li := s.leadIndex(id); li >= 0 {
			s.state.Leads[li].IsClient = false
			s.state.Leads[li].Status = entity.StatusInterested
			changes = append(changes, leadChange(s.state.Leads[li]))
		}
		return changes
	})
	return found
}

// attachLocked fills the read-only quotes/timeline views of a client copy.
func (s *Store) attachLocked(c entity.Client) entity.Client {
	c = cloneClient(c)
	c.Quotes = []entity.Quote{}
	c.Timeline = []entity.TimelineEvent{}
	for _, q := range s.state.Quotes {
		if q.ClientID == c.ID {
			c.Quotes = append(c.Quotes, q)
		}
	}
	for _, e := range s.state.TimelineEvents {
		if e.ClientID == c.ID {
			c.Timeline = append(c.Timeline, e)
		}
	}
	return c
}

func (s *Store) GetClient(id string) (entity.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci := s.clientIndex(id)
	if ci < 0 {
		return entity.Client{}, false
	}
	return s.attachLocked(s.state.Clients[ci]), true
}

func (s *Store) ListClients() []entity.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Client, 0, len(s.state.Clients))
	for _, c := range s.state.Clients {
		out = append(out, s.attachLocked(c))
	}
	return out
}

// UpdateClient patches the client record only; the paired lead is untouched.
func (s *Store) UpdateClient(id string, u entity.ClientUpdate) (entity.Client, bool) {
	var (
		client entity.Client
		found  bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		ci := s.clientIndex(id)
		if ci < 0 {
			return nil
		}
		found = true
		u.Apply(&s.state.Clients[ci])
		client = s.attachLocked(s.state.Clients[ci])
		return []entity.Change{clientChange(s.state.Clients[ci])}
	})
	return client, found
}

func (s *Store) AddClientService(id, service string) (entity.Client, bool) {
	var (
		client entity.Client
		found  bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		ci := s.clientIndex(id)
		if ci < 0 {
			return nil
		}
		found = true
		s.state.Clients[ci].Services = append(s.state.Clients[ci].Services, service)
		client = s.attachLocked(s.state.Clients[ci])
		return []entity.Change{clientChange(s.state.Clients[ci])}
	})
	return client, found
}
