package store

import (
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
)

func (s *Store) leadIndex(id string) int {
	for i := range s.state.Leads {
		if s.state.Leads[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) buildLead(in entity.NewLead, now time.Time) entity.Lead {
	lead := entity.Lead{
		ID:           s.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PlatformType: in.PlatformType,
		ProfileLink:  in.ProfileLink,
		Email:        in.Email,
		Phone:        in.Phone,
		Status:       in.Status,
		Tags:         cloneStrings(in.Tags),
		Notes:        in.Notes,
		Source:       in.Source,
		Bio:          in.Bio,
		CreatedAt:    now,
		LastActionAt: now,
	}
	if lead.PlatformType == "" {
		lead.PlatformType = entity.PlatformOther
	}
	if lead.Status == "" {
		lead.Status = entity.StatusNew
	}
	if lead.Source == "" {
		lead.Source = entity.SourceOther
	}
	return lead
}

func leadChange(l entity.Lead) entity.Change {
	c := cloneLead(l)
	return entity.Change{Kind: entity.KindLead, Op: entity.OpUpsert, ID: l.ID, Lead: &c}
}

// AddLead appends one lead and counts it as collected today.
func (s *Store) AddLead(in entity.NewLead) entity.Lead {
	var lead entity.Lead
	s.mutate(func(now time.Time) []entity.Change {
		lead = s.buildLead(in, now)
		s.state.Leads = append(s.state.Leads, lead)
		s.bumpDaily(now, 1, 0)
		return []entity.Change{leadChange(lead)}
	})
	return cloneLead(lead)
}

// AddLeads appends a batch sharing one timestamp. Batches do not touch the
// daily leads-collected counter.
func (s *Store) AddLeads(in []entity.NewLead) []entity.Lead {
	out := make([]entity.Lead, 0, len(in))
	s.mutate(func(now time.Time) []entity.Change {
		changes := make([]entity.Change, 0, len(in))
		for _, n := range in {
			lead := s.buildLead(n, now)
			s.state.Leads = append(s.state.Leads, lead)
			out = append(out, cloneLead(lead))
			changes = append(changes, leadChange(lead))
		}
		return changes
	})
	return out
}

func (s *Store) GetLead(id string) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.leadIndex(id)
	if i < 0 {
		return entity.Lead{}, false
	}
	return cloneLead(s.state.Leads[i]), true
}

func (s *Store) ListLeads(f entity.LeadFilter) []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Lead{}
	for _, l := range s.state.Leads {
		if f.Match(l) {
			out = append(out, cloneLead(l))
		}
	}
	return out
}

// UpdateLead merges u into the lead and refreshes lastActionAt. An unknown
// id is a no-op reported through the bool.
func (s *Store) UpdateLead(id string, u entity.LeadUpdate) (entity.Lead, bool) {
	var (
		lead  entity.Lead
		found bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		i := s.leadIndex(id)
		if i < 0 {
			return nil
		}
		found = true
		u.Apply(&s.state.Leads[i])
		s.state.Leads[i].LastActionAt = now
		lead = cloneLead(s.state.Leads[i])
		return []entity.Change{leadChange(lead)}
	})
	return lead, found
}

// DeleteLead removes the lead. A lead that was converted takes its client
// record, quotes and timeline with it so no client outlives its lead.
func (s *Store) DeleteLead(id string) bool {
	var found bool
	s.mutate(func(now time.Time) []entity.Change {
		changes, ok := s.deleteLeadLocked(id)
		found = ok
		return changes
	})
	return found
}

// DeleteLeads is the bulk form of DeleteLead; it returns how many were removed.
func (s *Store) DeleteLeads(ids []string) int {
	removed := 0
	s.mutate(func(now time.Time) []entity.Change {
		var changes []entity.Change
		for _, id := range ids {
			c, ok := s.deleteLeadLocked(id)
			if ok {
				removed++
				changes = append(changes, c...)
			}
		}
		return changes
	})
	return removed
}

func (s *Store) deleteLeadLocked(id string) ([]entity.Change, bool) {
	i := s.leadIndex(id)
	if i < 0 {
		return nil, false
	}
	s.state.Leads = append(s.state.Leads[:i], s.state.Leads[i+1:]...)
	changes := []entity.Change{{Kind: entity.KindLead, Op: entity.OpDelete, ID: id}}
	if ci := s.clientIndex(id); ci >= 0 {
		changes = append(changes, s.removeClientLocked(ci)...)
	}
	return changes, true
}

// MarkMessageSent toggles the outreach flag. Marking as sent forces status
// Sent and counts a message for today; unmarking keeps the status.
func (s *Store) MarkMessageSent(id string, sent bool) (entity.Lead, bool) {
	var (
		lead  entity.Lead
		found bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		i := s.leadIndex(id)
		if i < 0 {
			return nil
		}
		found = true
		l := &s.state.Leads[i]
		l.MessageSent = sent
		l.LastActionAt = now
		if sent {
			at := now
			l.MessageDate = &at
			l.Status = entity.StatusSent
			s.bumpDaily(now, 0, 1)
		} else {
			l.MessageDate = nil
		}
		lead = cloneLead(*l)
		return []entity.Change{leadChange(lead)}
	})
	return lead, found
}
