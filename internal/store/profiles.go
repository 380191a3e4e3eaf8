package store

import (
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
)

func profileChange(p entity.MessageProfile) entity.Change {
	return entity.Change{Kind: entity.KindProfile, Op: entity.OpUpsert, ID: p.ID, Profile: &p}
}

func (s *Store) AddMessageProfile(p entity.MessageProfile) entity.MessageProfile {
	s.mutate(func(now time.Time) []entity.Change {
		p.ID = s.newID()
		s.state.MessageProfiles = append(s.state.MessageProfiles, p)
		return []entity.Change{profileChange(p)}
	})
	return p
}

func (s *Store) UpdateMessageProfile(id string, u entity.MessageProfileUpdate) (entity.MessageProfile, bool) {
	var (
		p     entity.MessageProfile
		found bool
	)
	s.mutate(func(now time.Time) []entity.Change {
		for i := range s.state.MessageProfiles {
			if s.state.MessageProfiles[i].ID == id {
				found = true
				u.Apply(&s.state.MessageProfiles[i])
				p = s.state.MessageProfiles[i]
				return []entity.Change{profileChange(p)}
			}
		}
		return nil
	})
	return p, found
}

func (s *Store) DeleteMessageProfile(id string) bool {
	var found bool
	s.mutate(func(now time.Time) []entity.Change {
		for i := range s.state.MessageProfiles {
			if s.state.MessageProfiles[i].ID == id {
				found = true
				s.state.MessageProfiles = append(s.state.MessageProfiles[:i], s.state.MessageProfiles[i+1:]...)
				return []entity.Change{{Kind: entity.KindProfile, Op: entity.OpDelete, ID: id}}
			}
		}
		return nil
	})
	return found
}

func (s *Store) GetMessageProfile(id string) (entity.MessageProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.MessageProfiles {
		if p.ID == id {
			return p, true
		}
	}
	return entity.MessageProfile{}, false
}

func (s *Store) ListMessageProfiles() []entity.MessageProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.MessageProfile{}, s.state.MessageProfiles...)
}

func (s *Store) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.state.Settings)
}

func (s *Store) UpdateSettings(u entity.SettingsUpdate) entity.Settings {
	var st entity.Settings
	s.mutate(func(now time.Time) []entity.Change {
		u.Apply(&s.state.Settings)
		st = cloneSettings(s.state.Settings)
		changed := cloneSettings(st)
		return []entity.Change{{Kind: entity.KindSettings, Op: entity.OpUpsert, Settings: &changed}}
	})
	return st
}

// AddLandingSubmission stores the public form entry together with the
// matching inbound lead in one mutation; the lead counts as collected today.
func (s *Store) AddLandingSubmission(in entity.NewLandingSubmission) (entity.LandingSubmission, entity.Lead) {
	var (
		sub  entity.LandingSubmission
		lead entity.Lead
	)
	s.mutate(func(now time.Time) []entity.Change {
		sub = entity.LandingSubmission{
			ID:              s.newID(),
			Name:            in.Name,
			Email:           in.Email,
			Phone:           in.Phone,
			ServiceInterest: in.ServiceInterest,
			CreatedAt:       now,
		}
		s.state.LandingSubmissions = append(s.state.LandingSubmissions, sub)

		lead = s.buildLead(in.Lead(), now)
		s.state.Leads = append(s.state.Leads, lead)
		s.bumpDaily(now, 1, 0)

		ls := sub
		return []entity.Change{
			{Kind: entity.KindLanding, Op: entity.OpUpsert, ID: sub.ID, Landing: &ls},
			leadChange(lead),
		}
	})
	return sub, cloneLead(lead)
}

func (s *Store) ListLandingSubmissions() []entity.LandingSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.LandingSubmission{}, s.state.LandingSubmissions...)
}
