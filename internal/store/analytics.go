package store

import (
	"sort"
	"time"

	"github.com/xavierca1/leadflow/internal/entity"
)

// bumpDaily finds or creates the record for now's local date and adds to it.
func (s *Store) bumpDaily(now time.Time, leads, messages int) {
	today := now.Format(entity.DateLayout)
	for i := range s.state.DailyAnalytics {
		if s.state.DailyAnalytics[i].Date == today {
			s.state.DailyAnalytics[i].LeadsCollected += leads
			s.state.DailyAnalytics[i].MessagesSent += messages
			return
		}
	}
	s.state.DailyAnalytics = append(s.state.DailyAnalytics, entity.DailyAnalytics{
		Date:           today,
		LeadsCollected: leads,
		MessagesSent:   messages,
	})
}

// RecordLeadCollected and RecordMessageSent only touch the daily log; they
// are local bookkeeping and are not mirrored remotely.
func (s *Store) RecordLeadCollected() {
	s.mu.Lock()
	s.bumpDaily(s.now(), 1, 0)
	s.version++
	s.mu.Unlock()
}

func (s *Store) RecordMessageSent() {
	s.mu.Lock()
	s.bumpDaily(s.now(), 0, 1)
	s.version++
	s.mu.Unlock()
}

// DailyAnalytics returns the per-day log, newest date first.
func (s *Store) DailyAnalytics() []entity.DailyAnalytics {
	s.mu.RLock()
	out := append([]entity.DailyAnalytics{}, s.state.DailyAnalytics...)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// DailyRecord returns the record for date, zero-valued when absent.
func (s *Store) DailyRecord(date string) entity.DailyAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.state.DailyAnalytics {
		if d.Date == date {
			return d
		}
	}
	return entity.DailyAnalytics{Date: date}
}

// Stats scans the collections on every call. Day boundaries are local
// midnight of the store clock.
func (s *Store) Stats() entity.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	st := entity.DashboardStats{
		TotalLeads:    len(s.state.Leads),
		ClientCount:   len(s.state.Clients),
		PlatformShare: make(map[entity.PlatformType]float64, len(entity.Platforms)),
	}
	for _, l := range s.state.Leads {
		switch {
		case !l.CreatedAt.Before(today):
			st.TodayLeads++
		case !l.CreatedAt.Before(yesterday):
			st.YesterdayLeads++
		}
		if l.MessageDate != nil && !l.MessageDate.Before(today) {
			st.TodayMessages++
		}
		switch l.PlatformType {
		case entity.PlatformInstagram:
			st.InstagramCount++
		case entity.PlatformTwitter:
			st.TwitterCount++
		case entity.PlatformFacebook:
			st.FacebookCount++
		case entity.PlatformEmail:
			st.EmailCount++
		case entity.PlatformPhone:
			st.PhoneCount++
		case entity.PlatformOther:
			st.OtherCount++
		}
	}

	if st.YesterdayLeads > 0 {
		st.TodayChangePct = float64(st.TodayLeads-st.YesterdayLeads) / float64(st.YesterdayLeads) * 100
	}
	for _, p := range entity.Platforms {
		share := 0.0
		if st.TotalLeads > 0 {
			share = float64(st.PlatformCount(p)) / float64(st.TotalLeads) * 100
		}
		st.PlatformShare[p] = share
	}
	if st.TotalLeads > 0 {
		st.ConversionRate = float64(st.ClientCount) / float64(st.TotalLeads) * 100
	}
	return st
}
