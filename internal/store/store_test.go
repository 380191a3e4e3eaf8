package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadflow/internal/entity"
)

type recorder struct {
	mu      sync.Mutex
	changes []entity.Change
}

func (r *recorder) Notify(c entity.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) (*Store, *fakeClock, *recorder) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 14, 10, 30, 0, 0, time.Local)}
	rec := &recorder{}
	n := 0
	s := New(State{Settings: entity.Settings{DefaultCurrency: "USD"}},
		WithClock(clock.Now),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithNotifier(rec),
	)
	return s, clock, rec
}

func newLead(name string, p entity.PlatformType) entity.NewLead {
	return entity.NewLead{FirstName: name, PlatformType: p, Status: entity.StatusNew, Source: entity.SourceSocial}
}

// isClient must hold exactly for leads that have a client record.
func assertClientInvariant(t *testing.T, s *Store) {
	t.Helper()
	snap := s.Snapshot()
	clients := map[string]bool{}
	for _, c := range snap.Clients {
		clients[c.ID] = true
	}
	for _, l := range snap.Leads {
		assert.Equal(t, l.IsClient, clients[l.ID], "lead %s", l.ID)
	}
}

func TestAddLeadAssignsIdentityAndCounts(t *testing.T) {
	s, clock, rec := newTestStore(t)

	lead := s.AddLead(entity.NewLead{FirstName: "Ana"})

	assert.Equal(t, "id-1", lead.ID)
	assert.Equal(t, clock.Now(), lead.CreatedAt)
	assert.Equal(t, clock.Now(), lead.LastActionAt)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.SourceOther, lead.Source)
	assert.Equal(t, entity.PlatformOther, lead.PlatformType)
	assert.NotNil(t, lead.Tags)

	day := s.DailyRecord("2024-03-14")
	assert.Equal(t, 1, day.LeadsCollected)
	assert.Equal(t, 0, day.MessagesSent)

	require.Len(t, rec.changes, 1)
	assert.Equal(t, entity.KindLead, rec.changes[0].Kind)
	assert.Equal(t, entity.OpUpsert, rec.changes[0].Op)
	assert.Equal(t, uint64(1), rec.changes[0].Seq)
}

func TestAddLeadsDoesNotTouchDailyCounter(t *testing.T) {
	s, _, _ := newTestStore(t)

	leads := s.AddLeads([]entity.NewLead{newLead("a", entity.PlatformEmail), newLead("b", entity.PlatformPhone)})

	require.Len(t, leads, 2)
	assert.NotEqual(t, leads[0].ID, leads[1].ID)
	assert.Equal(t, leads[0].CreatedAt, leads[1].CreatedAt)
	assert.Equal(t, 0, s.DailyRecord("2024-03-14").LeadsCollected)
	assert.Equal(t, 2, s.Stats().TotalLeads)
}

func TestUpdateLead(t *testing.T) {
	s, clock, _ := newTestStore(t)
	lead := s.AddLead(newLead("Ana", entity.PlatformInstagram))
	clock.Advance(time.Hour)

	status := entity.StatusArchived
	notes := "cold"
	updated, ok := s.UpdateLead(lead.ID, entity.LeadUpdate{Status: &status, Notes: &notes})

	require.True(t, ok)
	assert.Equal(t, entity.StatusArchived, updated.Status)
	assert.Equal(t, "cold", updated.Notes)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, clock.Now(), updated.LastActionAt)
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := s.Snapshot()
		_, ok := s.UpdateLead("missing", entity.LeadUpdate{Status: &status})
		assert.False(t, ok)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		for _, st := range []entity.LeadStatus{entity.StatusNew, entity.StatusClient, entity.StatusReplied, entity.StatusNew} {
			st := st
			got, ok := s.UpdateLead(lead.ID, entity.LeadUpdate{Status: &st})
			require.True(t, ok)
			assert.Equal(t, st, got.Status)
		}
	})
}

func TestReturnedLeadsAreCopies(t *testing.T) {
	s, _, _ := newTestStore(t)
	lead := s.AddLead(entity.NewLead{FirstName: "Ana", Tags: []string{"VIP"}})

	lead.Tags[0] = "changed"
	got, ok := s.GetLead(lead.ID)

	require.True(t, ok)
	assert.Equal(t, []string{"VIP"}, got.Tags)
}

func TestMarkMessageSent(t *testing.T) {
	s, clock, _ := newTestStore(t)
	lead := s.AddLead(newLead("Ana", entity.PlatformInstagram))
	replied := entity.StatusReplied
	s.UpdateLead(lead.ID, entity.LeadUpdate{Status: &replied})

	clock.Advance(time.Minute)
	sent, ok := s.MarkMessageSent(lead.ID, true)

	require.True(t, ok)
	assert.True(t, sent.MessageSent)
	assert.Equal(t, entity.StatusSent, sent.Status)
	require.NotNil(t, sent.MessageDate)
	assert.Equal(t, clock.Now(), *sent.MessageDate)
	assert.Equal(t, 1, s.DailyRecord("2024-03-14").MessagesSent)

	interested := entity.StatusInterested
	s.UpdateLead(lead.ID, entity.LeadUpdate{Status: &interested})
	unsent, ok := s.MarkMessageSent(lead.ID, false)

	require.True(t, ok)
	assert.False(t, unsent.MessageSent)
	assert.Nil(t, unsent.MessageDate)
	assert.Equal(t, entity.StatusInterested, unsent.Status)
	assert.Equal(t, 1, s.DailyRecord("2024-03-14").MessagesSent)

	_, ok = s.MarkMessageSent("missing", true)
	assert.False(t, ok)
	assert.Equal(t, 1, s.DailyRecord("2024-03-14").MessagesSent)
}

func TestConvertToClient(t *testing.T) {
	s, clock, _ := newTestStore(t)
	lead := s.AddLead(entity.NewLead{FirstName: "Ana", Email: "ana@example.com", Tags: []string{"VIP"}})
	clock.Advance(time.Hour)

	client, ok := s.ConvertToClient(lead.ID)

	require.True(t, ok)
	assert.Equal(t, lead.ID, client.ID)
	assert.True(t, client.IsClient)
	assert.Equal(t, entity.StatusClient, client.Status)
	assert.Equal(t, "ana@example.com", client.Email)
	assert.Equal(t, []string{"VIP"}, client.Tags)
	assert.Empty(t, client.Services)
	assert.Empty(t, client.Quotes)
	assert.Empty(t, client.Timeline)
	assert.Equal(t, clock.Now(), client.ConvertedAt)

	stored, ok := s.GetLead(lead.ID)
	require.True(t, ok)
	assert.True(t, stored.IsClient)
	assert.Equal(t, entity.StatusClient, stored.Status)
	assertClientInvariant(t, s)

	t.Run("second conversion returns the same record", func(t *testing.T) {
		again, ok := s.ConvertToClient(lead.ID)
		require.True(t, ok)
		assert.Equal(t, client.ConvertedAt, again.ConvertedAt)
		assert.Len(t, s.ListClients(), 1)
	})

	t.Run("unknown lead", func(t *testing.T) {
		_, ok := s.ConvertToClient("missing")
		assert.False(t, ok)
	})
}

func TestDeleteClientRevertsLead(t *testing.T) {
	s, _, _ := newTestStore(t)
	lead := s.AddLead(newLead("Ana", entity.PlatformEmail))
	s.ConvertToClient(lead.ID)
	s.AddQuote(entity.NewQuote{ClientID: lead.ID, Service: "Editing", Amount: 100})
	s.AddTimelineEvent(entity.NewTimelineEvent{ClientID: lead.ID, Type: entity.EventNote, Content: "hi"})

	require.True(t, s.DeleteClient(lead.ID))

	got, ok := s.GetLead(lead.ID)
	require.True(t, ok)
	assert.False(t, got.IsClient)
	assert.Equal(t, entity.StatusInterested, got.Status)
	assert.Empty(t, s.ListClients())
	assert.Empty(t, s.ListQuotes(lead.ID))
	assert.Empty(t, s.ListTimeline(lead.ID))
	assertClientInvariant(t, s)

	assert.False(t, s.DeleteClient(lead.ID))
}

func TestDeleteLeadCascadesToClient(t *testing.T) {
	s, _, rec := newTestStore(t)
	lead := s.AddLead(newLead("Ana", entity.PlatformEmail))
	other := s.AddLead(newLead("Bia", entity.PlatformEmail))
	s.ConvertToClient(lead.ID)
	q := s.AddQuote(entity.NewQuote{ClientID: lead.ID, Service: "Editing"})
	keep := s.AddQuote(entity.NewQuote{ClientID: other.ID, Service: "Editing"})
	rec.changes = nil

	require.True(t, s.DeleteLead(lead.ID))

	_, ok := s.GetLead(lead.ID)
	assert.False(t, ok)
	_, ok = s.GetClient(lead.ID)
	assert.False(t, ok)
	_, ok = s.GetQuote(q.ID)
	assert.False(t, ok)
	_, ok = s.GetQuote(keep.ID)
	assert.True(t, ok)
	assertClientInvariant(t, s)

	var kinds []entity.ChangeKind
	for _, c := range rec.changes {
		assert.Equal(t, entity.OpDelete, c.Op)
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []entity.ChangeKind{entity.KindLead, entity.KindClient, entity.KindQuote}, kinds)

	assert.False(t, s.DeleteLead(lead.ID))
}

func TestDeleteLeads(t *testing.T) {
	s, _, _ := newTestStore(t)
	a := s.AddLead(newLead("a", entity.PlatformEmail))
	b := s.AddLead(newLead("b", entity.PlatformEmail))
	c := s.AddLead(newLead("c", entity.PlatformEmail))

	removed := s.DeleteLeads([]string{a.ID, c.ID, "missing"})

	assert.Equal(t, 2, removed)
	leads := s.ListLeads(entity.LeadFilter{})
	require.Len(t, leads, 1)
	assert.Equal(t, b.ID, leads[0].ID)
}

func TestListLeadsHidesClientsByDefault(t *testing.T) {
	s, _, _ := newTestStore(t)
	a := s.AddLead(newLead("a", entity.PlatformInstagram))
	s.AddLead(newLead("b", entity.PlatformEmail))
	s.AddLead(newLead("c", entity.PlatformInstagram))
	s.ConvertToClient(a.ID)

	assert.Len(t, s.ListLeads(entity.LeadFilter{}), 2)
	assert.Len(t, s.ListLeads(entity.LeadFilter{IncludeClients: true}), 3)
	assert.Len(t, s.ListLeads(entity.LeadFilter{Platform: entity.PlatformInstagram}), 1)
}

func TestClientServicesAndUpdate(t *testing.T) {
	s, _, _ := newTestStore(t)
	lead := s.AddLead(newLead("Ana", entity.PlatformEmail))
	s.ConvertToClient(lead.ID)

	c, ok := s.AddClientService(lead.ID, "Video Editing")
	require.True(t, ok)
	assert.Equal(t, []string{"Video Editing"}, c.Services)

	notes := "pays on time"
	c, ok = s.UpdateClient(lead.ID, entity.ClientUpdate{LeadUpdate: entity.LeadUpdate{Notes: &notes}})
	require.True(t, ok)
	assert.Equal(t, "pays on time", c.Notes)

	l, _ := s.GetLead(lead.ID)
	assert.Empty(t, l.Notes)

	_, ok = s.AddClientService("missing", "x")
	assert.False(t, ok)
}

func TestQuotes(t *testing.T) {
	s, _, _ := newTestStore(t)

	q := s.AddQuote(entity.NewQuote{ClientID: "c1", Service: "Editing", Amount: -5})
	assert.Equal(t, entity.QuoteDraft, q.Status)
	assert.Equal(t, "USD", q.Currency)
	assert.Equal(t, -5.0, q.Amount)

	accepted := entity.QuoteAccepted
	updated, ok := s.UpdateQuote(q.ID, entity.QuoteUpdate{Status: &accepted})
	require.True(t, ok)
	assert.Equal(t, entity.QuoteAccepted, updated.Status)

	assert.Len(t, s.ListQuotes("c1"), 1)
	assert.Empty(t, s.ListQuotes("c2"))
	assert.True(t, s.DeleteQuote(q.ID))
	assert.False(t, s.DeleteQuote(q.ID))
}

func TestMessageProfilesAndSettings(t *testing.T) {
	s, _, _ := newTestStore(t)

	p := s.AddMessageProfile(entity.MessageProfile{Name: "Cold", Template: "Hi {name}"})
	assert.NotEmpty(t, p.ID)

	tmpl := "Hello {name}"
	updated, ok := s.UpdateMessageProfile(p.ID, entity.MessageProfileUpdate{Template: &tmpl})
	require.True(t, ok)
	assert.Equal(t, "Hello {name}", updated.Template)
	assert.Equal(t, "Cold", updated.Name)

	assert.True(t, s.DeleteMessageProfile(p.ID))
	_, ok = s.GetMessageProfile(p.ID)
	assert.False(t, ok)

	name := "Acme"
	st := s.UpdateSettings(entity.SettingsUpdate{CompanyName: &name})
	assert.Equal(t, "Acme", st.CompanyName)
	assert.Equal(t, "USD", st.DefaultCurrency)
}

func TestLandingSubmissionCreatesInboundLead(t *testing.T) {
	s, _, _ := newTestStore(t)

	sub, lead := s.AddLandingSubmission(entity.NewLandingSubmission{
		Name:            "Maria da Silva",
		Email:           "maria@example.com",
		ServiceInterest: "Video Editing",
	})

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Maria", lead.FirstName)
	assert.Equal(t, "da Silva", lead.LastName)
	assert.Equal(t, entity.SourceInbound, lead.Source)
	assert.Equal(t, entity.PlatformEmail, lead.PlatformType)
	assert.Equal(t, []string{"Inbound", "Video Editing"}, lead.Tags)
	assert.Equal(t, "Interested in: Video Editing", lead.Notes)
	assert.Equal(t, 1, s.DailyRecord("2024-03-14").LeadsCollected)
	assert.Len(t, s.ListLandingSubmissions(), 1)
}

func TestLoginStub(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	u := s.Login("sam@example.com")
	assert.Equal(t, "sam", u.Name)

	cur, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u, cur)

	s.Logout()
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}

func TestStatsScenario(t *testing.T) {
	s, clock, _ := newTestStore(t)

	clock.Advance(-24 * time.Hour)
	s.AddLead(newLead("old", entity.PlatformTwitter))
	clock.Advance(24 * time.Hour)

	a := s.AddLead(newLead("a", entity.PlatformInstagram))
	s.AddLead(newLead("b", entity.PlatformInstagram))
	s.AddLead(newLead("c", entity.PlatformEmail))
	s.MarkMessageSent(a.ID, true)
	s.ConvertToClient(a.ID)

	st := s.Stats()
	assert.Equal(t, 4, st.TotalLeads)
	assert.Equal(t, 3, st.TodayLeads)
	assert.Equal(t, 1, st.YesterdayLeads)
	assert.Equal(t, 1, st.TodayMessages)
	assert.Equal(t, 2, st.InstagramCount)
	assert.Equal(t, 1, st.TwitterCount)
	assert.Equal(t, 1, st.EmailCount)
	assert.Equal(t, 1, st.ClientCount)
	assert.InDelta(t, 200.0, st.TodayChangePct, 0.001)
	assert.InDelta(t, 25.0, st.ConversionRate, 0.001)
	assert.InDelta(t, 50.0, st.PlatformShare[entity.PlatformInstagram], 0.001)
	assert.InDelta(t, 0.0, st.PlatformShare[entity.PlatformPhone], 0.001)

	day := s.DailyRecord("2024-03-14")
	assert.Equal(t, 3, day.LeadsCollected)
	assert.Equal(t, 1, day.MessagesSent)

	daily := s.DailyAnalytics()
	require.Len(t, daily, 2)
	assert.Equal(t, "2024-03-14", daily[0].Date)
	assert.Equal(t, "2024-03-13", daily[1].Date)
}

func TestStatsEmptyStore(t *testing.T) {
	s, _, _ := newTestStore(t)

	st := s.Stats()

	assert.Zero(t, st.TotalLeads)
	assert.Zero(t, st.TodayChangePct)
	assert.Zero(t, st.ConversionRate)
	assert.Len(t, st.PlatformShare, len(entity.Platforms))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s, _, rec := newTestStore(t)
	lead := s.AddLead(entity.NewLead{FirstName: "Ana", Tags: []string{"VIP"}})
	s.MarkMessageSent(lead.ID, true)
	s.ConvertToClient(lead.ID)
	s.AddQuote(entity.NewQuote{ClientID: lead.ID, Service: "Editing", Amount: 250})
	s.Login("ana@example.com")
	snap := s.Snapshot()
	emitted := len(rec.changes)

	other, _, _ := newTestStore(t)
	other.Restore(snap)

	if diff := cmp.Diff(snap, other.Snapshot()); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, rec.changes, emitted)
	assert.Equal(t, uint64(1), other.Version())
}

func TestSnapshotIsIsolated(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddLead(entity.NewLead{FirstName: "Ana", Tags: []string{"VIP"}})

	snap := s.Snapshot()
	snap.Leads[0].Tags[0] = "changed"
	snap.Leads = append(snap.Leads, entity.Lead{ID: "ghost"})

	again := s.Snapshot()
	assert.Len(t, again.Leads, 1)
	assert.Equal(t, []string{"VIP"}, again.Leads[0].Tags)
}

// stallingNotifier holds up delivery of one change so a concurrent mutation
// gets a chance to overtake it.
type stallingNotifier struct {
	recorder
	stallSeq uint64
	reached  chan struct{}
}

func (n *stallingNotifier) Notify(c entity.Change) {
	if c.Seq == n.stallSeq {
		close(n.reached)
		time.Sleep(50 * time.Millisecond)
	}
	n.recorder.Notify(c)
}

func TestNotifierSeesUpdateBeforeConcurrentDelete(t *testing.T) {
	n := &stallingNotifier{stallSeq: 2, reached: make(chan struct{})}
	s := New(State{}, WithNotifier(n))
	lead := s.AddLead(newLead("ana", entity.PlatformEmail))

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-n.reached
		s.DeleteLead(lead.ID)
	}()
	name := "Ana Maria"
	s.UpdateLead(lead.ID, entity.LeadUpdate{FirstName: &name})
	<-done

	n.mu.Lock()
	defer n.mu.Unlock()
	require.Len(t, n.changes, 3)
	for i, c := range n.changes {
		assert.Equal(t, uint64(i+1), c.Seq, "changes must reach the notifier in Seq order")
	}
	last := n.changes[2]
	assert.Equal(t, entity.OpDelete, last.Op)
	assert.Equal(t, lead.ID, last.ID)
}

func TestLandingSubmissionIsOneChangeBatch(t *testing.T) {
	s, _, rec := newTestStore(t)

	sub, lead := s.AddLandingSubmission(entity.NewLandingSubmission{
		Name: "Maria", Email: "maria@example.com", ServiceInterest: "Consulting",
	})

	require.Len(t, rec.changes, 2)
	assert.Equal(t, entity.KindLanding, rec.changes[0].Kind)
	assert.Equal(t, sub.ID, rec.changes[0].ID)
	assert.Equal(t, entity.KindLead, rec.changes[1].Kind)
	assert.Equal(t, lead.ID, rec.changes[1].ID)
	assert.Equal(t, rec.changes[0].OccurredAt, rec.changes[1].OccurredAt)
	assert.Equal(t, uint64(1), s.Version())

	snap := s.Snapshot()
	assert.Len(t, snap.LandingSubmissions, 1)
	assert.Len(t, snap.Leads, 1)
}

func TestConcurrentMutations(t *testing.T) {
	s := New(State{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := s.AddLead(newLead(fmt.Sprintf("lead-%d", i), entity.PlatformEmail))
			s.MarkMessageSent(l.ID, true)
			_ = s.Stats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, s.Stats().TotalLeads)
	today := time.Now().Format(entity.DateLayout)
	assert.Equal(t, 20, s.DailyRecord(today).MessagesSent)
}
