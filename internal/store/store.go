// Package store holds the single application-state object. Every collection
// lives here and leaves only as a copy.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

// StorageKey names the persisted snapshot.
const StorageKey = "leadflow-storage"

// State is the persisted layout, round-tripped verbatim by Snapshot/Restore.
type State struct {
	User               *entity.User               `json:"user"`
	IsAuthenticated    bool                       `json:"isAuthenticated"`
	Leads              []entity.Lead              `json:"leads"`
	Clients            []entity.Client            `json:"clients"`
	Quotes             []entity.Quote             `json:"quotes"`
	TimelineEvents     []entity.TimelineEvent     `json:"timelineEvents"`
	MessageProfiles    []entity.MessageProfile    `json:"aiProfiles"`
	Settings           entity.Settings            `json:"settings"`
	LandingSubmissions []entity.LandingSubmission `json:"landingSubmissions"`
	DailyAnalytics     []entity.DailyAnalytics    `json:"dailyAnalytics"`
}

// Notifier receives committed changes while the store lock is held. Notify
// must not block and must not call back into the store.
type Notifier interface {
	Notify(change entity.Change)
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

type Store struct {
	mu      sync.RWMutex
	state   State
	version uint64
	seq     uint64

	now      func() time.Time
	newID    func() string
	notifier Notifier
	log      *zap.Logger
}

// New builds a store whose initial collections are copied from seed.
func New(seed State, opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = cloneState(seed)
	normalize(&s.state)
	return s
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Restore replaces the whole state. No change events are emitted: a restore
// is a load, not a mutation.
func (s *Store) Restore(st State) {
	s.mu.Lock()
	s.state = cloneState(st)
	normalize(&s.state)
	s.version++
	s.mu.Unlock()
	s.log.Info("state restored",
		zap.Int("leads", len(st.Leads)),
		zap.Int("clients", len(st.Clients)))
}

// Version increases on every mutation; the snapshot worker compares it.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// mutate runs fn under the write lock, stamps the changes it returns and
// hands them to the notifier before releasing the lock, so the notifier
// sees changes in Seq order.
func (s *Store) mutate(fn func(now time.Time) []entity.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changes := fn(now)
	if len(changes) > 0 {
		s.version++
	}
	for i := range changes {
		s.seq++
		changes[i].Seq = s.seq
		changes[i].OccurredAt = now
	}

	if s.notifier == nil {
		return
	}
	for _, c := range changes {
		s.notifier.Notify(c)
	}
}

// Login is a stub: any e-mail is accepted and becomes the session user.
func (s *Store) Login(email string) entity.User {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	user := entity.User{ID: s.newID(), Email: email, Name: name}
	s.mu.Lock()
	s.state.User = &user
	s.state.IsAuthenticated = true
	s.version++
	s.mu.Unlock()
	return user
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.version++
	s.mu.Unlock()
}

func (s *Store) CurrentUser() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.IsAuthenticated || s.state.User == nil {
		return entity.User{}, false
	}
	return *s.state.User, true
}

func normalize(st *State) {
	if st.Leads == nil {
		st.Leads = []entity.Lead{}
	}
	if st.Clients == nil {
		st.Clients = []entity.Client{}
	}
	if st.Quotes == nil {
		st.Quotes = []entity.Quote{}
	}
	if st.TimelineEvents == nil {
		st.TimelineEvents = []entity.TimelineEvent{}
	}
	if st.MessageProfiles == nil {
		st.MessageProfiles = []entity.MessageProfile{}
	}
	if st.LandingSubmissions == nil {
		st.LandingSubmissions = []entity.LandingSubmission{}
	}
	if st.DailyAnalytics == nil {
		st.DailyAnalytics = []entity.DailyAnalytics{}
	}
	if st.Settings.CustomTags == nil {
		st.Settings.CustomTags = []string{}
	}
	if st.Settings.Services == nil {
		st.Settings.Services = []string{}
	}
}
