package outreach

import (
	"sync"

	"github.com/xavierca1/leadflow/internal/entity"
)

// ViewTracker remembers which leads had their profile opened during a
// session. It is never persisted.
type ViewTracker struct {
	mu     sync.Mutex
	viewed map[string]map[string]struct{}
}

func NewViewTracker() *ViewTracker {
	return &ViewTracker{viewed: make(map[string]map[string]struct{})}
}

func (t *ViewTracker) MarkViewed(session, leadID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	leads, ok := t.viewed[session]
	if !ok {
		leads = make(map[string]struct{})
		t.viewed[session] = leads
	}
	leads[leadID] = struct{}{}
}

func (t *ViewTracker) Viewed(session, leadID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.viewed[session][leadID]
	return ok
}

// EndSession forgets every view recorded for session.
func (t *ViewTracker) EndSession(session string) {
	t.mu.Lock()
	delete(t.viewed, session)
	t.mu.Unlock()
}

// Availability says how the sent/not-sent action is offered for a lead.
type Availability struct {
	ShowToggle        bool `json:"showToggle"`
	TreatedAsMessaged bool `json:"treatedAsMessaged"`
}

// AvailabilityFor applies the outreach gating: the toggle appears only for
// New leads whose profile was viewed; any other status counts as messaged.
func AvailabilityFor(l entity.Lead, viewed bool) Availability {
	if l.Status != entity.StatusNew {
		return Availability{TreatedAsMessaged: true}
	}
	return Availability{ShowToggle: viewed}
}
