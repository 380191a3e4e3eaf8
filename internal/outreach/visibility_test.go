package outreach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadflow/internal/entity"
)

func TestAvailabilityFor(t *testing.T) {
	newLead := entity.Lead{Status: entity.StatusNew}

	assert.Equal(t, Availability{}, AvailabilityFor(newLead, false))
	assert.Equal(t, Availability{ShowToggle: true}, AvailabilityFor(newLead, true))

	for _, st := range []entity.LeadStatus{entity.StatusSent, entity.StatusReplied, entity.StatusInterested, entity.StatusClient, entity.StatusArchived} {
		got := AvailabilityFor(entity.Lead{Status: st}, true)
		assert.Equal(t, Availability{TreatedAsMessaged: true}, got, st)
	}
}

func TestViewTrackerIsPerSession(t *testing.T) {
	tr := NewViewTracker()

	tr.MarkViewed("s1", "lead-1")

	assert.True(t, tr.Viewed("s1", "lead-1"))
	assert.False(t, tr.Viewed("s1", "lead-2"))
	assert.False(t, tr.Viewed("s2", "lead-1"))

	tr.EndSession("s1")
	assert.False(t, tr.Viewed("s1", "lead-1"))
}
