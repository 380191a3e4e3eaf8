package entity

import "time"

type TimelineEventType string

const (
	EventNote         TimelineEventType = "note"
	EventMessage      TimelineEventType = "message"
	EventQuote        TimelineEventType = "quote"
	EventStatusChange TimelineEventType = "status_change"
	EventCall         TimelineEventType = "call"
)

func (t TimelineEventType) Valid() bool {
	switch t {
	case EventNote, EventMessage, EventQuote, EventStatusChange, EventCall:
		return true
	}
	return false
}

// TimelineEvent is append-only; there is no update operation for it.
type TimelineEvent struct {
	ID        string            `json:"id"`
	ClientID  string            `json:"clientId"`
	Type      TimelineEventType `json:"type"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
}

type NewTimelineEvent struct {
	ClientID string            `json:"clientId"`
	Type     TimelineEventType `json:"type"`
	Content  string            `json:"content"`
}
