package entity

import "time"

type ChangeKind string

const (
	KindLead     ChangeKind = "lead"
	KindClient   ChangeKind = "client"
	KindQuote    ChangeKind = "quote"
	KindTimeline ChangeKind = "timeline_event"
	KindProfile  ChangeKind = "ai_profile"
	KindSettings ChangeKind = "settings"
	KindLanding  ChangeKind = "landing_submission"
)

type ChangeOp string

const (
	OpUpsert ChangeOp = "upsert"
	OpDelete ChangeOp = "delete"
)

// Change describes one committed store mutation for the outbound sync queue.
// Exactly one payload pointer is set for upserts; deletes carry only ID.
type Change struct {
	Seq        uint64     `json:"seq"`
	Kind       ChangeKind `json:"kind"`
	Op         ChangeOp   `json:"op"`
	ID         string     `json:"id"`
	OccurredAt time.Time  `json:"occurred_at"`

	Lead     *Lead              `json:"lead,omitempty"`
	Client   *Client            `json:"client,omitempty"`
	Quote    *Quote             `json:"quote,omitempty"`
	Event    *TimelineEvent     `json:"event,omitempty"`
	Profile  *MessageProfile    `json:"profile,omitempty"`
	Settings *Settings          `json:"settings,omitempty"`
	Landing  *LandingSubmission `json:"landing,omitempty"`
}
