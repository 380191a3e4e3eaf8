package database

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/leadflow/internal/entity"
)

type LeadRepository struct {
	DB     Execer
	UserID string
}

func NewLeadRepository(db Execer, userID string) *LeadRepository {
	return &LeadRepository{DB: db, UserID: userID}
}

// Upsert writes the local row over the remote one; local always wins.
func (r *LeadRepository) Upsert(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, user_id, first_name, last_name, platform_type, profile_link, email, phone,
			status, tags, notes, source, bio, created_at, last_action_at,
			message_sent, message_date, is_client
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			platform_type = EXCLUDED.platform_type,
			profile_link = EXCLUDED.profile_link,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			status = EXCLUDED.status,
			tags = EXCLUDED.tags,
			notes = EXCLUDED.notes,
			source = EXCLUDED.source,
			bio = EXCLUDED.bio,
			last_action_at = EXCLUDED.last_action_at,
			message_sent = EXCLUDED.message_sent,
			message_date = EXCLUDED.message_date,
			is_client = EXCLUDED.is_client
	`

	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		r.UserID,
		l.FirstName,
		nullString(l.LastName),
		l.PlatformType,
		nullString(l.ProfileLink),
		nullString(l.Email),
		nullString(l.Phone),
		l.Status,
		pq.Array(l.Tags),
		l.Notes,
		l.Source,
		nullString(l.Bio),
		l.CreatedAt,
		l.LastActionAt,
		l.MessageSent,
		l.MessageDate,
		l.IsClient,
	)
	if err != nil {
		return fmt.Errorf("saving lead %s: %w", l.ID, err)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1 AND user_id = $2`, id, r.UserID)
	if err != nil {
		return fmt.Errorf("deleting lead %s: %w", id, err)
	}
	return nil
}
