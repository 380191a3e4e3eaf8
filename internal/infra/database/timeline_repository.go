package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/leadflow/internal/entity"
)

type TimelineRepository struct {
	DB     Execer
	UserID string
}

func NewTimelineRepository(db Execer, userID string) *TimelineRepository {
	return &TimelineRepository{DB: db, UserID: userID}
}

// Insert ignores replays; events never change once written.
func (r *TimelineRepository) Insert(ctx context.Context, e *entity.TimelineEvent) error {
	query := `
		INSERT INTO timeline_events (id, user_id, client_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, e.ID, r.UserID, e.ClientID, e.Type, e.Content, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving timeline event %s: %w", e.ID, err)
	}
	return nil
}

func (r *TimelineRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM timeline_events WHERE id = $1 AND user_id = $2`, id, r.UserID)
	if err != nil {
		return fmt.Errorf("deleting timeline event %s: %w", id, err)
	}
	return nil
}
