package database

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/leadflow/internal/entity"
)

type ClientRepository struct {
	DB     Execer
	UserID string
}

func NewClientRepository(db Execer, userID string) *ClientRepository {
	return &ClientRepository{DB: db, UserID: userID}
}

// Upsert stores the client row. Quotes and timeline live in their own tables.
func (r *ClientRepository) Upsert(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (
			id, user_id, first_name, last_name, platform_type, profile_link, email, phone,
			status, tags, notes, source, bio, services, created_at, converted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
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
			services = EXCLUDED.services
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		r.UserID,
		c.FirstName,
		nullString(c.LastName),
		c.PlatformType,
		nullString(c.ProfileLink),
		nullString(c.Email),
		nullString(c.Phone),
		c.Status,
		pq.Array(c.Tags),
		c.Notes,
		c.Source,
		nullString(c.Bio),
		pq.Array(c.Services),
		c.CreatedAt,
		c.ConvertedAt,
	)
	if err != nil {
		return fmt.Errorf("saving client %s: %w", c.ID, err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, r.UserID)
	if err != nil {
		return fmt.Errorf("deleting client %s: %w", id, err)
	}
	return nil
}
