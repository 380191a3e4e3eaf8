package database

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/leadflow/internal/entity"
)

type ProfileRepository struct {
	DB     Execer
	UserID string
}

func NewProfileRepository(db Execer, userID string) *ProfileRepository {
	return &ProfileRepository{DB: db, UserID: userID}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *entity.MessageProfile) error {
	query := `
		INSERT INTO ai_profiles (id, user_id, name, tone, offer, cta, length, template)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tone = EXCLUDED.tone,
			offer = EXCLUDED.offer,
			cta = EXCLUDED.cta,
			length = EXCLUDED.length,
			template = EXCLUDED.template
	`
	_, err := r.DB.ExecContext(ctx, query, p.ID, r.UserID, p.Name, p.Tone, p.Offer, p.CTA, p.Length, p.Template)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", p.ID, err)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM ai_profiles WHERE id = $1 AND user_id = $2`, id, r.UserID)
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	return nil
}

// UpsertSettings keeps one settings row per user.
func (r *ProfileRepository) UpsertSettings(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (user_id, company_name, default_currency, ai_api_key, custom_tags, services)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			default_currency = EXCLUDED.default_currency,
			ai_api_key = EXCLUDED.ai_api_key,
			custom_tags = EXCLUDED.custom_tags,
			services = EXCLUDED.services
	`
	_, err := r.DB.ExecContext(ctx, query,
		r.UserID, s.CompanyName, s.DefaultCurrency, nullString(s.AIAPIKey), pq.Array(s.CustomTags), pq.Array(s.Services),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
