package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/leadflow/internal/entity"
)

// LandingRepository writes the public intake table, which has no owner.
type LandingRepository struct {
	DB Execer
}

func NewLandingRepository(db Execer) *LandingRepository {
	return &LandingRepository{DB: db}
}

func (r *LandingRepository) Insert(ctx context.Context, s *entity.LandingSubmission) error {
	query := `
		INSERT INTO landing_submissions (id, name, email, phone, service_interest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Name, s.Email, nullString(s.Phone), s.ServiceInterest, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving landing submission %s: %w", s.ID, err)
	}
	return nil
}
