package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/leadflow/internal/entity"
)

type QuoteRepository struct {
	DB     Execer
	UserID string
}

func NewQuoteRepository(db Execer, userID string) *QuoteRepository {
	return &QuoteRepository{DB: db, UserID: userID}
}

func (r *QuoteRepository) Upsert(ctx context.Context, q *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, user_id, client_id, service, amount, currency, description, status, created_at, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			service = EXCLUDED.service,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			valid_until = EXCLUDED.valid_until
	`
	_, err := r.DB.ExecContext(ctx, query,
		q.ID, r.UserID, q.ClientID, q.Service, q.Amount, q.Currency, q.Description, q.Status, q.CreatedAt, nullTime(q.ValidUntil),
	)
	if err != nil {
		return fmt.Errorf("saving quote %s: %w", q.ID, err)
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1 AND user_id = $2`, id, r.UserID)
	if err != nil {
		return fmt.Errorf("deleting quote %s: %w", id, err)
	}
	return nil
}
