package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

const defaultQuoteValidDays = 30

type CreateQuoteUseCase struct {
	Clients ClientStore
	now     func() time.Time
	log     *zap.Logger
}

func NewCreateQuoteUseCase(clients ClientStore, log *zap.Logger) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{Clients: clients, now: time.Now, log: log}
}

// Execute stores the quote and logs it on the client's timeline. Amounts
// are taken as given.
func (uc *CreateQuoteUseCase) Execute(ctx context.Context, in CreateQuoteInput) (CreateQuoteOutput, error) {
	if errs := ValidateCreateQuoteInput(in); len(errs) > 0 {
		return CreateQuoteOutput{}, invalid(errs)
	}
	if _, ok := uc.Clients.GetClient(in.ClientID); !ok {
		return CreateQuoteOutput{}, notFound(entity.ErrClientNotFound, in.ClientID)
	}

	days := in.ValidDays
	if days == 0 {
		days = defaultQuoteValidDays
	}

	quote := uc.Clients.AddQuote(entity.NewQuote{
		ClientID:    in.ClientID,
		Service:     in.Service,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		Status:      in.Status,
		ValidUntil:  uc.now().AddDate(0, 0, days),
	})
	event := uc.Clients.AddTimelineEvent(entity.NewTimelineEvent{
		ClientID: in.ClientID,
		Type:     entity.EventQuote,
		Content:  fmt.Sprintf("Quote created: %s - $%s", quote.Service, strconv.FormatFloat(quote.Amount, 'f', -1, 64)),
	})

	uc.log.Info("quote created", zap.String("quote_id", quote.ID), zap.String("client_id", quote.ClientID))
	return CreateQuoteOutput{Quote: quote, Event: event}, nil
}
