package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

var errConversion = errors.New("lead disappeared before conversion")

// CreateClientUseCase adds a client directly: it files a lead, converts it
// and attaches the chosen services. A failed conversion removes the lead.
type CreateClientUseCase struct {
	Leads   LeadStore
	Clients ClientStore
	log     *zap.Logger
}

func NewCreateClientUseCase(leads LeadStore, clients ClientStore, log *zap.Logger) *CreateClientUseCase {
	return &CreateClientUseCase{Leads: leads, Clients: clients, log: log}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, in CreateClientInput) (entity.Client, error) {
	if errs := ValidateCreateClientInput(in); len(errs) > 0 {
		return entity.Client{}, invalid(errs)
	}

	var (
		lead   entity.Lead
		client entity.Client
	)
	tx := NewTransaction(uc.log)
	tx.AddStep("add_lead",
		func(ctx context.Context) error {
			lead = uc.Leads.AddLead(entity.NewLead{
				FirstName:    in.FirstName,
				LastName:     in.LastName,
				PlatformType: entity.PlatformEmail,
				Email:        in.Email,
				Phone:        in.Phone,
				Status:       entity.StatusNew,
				Tags:         []string{"Direct Client"},
				Notes:        in.Notes,
				Source:       entity.SourceOther,
			})
			return nil
		},
		func(ctx context.Context) error {
			if !uc.Leads.DeleteLead(lead.ID) {
				return fmt.Errorf("lead %s already removed", lead.ID)
			}
			return nil
		},
	)
	tx.AddStep("convert",
		func(ctx context.Context) error {
			c, ok := uc.Clients.ConvertToClient(lead.ID)
			if !ok {
				return errConversion
			}
			client = c
			return nil
		},
		nil,
	)
	tx.AddStep("attach_services",
		func(ctx context.Context) error {
			for _, svc := range in.Services {
				if c, ok := uc.Clients.AddClientService(client.ID, svc); ok {
					client = c
				}
			}
			return nil
		},
		nil,
	)

	if err := tx.Execute(ctx); err != nil {
		uc.log.Error("direct client creation failed", zap.Error(err))
		return entity.Client{}, &DomainError{Code: CodeConversionFailed, Message: err.Error()}
	}

	uc.log.Info("client created", zap.String("client_id", client.ID), zap.Int("services", len(client.Services)))
	return client, nil
}
