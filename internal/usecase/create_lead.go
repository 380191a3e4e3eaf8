package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

type CreateLeadUseCase struct {
	Leads LeadStore
	log   *zap.Logger
}

func NewCreateLeadUseCase(leads LeadStore, log *zap.Logger) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, log: log}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, in entity.NewLead) (entity.Lead, error) {
	if errs := ValidateNewLead(in); len(errs) > 0 {
		return entity.Lead{}, invalid(errs)
	}
	lead := uc.Leads.AddLead(in)
	uc.log.Info("lead created",
		zap.String("lead_id", lead.ID),
		zap.String("platform", string(lead.PlatformType)))
	return lead, nil
}
