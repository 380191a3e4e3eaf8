package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

// CaptureLandingUseCase handles the public intake form.
type CaptureLandingUseCase struct {
	Store        LandingStore
	EmailService EmailService
	NotifyTo     string
	Delay        time.Duration
	log          *zap.Logger

	// notify runs the owner e-mail; it defaults to a detached goroutine.
	notify func(func())
}

func NewCaptureLandingUseCase(st LandingStore, email EmailService, notifyTo string, delay time.Duration, log *zap.Logger) *CaptureLandingUseCase {
	return &CaptureLandingUseCase{
		Store:        st,
		EmailService: email,
		NotifyTo:     notifyTo,
		Delay:        delay,
		log:          log,
		notify:       func(fn func()) { go fn() },
	}
}

func (uc *CaptureLandingUseCase) Execute(ctx context.Context, in entity.NewLandingSubmission) (CaptureLandingOutput, error) {
	if errs := ValidateLandingInput(in); len(errs) > 0 {
		return CaptureLandingOutput{}, invalid(errs)
	}

	if uc.Delay > 0 {
		t := time.NewTimer(uc.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return CaptureLandingOutput{}, &TechnicalError{Code: CodeCancelled, Message: "submission cancelled", Err: ctx.Err()}
		case <-t.C:
		}
	}

	sub, lead := uc.Store.AddLandingSubmission(in)
	uc.log.Info("landing submission captured",
		zap.String("submission_id", sub.ID),
		zap.String("lead_id", lead.ID),
		zap.String("interest", sub.ServiceInterest))

	if uc.EmailService != nil && uc.NotifyTo != "" {
		company := uc.Store.Settings().CompanyName
		uc.notify(func() {
			if err := uc.EmailService.SendLandingNotification(uc.NotifyTo, company, sub); err != nil {
				uc.log.Error("landing notification failed", zap.String("submission_id", sub.ID), zap.Error(err))
			}
		})
	}

	return CaptureLandingOutput{Submission: sub, Lead: lead}, nil
}
