package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateNewLead(in entity.NewLead) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(in.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	}
	if in.PlatformType != "" && !in.PlatformType.Valid() {
		errors = append(errors, ValidationError{"platformType", "is not a known platform"})
	}
	if in.Status != "" && !in.Status.Valid() {
		errors = append(errors, ValidationError{"status", "is not a known status"})
	}
	if in.Source != "" && !in.Source.Valid() {
		errors = append(errors, ValidationError{"source", "is not a known source"})
	}
	if in.Email != "" && !isValidEmail(in.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateLandingInput(in entity.NewLandingSubmission) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(in.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(in.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(in.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(in.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(in.ServiceInterest) == "" {
		errors = append(errors, ValidationError{"serviceInterest", "is required"})
	}

	return errors
}

func ValidateCreateQuoteInput(in CreateQuoteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(in.ClientID) == "" {
		errors = append(errors, ValidationError{"clientId", "is required"})
	}
	if strings.TrimSpace(in.Service) == "" {
		errors = append(errors, ValidationError{"service", "is required"})
	}
	if in.Status != "" && !in.Status.Valid() {
		errors = append(errors, ValidationError{"status", "is not a known quote status"})
	}
	if in.ValidDays < 0 {
		errors = append(errors, ValidationError{"validDays", "must not be negative"})
	}

	return errors
}

func ValidateCreateClientInput(in CreateClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(in.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	}
	if in.Email != "" && !isValidEmail(in.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func isValidEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func ValidateTimelineEntry(in entity.NewTimelineEvent) []ValidationError {
	var errors []ValidationError

	switch in.Type {
	case entity.EventNote, entity.EventCall, entity.EventStatusChange:
	case "":
		errors = append(errors, ValidationError{"type", "is required"})
	default:
		errors = append(errors, ValidationError{"type", "must be note, call or status_change"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errors = append(errors, ValidationError{"content", "is required"})
	}

	return errors
}
