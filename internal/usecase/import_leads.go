package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/importer"
)

type ImportLeadsUseCase struct {
	Leads LeadStore
	log   *zap.Logger
}

func NewImportLeadsUseCase(leads LeadStore, log *zap.Logger) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Leads: leads, log: log}
}

// Execute parses the whole upload before touching the store; a batch that
// fails to parse adds nothing.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, in ImportLeadsInput) (ImportLeadsOutput, error) {
	var (
		parsed []entity.NewLead
		err    error
	)
	if in.File != nil {
		parsed, err = importer.ParseFile(in.Filename, in.File)
	} else {
		parsed = importer.ParseBulkText(in.Text)
		if len(parsed) == 0 {
			err = importer.ErrNoLeads
		}
	}
	if err != nil {
		uc.log.Warn("import rejected", zap.String("filename", in.Filename), zap.Error(err))
		return ImportLeadsOutput{}, importError(err)
	}

	leads := uc.Leads.AddLeads(parsed)
	uc.log.Info("leads imported", zap.Int("count", len(leads)), zap.String("filename", in.Filename))
	return ImportLeadsOutput{Imported: len(leads), Leads: leads}, nil
}

func importError(err error) *DomainError {
	switch {
	case errors.Is(err, importer.ErrNoLeads):
		return &DomainError{Code: CodeNoLeads, Message: importer.ErrNoLeads.Error()}
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return &DomainError{Code: CodeUnsupportedFormat, Message: importer.ErrUnsupportedFormat.Error()}
	case errors.Is(err, importer.ErrParseExcel):
		return &DomainError{Code: CodeParseError, Message: importer.ErrParseExcel.Error()}
	default:
		return &DomainError{Code: CodeParseError, Message: importer.ErrParseCSV.Error()}
	}
}
