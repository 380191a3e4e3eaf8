package usecase

import "errors"

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeParseError        = "PARSE_ERROR"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeNoLeads           = "NO_LEADS"
	CodeConversionFailed  = "CONVERSION_FAILED"
	CodeCancelled         = "CANCELLED"
)

type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// notFound wraps one of the entity lookup sentinels.
func notFound(err error, id string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: err.Error() + ": " + id, Err: err}
}

func invalid(fields []ValidationError) *DomainError {
	return &DomainError{Code: CodeValidation, Message: "invalid input", Fields: fields}
}
