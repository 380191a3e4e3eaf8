package entity

import "errors"

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrProfileNotFound = errors.New("message profile not found")
)
