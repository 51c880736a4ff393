package services

import "errors"

// Error kinds surfaced by the service layer. Controllers map these to HTTP
// status codes with errors.Is; the wrapped message names the violated
// invariant so clients can disambiguate.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
)
