package entity

import "fmt"

// GenerationFailure classifies why a generation call produced no text.
type GenerationFailure int

const (
	FailureNone GenerationFailure = iota
	FailureNotConfigured
	FailureTransport
	FailureStatus
	FailureEmpty
	FailureTimeout
)

func (f GenerationFailure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNotConfigured:
		return "not_configured"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureEmpty:
		return "empty"
	case FailureTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// GenerationResult is the outcome of exactly one generation call. Failures
// are carried as values; callers convert them with Err.
type GenerationResult struct {
	Text       string
	Model      string
	Failure    GenerationFailure
	StatusCode int
	Cause      error
}

func (r GenerationResult) OK() bool {
	return r.Failure == FailureNone
}

// Err maps the failure variant onto the domain error taxonomy. Transport
// failures keep Cause in the chain.
func (r GenerationResult) Err() error {
	switch r.Failure {
	case FailureNone:
		return nil
	case FailureNotConfigured:
		return ErrAINotConfigured
	case FailureEmpty:
		return ErrEmptyResponse
	case FailureTimeout:
		return r.wrap(fmt.Errorf("%w: %w", ErrTransport, ErrDeadlineExceeded))
	case FailureStatus:
		return r.wrap(fmt.Errorf("%w: status %d", ErrTransport, r.StatusCode))
	default:
		return r.wrap(ErrTransport)
	}
}

func (r GenerationResult) wrap(base error) error {
	if r.Cause == nil {
		return base
	}
	return fmt.Errorf("%w: %w", base, r.Cause)
}

// NotConfiguredResult is returned by generators built without a credential.
func NotConfiguredResult() GenerationResult {
	return GenerationResult{Failure: FailureNotConfigured, Cause: ErrAINotConfigured}
}
