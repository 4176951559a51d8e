package entity

import "errors"

// Domain errors
var (
	// Configuration errors
	ErrAINotConfigured     = errors.New("AI service is not configured")
	ErrSearchNotConfigured = errors.New("search service is not configured")

	// Outbound call errors
	ErrTransport          = errors.New("external service call failed")
	ErrEmptyResponse      = errors.New("external service returned an empty response")
	ErrDeadlineExceeded   = errors.New("external service deadline exceeded")
	ErrSearchBranchFailed = errors.New("search branch failed")

	// Content errors
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrRender                 = errors.New("document rendering failed")
	ErrUnsupportedFormat      = errors.New("unsupported output format")
	ErrInvalidLogo            = errors.New("invalid logo image")

	// File errors
	ErrInvalidFile       = errors.New("invalid file")
	ErrFileTooLarge      = errors.New("file too large")
	ErrTooManyFiles      = errors.New("too many files")
	ErrInvalidExtension  = errors.New("invalid file extension")
	ErrTotalSizeTooLarge = errors.New("total file size too large")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
