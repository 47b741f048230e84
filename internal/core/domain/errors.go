// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Subject errors
	ErrEmptySubject     = errors.New("subject cannot be empty")
	ErrNoAttributes     = errors.New("subject has no usable attributes")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidDomain    = errors.New("invalid domain format")
	ErrInvalidPhone     = errors.New("invalid phone format")
	ErrInvalidAttribute = errors.New("invalid attribute")

	// Finding errors
	ErrInvalidFinding     = errors.New("invalid finding")
	ErrEmptyFindingTarget = errors.New("finding needs a url or platform identifier")

	// Probe errors
	ErrProbeNotFound          = errors.New("probe not found")
	ErrProbeAlreadyRegistered = errors.New("probe already registered")
	ErrProbeUnavailable       = errors.New("probe backing tool or credential unavailable")
	ErrProbeTimeout           = errors.New("probe execution timeout")
	ErrProbeExecutionFailed   = errors.New("probe execution failed")

	// Round errors
	ErrNoProbesSelected = errors.New("no probes selected for subject attributes")
	ErrRoundCanceled    = errors.New("round was canceled")

	// Configuration errors
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMissingConfig     = errors.New("missing required configuration")
	ErrConfigLoadFailed  = errors.New("failed to load configuration")
	ErrConfigParseFailed = errors.New("failed to parse configuration")

	// Export errors
	ErrExportFailed      = errors.New("export failed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidOutputPath = errors.New("invalid output path")
)
