// Package holehe implements integration with the holehe CLI tool,
// which checks whether an email address is registered on a set of
// online services.
package holehe

import (
	"context"
	"fmt"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
	"laelaps/internal/probes/common"
)

const (
	probeName      = "holehe"
	binaryName     = "holehe"
	defaultTimeout = 60 * time.Second

	// holehe checks ~120 services; beyond this the not-registered list
	// is noise, so only the first entries are kept.
	maxNotRegistered = 20
)

// HoleheProbe implements ports.Probe backed by the holehe binary.
type HoleheProbe struct {
	*common.BaseCLIProbe
}

// HoleheConfig contiene la configuración para HoleheProbe.
type HoleheConfig struct {
	Binary  string
	Timeout time.Duration
}

// New creates a new HoleheProbe with default configuration.
func New(logger logx.Logger) *HoleheProbe {
	return NewWithConfig(logger, HoleheConfig{})
}

// NewWithConfig creates HoleheProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg HoleheConfig) *HoleheProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &HoleheProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the probe name.
func (h *HoleheProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (h *HoleheProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (h *HoleheProbe) Attribute() domain.Attribute {
	return domain.AttributeEmail
}

// ValidateInput rejects values that are not email addresses.
func (h *HoleheProbe) ValidateInput(value string) error {
	if !validator.IsEmail(value) {
		return fmt.Errorf("not an email address: %q", value)
	}
	return nil
}

// Run executes holehe against the email address.
func (h *HoleheProbe) Run(ctx context.Context, email string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeEmail, email)
	logger := h.Logger()

	logger.Info("starting holehe check", "email", email)

	stdout, _, runErr := h.CaptureCLI(ctx, h.buildArgs(email))

	findings, notRegistered, parseErrs := parseOutput(stdout)
	for _, f := range findings {
		outcome.AddFinding(f)
	}
	if len(notRegistered) > maxNotRegistered {
		notRegistered = notRegistered[:maxNotRegistered]
	}
	for _, service := range notRegistered {
		outcome.AddNotFound(service)
	}
	for _, msg := range parseErrs {
		outcome.AddError(msg)
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 && len(outcome.NotFound) == 0 {
			return outcome, runErr
		}
		outcome.AddError(runErr.Error())
	}

	logger.Info("holehe check completed",
		"email", email,
		"registered", outcome.FoundCount(),
		"not_registered", len(outcome.NotFound),
	)

	return outcome, nil
}

// buildArgs constructs the holehe command arguments. --only-used keeps
// output focused and -NP disables password recovery probing.
func (h *HoleheProbe) buildArgs(email string) []string {
	return []string{email, "--only-used", "-NP"}
}
