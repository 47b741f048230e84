// Package socialscan implements integration with the socialscan CLI
// tool. Socialscan answers availability rather than existence, so taken
// handles are reported as ambiguous findings without a profile URL.
package socialscan

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
	probeName      = "socialscan"
	binaryName     = "socialscan"
	defaultTimeout = 30 * time.Second
)

// SocialscanProbe implements ports.Probe backed by the socialscan binary.
type SocialscanProbe struct {
	*common.BaseCLIProbe
}

// SocialscanConfig contiene la configuración para SocialscanProbe.
type SocialscanConfig struct {
	Binary  string
	Timeout time.Duration
}

// New creates a new SocialscanProbe with default configuration.
func New(logger logx.Logger) *SocialscanProbe {
	return NewWithConfig(logger, SocialscanConfig{})
}

// NewWithConfig creates SocialscanProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg SocialscanConfig) *SocialscanProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &SocialscanProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the probe name.
func (s *SocialscanProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (s *SocialscanProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (s *SocialscanProbe) Attribute() domain.Attribute {
	return domain.AttributeUsername
}

// ValidateInput rejects values socialscan cannot check.
func (s *SocialscanProbe) ValidateInput(value string) error {
	if !validator.IsUsername(value) {
		return fmt.Errorf("not a checkable username: %q", value)
	}
	return nil
}

// Run executes socialscan against the username.
func (s *SocialscanProbe) Run(ctx context.Context, username string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeUsername, username)
	logger := s.Logger()

	logger.Info("starting socialscan check", "username", username)

	stdout, _, runErr := s.CaptureCLI(ctx, []string{username})

	findings, notFound := parseOutput(stdout, username)
	for _, f := range findings {
		outcome.AddFinding(f)
	}
	for _, platform := range notFound {
		outcome.AddNotFound(platform)
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 && len(outcome.NotFound) == 0 {
			return outcome, runErr
		}
		outcome.AddError(runErr.Error())
	}

	logger.Info("socialscan check completed",
		"username", username,
		"taken", outcome.FoundCount(),
		"available", len(outcome.NotFound),
	)

	return outcome, nil
}
