// Package socialanalyzer implements integration with the
// social-analyzer CLI tool, a username scanner covering over a
// thousand sites. The tool prints its JSON report to stdout mixed with
// banner text, so parsing extracts the embedded JSON document first.
package socialanalyzer

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
	probeName      = "socialanalyzer"
	binaryName     = "social-analyzer"
	defaultTimeout = 120 * time.Second
)

// AnalyzerProbe implements ports.Probe backed by the social-analyzer binary.
type AnalyzerProbe struct {
	*common.BaseCLIProbe

	metadata bool
}

// AnalyzerConfig contiene la configuración para AnalyzerProbe.
type AnalyzerConfig struct {
	Binary  string
	Timeout time.Duration

	// Metadata habilita la extracción de metadata por perfil (--metadata)
	Metadata bool
}

// New creates a new AnalyzerProbe with default configuration,
// extracting per-profile metadata.
func New(logger logx.Logger) *AnalyzerProbe {
	return NewWithConfig(logger, AnalyzerConfig{Metadata: true})
}

// NewWithConfig creates AnalyzerProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg AnalyzerConfig) *AnalyzerProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &AnalyzerProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
		metadata: cfg.Metadata,
	}
}

// Name returns the probe name.
func (a *AnalyzerProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (a *AnalyzerProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (a *AnalyzerProbe) Attribute() domain.Attribute {
	return domain.AttributeUsername
}

// ValidateInput rejects values social-analyzer cannot search for.
func (a *AnalyzerProbe) ValidateInput(value string) error {
	if !validator.IsUsername(value) {
		return fmt.Errorf("not a searchable username: %q", value)
	}
	return nil
}

// Run executes social-analyzer against the username.
func (a *AnalyzerProbe) Run(ctx context.Context, username string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeUsername, username)
	logger := a.Logger()

	logger.Info("starting social-analyzer search", "username", username)

	stdout, _, runErr := a.CaptureCLI(ctx, a.buildArgs(username))

	findings, parseErrs := parseOutput(stdout, username)
	for _, f := range findings {
		outcome.AddFinding(f)
	}
	for _, msg := range parseErrs {
		outcome.AddError(msg)
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 {
			return outcome, runErr
		}
		outcome.AddError(runErr.Error())
	}

	logger.Info("social-analyzer search completed",
		"username", username,
		"found", outcome.FoundCount(),
	)

	return outcome, nil
}

// buildArgs constructs the social-analyzer command arguments.
func (a *AnalyzerProbe) buildArgs(username string) []string {
	args := []string{
		"--username", username,
		"--output", "json",
		"--trim",
	}
	if a.metadata {
		args = append(args, "--metadata")
	}
	return args
}
