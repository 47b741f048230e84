// Package sherlock implements integration with the Sherlock CLI tool.
// It executes sherlock as a subprocess and parses its JSON report to
// create findings for a username across several hundred sites.
package sherlock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
	"laelaps/internal/probes/common"
)

const (
	probeName      = "sherlock"
	binaryName     = "sherlock"
	defaultTimeout = 60 * time.Second
)

// SherlockProbe implements ports.Probe. It wraps the Sherlock CLI tool
// for username enumeration.
type SherlockProbe struct {
	*common.BaseCLIProbe
}

// SherlockConfig contiene la configuración para SherlockProbe.
type SherlockConfig struct {
	Binary  string
	Timeout time.Duration
}

// New creates a new SherlockProbe with default configuration.
func New(logger logx.Logger) *SherlockProbe {
	return NewWithConfig(logger, SherlockConfig{})
}

// NewWithConfig creates SherlockProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg SherlockConfig) *SherlockProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &SherlockProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the probe name.
func (s *SherlockProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (s *SherlockProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (s *SherlockProbe) Attribute() domain.Attribute {
	return domain.AttributeUsername
}

// ValidateInput rejects values sherlock cannot search for.
func (s *SherlockProbe) ValidateInput(value string) error {
	if !validator.IsUsername(value) {
		return fmt.Errorf("not a searchable username: %q", value)
	}
	return nil
}

// Run executes sherlock against the username.
func (s *SherlockProbe) Run(ctx context.Context, username string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeUsername, username)
	logger := s.Logger()

	logger.Info("starting sherlock search", "username", username)

	tmpDir, cleanup, err := common.ScratchDir(probeName)
	if err != nil {
		return outcome, err
	}
	defer cleanup()

	reportPath := filepath.Join(tmpDir, username+".json")

	stdout, _, runErr := s.CaptureCLI(ctx, s.buildArgs(username, reportPath))

	var findings []*domain.Finding
	var notFound, parseErrs []string

	// The JSON report is authoritative; sherlock writes it even on
	// partial runs, so read it regardless of the exit status.
	if data, readErr := os.ReadFile(reportPath); readErr == nil {
		findings, notFound, parseErrs = parseReport(data)
	}

	findings = mergeStdoutFindings(findings, stdout)

	for _, f := range findings {
		outcome.AddFinding(f)
	}
	for _, platform := range notFound {
		outcome.AddNotFound(platform)
	}
	for _, msg := range parseErrs {
		outcome.AddError(msg)
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 && len(outcome.NotFound) == 0 {
			return outcome, runErr
		}
		// Partial results are usable; keep the exit error as a note
		outcome.AddError(runErr.Error())
	}

	logger.Info("sherlock search completed",
		"username", username,
		"found", outcome.FoundCount(),
		"not_found", len(outcome.NotFound),
	)

	return outcome, nil
}

// buildArgs constructs the sherlock command arguments.
func (s *SherlockProbe) buildArgs(username, reportPath string) []string {
	return []string{
		username,
		"--json", reportPath,
		"--timeout", strconv.Itoa(int(s.Timeout().Seconds())),
		"--print-found",
	}
}
