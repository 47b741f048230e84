// Package maigret implements integration with the Maigret CLI tool,
// a deeper username scanner that reports site tags and extracted
// account identifiers alongside each hit.
package maigret

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
	probeName      = "maigret"
	binaryName     = "maigret"
	defaultTimeout = 120 * time.Second
)

// MaigretProbe implements ports.Probe backed by the maigret binary.
type MaigretProbe struct {
	*common.BaseCLIProbe
}

// MaigretConfig contiene la configuración para MaigretProbe.
type MaigretConfig struct {
	Binary  string
	Timeout time.Duration
}

// New creates a new MaigretProbe with default configuration.
func New(logger logx.Logger) *MaigretProbe {
	return NewWithConfig(logger, MaigretConfig{})
}

// NewWithConfig creates MaigretProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg MaigretConfig) *MaigretProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &MaigretProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the probe name.
func (m *MaigretProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (m *MaigretProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (m *MaigretProbe) Attribute() domain.Attribute {
	return domain.AttributeUsername
}

// ValidateInput rejects values maigret cannot search for.
func (m *MaigretProbe) ValidateInput(value string) error {
	if !validator.IsUsername(value) {
		return fmt.Errorf("not a searchable username: %q", value)
	}
	return nil
}

// Run executes maigret against the username.
func (m *MaigretProbe) Run(ctx context.Context, username string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeUsername, username)
	logger := m.Logger()

	logger.Info("starting maigret search", "username", username)

	tmpDir, cleanup, err := common.ScratchDir(probeName)
	if err != nil {
		return outcome, err
	}
	defer cleanup()

	reportPath := filepath.Join(tmpDir, username+".json")

	_, _, runErr := m.CaptureCLI(ctx, m.buildArgs(username, reportPath))

	if data, readErr := os.ReadFile(reportPath); readErr == nil {
		findings, notFound := parseReport(data)
		for _, f := range findings {
			outcome.AddFinding(f)
		}
		for _, platform := range notFound {
			outcome.AddNotFound(platform)
		}
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 && len(outcome.NotFound) == 0 {
			return outcome, runErr
		}
		outcome.AddError(runErr.Error())
	}

	logger.Info("maigret search completed",
		"username", username,
		"found", outcome.FoundCount(),
		"not_found", len(outcome.NotFound),
	)

	return outcome, nil
}

// buildArgs constructs the maigret command arguments. The "simple" JSON
// report keeps one flat entry per site.
func (m *MaigretProbe) buildArgs(username, reportPath string) []string {
	return []string{
		username,
		"--json", "simple",
		"-o", reportPath,
		"--timeout", strconv.Itoa(int(m.Timeout().Seconds())),
		"--no-progressbar",
	}
}
