// Package h8mail implements integration with the h8mail CLI tool,
// which searches breach corpora for an email address. Leaked
// credentials are masked before they reach any outcome; raw passwords
// are never stored.
package h8mail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
	"laelaps/internal/probes/common"
)

const (
	probeName      = "h8mail"
	binaryName     = "h8mail"
	defaultTimeout = 120 * time.Second
)

// H8mailProbe implements ports.Probe backed by the h8mail binary.
type H8mailProbe struct {
	*common.BaseCLIProbe

	chase bool
}

// H8mailConfig contiene la configuración para H8mailProbe.
type H8mailConfig struct {
	Binary  string
	Timeout time.Duration

	// Chase habilita el seguimiento de emails relacionados (-c)
	Chase bool
}

// New creates a new H8mailProbe with default configuration, chasing
// related emails.
func New(logger logx.Logger) *H8mailProbe {
	return NewWithConfig(logger, H8mailConfig{Chase: true})
}

// NewWithConfig creates H8mailProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg H8mailConfig) *H8mailProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &H8mailProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
		chase: cfg.Chase,
	}
}

// Name returns the probe name.
func (h *H8mailProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (h *H8mailProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (h *H8mailProbe) Attribute() domain.Attribute {
	return domain.AttributeEmail
}

// ValidateInput rejects values that are not email addresses.
func (h *H8mailProbe) ValidateInput(value string) error {
	if !validator.IsEmail(value) {
		return fmt.Errorf("not an email address: %q", value)
	}
	return nil
}

// Run executes h8mail against the email address.
func (h *H8mailProbe) Run(ctx context.Context, email string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeEmail, email)
	logger := h.Logger()

	logger.Info("starting h8mail breach search", "email", email, "chase", h.chase)

	tmpDir, cleanup, err := common.ScratchDir(probeName)
	if err != nil {
		return outcome, err
	}
	defer cleanup()

	reportPath := filepath.Join(tmpDir, "h8mail_output.json")

	stdout, _, runErr := h.CaptureCLI(ctx, h.buildArgs(email, reportPath))

	var findings []*domain.Finding
	if data, readErr := os.ReadFile(reportPath); readErr == nil {
		findings = parseReport(data, email)
	}
	findings = append(findings, parseStdout(stdout)...)

	for _, f := range findings {
		outcome.AddFinding(f)
	}

	if runErr != nil {
		if len(outcome.Findings) == 0 {
			return outcome, runErr
		}
		outcome.AddError(runErr.Error())
	}

	logger.Info("h8mail search completed",
		"email", email,
		"breaches", outcome.FoundCount(),
	)

	return outcome, nil
}

// buildArgs constructs the h8mail command arguments.
func (h *H8mailProbe) buildArgs(email, reportPath string) []string {
	args := []string{"-t", email, "-j", reportPath}
	if h.chase {
		// Chase related emails found in breach data
		args = append(args, "-c")
	}
	return args
}
