// Package phoneinfoga implements integration with the PhoneInfoga CLI
// tool for phone number intelligence. One summary finding carries the
// carrier/country/line-type attributes plus Google dork strings for
// manual follow-up; Google search hits become individual URL findings.
package phoneinfoga

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
	"laelaps/internal/probes/common"
)

const (
	probeName      = "phoneinfoga"
	binaryName     = "phoneinfoga"
	defaultTimeout = 90 * time.Second
)

// PhoneInfogaProbe implements ports.Probe backed by the phoneinfoga binary.
type PhoneInfogaProbe struct {
	*common.BaseCLIProbe
}

// PhoneInfogaConfig contiene la configuración para PhoneInfogaProbe.
type PhoneInfogaConfig struct {
	Binary  string
	Timeout time.Duration
}

// New creates a new PhoneInfogaProbe with default configuration.
func New(logger logx.Logger) *PhoneInfogaProbe {
	return NewWithConfig(logger, PhoneInfogaConfig{})
}

// NewWithConfig creates PhoneInfogaProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg PhoneInfogaConfig) *PhoneInfogaProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}

	return &PhoneInfogaProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
	}
}

// Name returns the probe name.
func (p *PhoneInfogaProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (p *PhoneInfogaProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (p *PhoneInfogaProbe) Attribute() domain.Attribute {
	return domain.AttributePhone
}

// ValidateInput rejects values that are not phone numbers.
func (p *PhoneInfogaProbe) ValidateInput(value string) error {
	if !validator.IsPhone(value) {
		return fmt.Errorf("not a phone number: %q", value)
	}
	return nil
}

// Run executes phoneinfoga against the phone number.
func (p *PhoneInfogaProbe) Run(ctx context.Context, phone string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributePhone, phone)
	logger := p.Logger()

	logger.Info("starting phoneinfoga scan", "phone", phone)

	tmpDir, cleanup, err := common.ScratchDir(probeName)
	if err != nil {
		return outcome, err
	}
	defer cleanup()

	reportPath := filepath.Join(tmpDir, "phoneinfoga_output.json")

	stdout, _, runErr := p.CaptureCLI(ctx, p.buildArgs(phone, reportPath))

	var rep scanReport
	fileParsed := false
	if data, readErr := os.ReadFile(reportPath); readErr == nil {
		if parsed, ok := parseReport(data); ok {
			rep = parsed
			fileParsed = true
			if rep.RawLocal == "" {
				rep.RawLocal = phone
			}
		}
	}

	// stdout values win over the report when both are present
	applyStdout(&rep, stdout)

	if runErr != nil && !fileParsed && strings.TrimSpace(stdout) == "" {
		return outcome, runErr
	}

	outcome.AddFinding(summaryFinding(rep, phone))
	for _, f := range googleFindings(rep.GoogleSearch) {
		outcome.AddFinding(f)
	}
	if runErr != nil {
		outcome.AddError(runErr.Error())
	}

	logger.Info("phoneinfoga scan completed",
		"phone", phone,
		"valid", rep.Valid,
		"google_hits", len(rep.GoogleSearch),
	)

	return outcome, nil
}

// buildArgs constructs the phoneinfoga command arguments.
func (p *PhoneInfogaProbe) buildArgs(phone, reportPath string) []string {
	return []string{
		"scan",
		"-n", phone,
		"-o", reportPath,
	}
}
