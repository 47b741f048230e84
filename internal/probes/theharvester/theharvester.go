// Package theharvester implements integration with the theHarvester
// CLI tool for domain reconnaissance. It runs the tool once per
// configured data source and aggregates emails, hosts, IPs, URLs and
// people across all of them.
package theharvester

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
	"laelaps/internal/probes/common"
)

const (
	probeName      = "theharvester"
	binaryName     = "theHarvester"
	defaultTimeout = 90 * time.Second
	defaultLimit   = 100
)

// defaultSources are queried when the configuration names none.
var defaultSources = []string{"google", "bing", "linkedin"}

// HarvesterProbe implements ports.Probe backed by the theHarvester binary.
type HarvesterProbe struct {
	*common.BaseCLIProbe

	sources []string
	limit   int
}

// HarvesterConfig contiene la configuración para HarvesterProbe.
type HarvesterConfig struct {
	Binary  string
	Timeout time.Duration

	// Sources lista los buscadores a consultar (google, bing, linkedin, ...)
	Sources []string

	// Limit limita los resultados por buscador
	Limit int
}

// New creates a new HarvesterProbe with default configuration.
func New(logger logx.Logger) *HarvesterProbe {
	return NewWithConfig(logger, HarvesterConfig{})
}

// NewWithConfig creates HarvesterProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg HarvesterConfig) *HarvesterProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Binary == "" {
		cfg.Binary = binaryName
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultSources
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}

	return &HarvesterProbe{
		BaseCLIProbe: common.NewBaseCLIProbe(logger, common.BaseCLIConfig{
			ProbeName: probeName,
			Binary:    cfg.Binary,
			Timeout:   cfg.Timeout,
		}),
		sources: cfg.Sources,
		limit:   cfg.Limit,
	}
}

// Name returns the probe name.
func (h *HarvesterProbe) Name() string {
	return probeName
}

// Kind returns the probe kind (CLI).
func (h *HarvesterProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindCLI
}

// Attribute returns the subject attribute this probe consumes.
func (h *HarvesterProbe) Attribute() domain.Attribute {
	return domain.AttributeDomain
}

// ValidateInput rejects values that are not domains.
func (h *HarvesterProbe) ValidateInput(value string) error {
	if !validator.IsDomain(value) {
		return fmt.Errorf("not a valid domain: %q", value)
	}
	return nil
}

// Run executes theHarvester once per source against the domain. The
// context bounds the whole sweep; a source that fails is recorded as an
// error and the remaining sources still run.
func (h *HarvesterProbe) Run(ctx context.Context, domainName string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeDomain, domainName)
	logger := h.Logger()

	logger.Info("starting theHarvester recon", "domain", domainName, "sources", len(h.sources))

	tmpDir, cleanup, err := common.ScratchDir(probeName)
	if err != nil {
		return outcome, err
	}
	defer cleanup()

	outputBase := filepath.Join(tmpDir, "harvester_output")

	acc := newAccumulator()
	for _, source := range h.sources {
		stdout, _, runErr := h.CaptureCLI(ctx, h.buildArgs(domainName, source, outputBase))
		if runErr != nil {
			outcome.AddError(fmt.Sprintf("%s: %v", source, runErr))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		acc.add(parseOutput(stdout))
	}

	for _, f := range acc.findings() {
		outcome.AddFinding(f)
	}

	if ctx.Err() != nil && len(outcome.Findings) == 0 {
		return outcome, ctx.Err()
	}

	logger.Info("theHarvester recon completed",
		"domain", domainName,
		"results", outcome.FoundCount(),
	)

	return outcome, nil
}

// buildArgs constructs the theHarvester command arguments for one source.
func (h *HarvesterProbe) buildArgs(domainName, source, outputBase string) []string {
	return []string{
		"-d", domainName,
		"-b", source,
		"-l", strconv.Itoa(h.limit),
		"-f", outputBase,
	}
}
