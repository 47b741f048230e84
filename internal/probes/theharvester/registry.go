package theharvester

import (
	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/registry"
)

// Auto-registro de la probe al importar el package.
func init() {
	if err := registry.Global().Register(
		probeName,
		factory,
		ports.ProbeMetadata{
			Name:         probeName,
			Description:  "Domain reconnaissance (emails, hosts, people) via theHarvester",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindCLI,
			Attribute:    domain.AttributeDomain,
			RequiresAuth: false,
			Binary:       binaryName,
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register theharvester probe", "error", err.Error())
	}
}

// factory creates a HarvesterProbe from a generic probe configuration.
func factory(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
	binary := registry.GetStringConfig(cfg.Custom, "binary", binaryName)
	sources := registry.GetSliceConfig(cfg.Custom, "sources", defaultSources)
	limit := registry.GetIntConfig(cfg.Custom, "limit", defaultLimit)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithConfig(logger, HarvesterConfig{
		Binary:  binary,
		Timeout: timeout,
		Sources: sources,
		Limit:   limit,
	}), nil
}
