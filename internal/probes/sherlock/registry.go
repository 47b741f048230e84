package sherlock

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
			Description:  "Username search across 400+ sites via Sherlock",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindCLI,
			Attribute:    domain.AttributeUsername,
			RequiresAuth: false,
			Binary:       binaryName,
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register sherlock probe", "error", err.Error())
	}
}

// factory creates a SherlockProbe from a generic probe configuration.
func factory(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
	binary := registry.GetStringConfig(cfg.Custom, "binary", binaryName)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithConfig(logger, SherlockConfig{
		Binary:  binary,
		Timeout: timeout,
	}), nil
}
