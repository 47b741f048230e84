package maigret

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
			Description:  "Deep username search with site tags and extracted IDs via Maigret",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindCLI,
			Attribute:    domain.AttributeUsername,
			RequiresAuth: false,
			Binary:       binaryName,
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register maigret probe", "error", err.Error())
	}
}

// factory creates a MaigretProbe from a generic probe configuration.
func factory(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
	binary := registry.GetStringConfig(cfg.Custom, "binary", binaryName)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithConfig(logger, MaigretConfig{
		Binary:  binary,
		Timeout: timeout,
	}), nil
}
