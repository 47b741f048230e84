package weblinks

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
			Description:  "Manual-check reference links for people search and court records",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindStatic,
			Attribute:    domain.AttributeName,
			RequiresAuth: false,
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register weblinks probe", "error", err.Error())
	}
}

// factory creates a WebLinksProbe from a generic probe configuration.
func factory(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithConfig(logger, WebLinksConfig{
		Timeout: timeout,
	}), nil
}
