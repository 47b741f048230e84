package h8mail

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
			Description:  "Email breach and leak search via h8mail",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindCLI,
			Attribute:    domain.AttributeEmail,
			RequiresAuth: false,
			Binary:       binaryName,
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register h8mail probe", "error", err.Error())
	}
}

// factory creates an H8mailProbe from a generic probe configuration.
func factory(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
	binary := registry.GetStringConfig(cfg.Custom, "binary", binaryName)
	chase := registry.GetBoolConfig(cfg.Custom, "chase", true)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewWithConfig(logger, H8mailConfig{
		Binary:  binary,
		Timeout: timeout,
		Chase:   chase,
	}), nil
}
