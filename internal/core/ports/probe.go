// internal/core/ports/probe.go
package ports

import (
	"context"
	"time"

	"laelaps/internal/core/domain"
)

// Probe es el port primario para todas las sondas de datos en Laelaps.
// Cualquier sonda (API, CLI, static) debe implementar esta interfaz.
type Probe interface {
	// Name retorna el nombre único de la sonda (ej: "sherlock", "holehe", "courtlistener")
	Name() string

	// Kind retorna el tipo de implementación (api, cli, static)
	Kind() domain.ProbeKind

	// Attribute retorna el atributo del sujeto que esta sonda consume
	Attribute() domain.Attribute

	// Timeout retorna el tiempo máximo de ejecución de la sonda
	Timeout() time.Duration

	// Available verifica que la sonda pueda ejecutarse en este entorno
	// (binario instalado, API key presente, etc.). Un error aquí significa
	// "unavailable", nunca "failed": la sonda no llegó a ejecutarse.
	Available(ctx context.Context) error

	// Run ejecuta la sonda contra el valor del atributo y retorna el resultado.
	// Run debe ser total: toda salida de la herramienta subyacente, incluso
	// malformada, produce un ProbeOutcome en lugar de un pánico.
	Run(ctx context.Context, value string) (*domain.ProbeOutcome, error)

	// Close libera recursos utilizados por la sonda (conexiones, temporales, etc.)
	Close() error
}

// Validator extiende Probe con validación opcional de entrada.
// Las sondas pueden implementar esta interfaz mediante type assertion.
type Validator interface {
	Probe

	// ValidateInput verifica que el valor sea procesable antes de ejecutar
	ValidateInput(value string) error
}

// ProbeConfig contiene la configuración específica de una sonda.
type ProbeConfig struct {
	// Enabled indica si la sonda está habilitada
	Enabled bool

	// Timeout tiempo máximo de ejecución
	Timeout time.Duration

	// Priority prioridad de ejecución (mayor = más prioritario)
	Priority int

	// Custom configuración específica de la sonda (API keys, paths, etc.)
	Custom map[string]interface{}
}

// DefaultProbeConfig retorna una configuración por defecto.
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		Enabled:  true,
		Timeout:  60 * time.Second,
		Priority: 0,
		Custom:   make(map[string]interface{}),
	}
}

// ProbeFactory es una función que crea una instancia de Probe.
type ProbeFactory func(cfg ProbeConfig) (Probe, error)

// ProbeMetadata contiene metadatos sobre una sonda.
type ProbeMetadata struct {
	Name         string
	Description  string
	Version      string
	Author       string
	Kind         domain.ProbeKind
	Attribute    domain.Attribute
	RequiresAuth bool
	Binary       string // Nombre del binario requerido (vacío para sondas api/static)
}
