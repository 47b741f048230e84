// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Presenter define la interfaz para presentar el progreso de una ronda
// de probes de manera visual e interactiva. Las implementaciones deben
// ser seguras para uso concurrente: las probes corren en paralelo.
type Presenter interface {
	// Start inicia la presentación con la configuración de la ejecución
	Start(info RunInfo)

	// StartRound notifica el inicio de una ronda de probes
	StartRound(roundID, subject string, probes int)

	// StartProbe notifica el inicio de ejecución de una probe
	StartProbe(name string)

	// FinishProbe notifica la finalización de una probe. La nota es
	// opcional y acompaña estados no exitosos (razón de skip, error).
	FinishProbe(name string, status Status, duration time.Duration, findings int, note string)

	// FinishRound finaliza la presentación con estadísticas de la ronda
	FinishRound(stats RoundStats)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene la configuración inicial de la ejecución
type RunInfo struct {
	Subject    string
	Attributes []string
	Probes     []string
	Workers    int
	Mode       string
	Version    string
}

// RoundStats contiene estadísticas finales de una ronda
type RoundStats struct {
	RoundID  string
	Subject  string
	Findings int
	Duration time.Duration
}

// ProbeProgress representa el progreso de una probe específica
type ProbeProgress struct {
	Name      string
	Status    Status
	Findings  int
	Duration  time.Duration
	Note      string
	StartTime time.Time
}
