// internal/core/domain/outcome.go
package domain

import (
	"fmt"
	"time"
)

// Límites de truncado para listas que pueden crecer sin cota con herramientas
// que enumeran cientos de sitios por consulta.
const (
	MaxNotFoundEntries = 50
	MaxErrorEntries    = 20
)

// ProbeOutcome representa el resultado de ejecutar una probe dentro de una
// ronda. Toda probe seleccionada produce exactamente un outcome, falle o no.
type ProbeOutcome struct {
	// Probe nombre de la probe que produjo el outcome
	Probe string `json:"probe"`

	// Attribute y Value identifican la consulta ejecutada
	Attribute Attribute `json:"attribute"`
	Value     string    `json:"value"`

	// Status clasifica el desenlace de la invocación
	Status OutcomeStatus `json:"status"`

	// Findings hallazgos normalizados reportados por la probe
	Findings []*Finding `json:"findings"`

	// NotFound plataformas que confirmaron ausencia (truncado)
	NotFound []string `json:"not_found,omitempty"`

	// Errors errores capturados como texto; nunca se propagan como fallo
	Errors []string `json:"errors,omitempty"`

	// Duration tiempo de ejecución de esta probe
	Duration time.Duration `json:"duration"`

	// StartedAt momento de inicio de la invocación
	StartedAt time.Time `json:"started_at"`
}

// NewProbeOutcome crea un outcome vacío en estado completed.
func NewProbeOutcome(probe string, attr Attribute, value string) *ProbeOutcome {
	return &ProbeOutcome{
		Probe:     probe,
		Attribute: attr,
		Value:     value,
		Status:    OutcomeCompleted,
		Findings:  []*Finding{},
		NotFound:  []string{},
		Errors:    []string{},
		StartedAt: time.Now(),
	}
}

// AddFinding añade un hallazgo válido al outcome.
func (o *ProbeOutcome) AddFinding(f *Finding) {
	if f == nil || !f.IsValid() {
		return
	}
	f.AddSource(o.Probe)
	o.Findings = append(o.Findings, f)
}

// AddNotFound registra una plataforma que confirmó ausencia, con truncado.
func (o *ProbeOutcome) AddNotFound(platform string) {
	if platform == "" || len(o.NotFound) >= MaxNotFoundEntries {
		return
	}
	o.NotFound = append(o.NotFound, platform)
}

// AddError captura un error como texto, con truncado.
func (o *ProbeOutcome) AddError(msg string) {
	if msg == "" || len(o.Errors) >= MaxErrorEntries {
		return
	}
	o.Errors = append(o.Errors, msg)
}

// Finalize cierra el outcome calculando su duración.
func (o *ProbeOutcome) Finalize() {
	o.Duration = time.Since(o.StartedAt)
}

// FoundCount retorna el número de hallazgos confirmados.
func (o *ProbeOutcome) FoundCount() int {
	count := 0
	for _, f := range o.Findings {
		if f.Status == FindingFound {
			count++
		}
	}
	return count
}

// HasErrors indica si la probe capturó errores.
func (o *ProbeOutcome) HasErrors() bool {
	return len(o.Errors) > 0
}

// String retorna una representación legible del outcome.
func (o *ProbeOutcome) String() string {
	return fmt.Sprintf("ProbeOutcome{probe=%s, status=%s, findings=%d, errors=%d, duration=%s}",
		o.Probe, o.Status, len(o.Findings), len(o.Errors), o.Duration)
}

// AggregatedResult representa la salida del orquestador para una ronda:
// outcomes por probe en orden de selección más los hallazgos consolidados.
type AggregatedResult struct {
	// ID identificador único de la ronda
	ID string `json:"id"`

	// Subject sujeto consultado
	Subject Subject `json:"subject"`

	// Outcomes un elemento por probe seleccionada, en orden de selección
	Outcomes []*ProbeOutcome `json:"outcomes"`

	// Findings colección consolidada y deduplicada por URL canónica
	Findings []*Finding `json:"findings"`

	// UniqueFindings número de hallazgos únicos tras deduplicar
	UniqueFindings int `json:"unique_findings"`

	// StartTime, EndTime y Duration acotan la ronda completa; la duración la
	// define la probe más lenta dentro del deadline, no la suma
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// NewAggregatedResult crea un resultado de ronda vacío.
func NewAggregatedResult(subject Subject) *AggregatedResult {
	return &AggregatedResult{
		ID:        generateRoundID(),
		Subject:   subject,
		Outcomes:  []*ProbeOutcome{},
		Findings:  []*Finding{},
		StartTime: time.Now(),
	}
}

// Finalize cierra la ronda calculando duración y conteo de únicos.
func (r *AggregatedResult) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.UniqueFindings = len(r.Findings)
}

// ProbesRun retorna los nombres de las probes ejecutadas en orden.
func (r *AggregatedResult) ProbesRun() []string {
	names := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		names = append(names, o.Probe)
	}
	return names
}

// Stats retorna el conteo de outcomes agrupado por estado.
func (r *AggregatedResult) Stats() map[string]int {
	stats := make(map[string]int)
	for _, o := range r.Outcomes {
		stats[string(o.Status)]++
	}
	return stats
}

// HasFailures indica si alguna probe terminó en failed o timed_out.
func (r *AggregatedResult) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Status == OutcomeFailed || o.Status == OutcomeTimedOut {
			return true
		}
	}
	return false
}

// Summary retorna un resumen legible de la ronda.
func (r *AggregatedResult) Summary() string {
	return fmt.Sprintf(
		"AggregatedResult{subject=%s, probes=%d, findings=%d, duration=%s}",
		r.Subject.Label(),
		len(r.Outcomes),
		r.UniqueFindings,
		r.Duration,
	)
}

// generateRoundID genera un ID único para la ronda basado en timestamp.
func generateRoundID() string {
	return fmt.Sprintf("round-%d", time.Now().UnixNano())
}
