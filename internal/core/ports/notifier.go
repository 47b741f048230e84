// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"laelaps/internal/core/domain"
)

// Notifier es el port para notificaciones de eventos del sistema.
// Implementa el patrón Observer para desacoplar la lógica de negocio
// de los mecanismos de presentación (UI, webhooks, etc.).
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error

	// Close cierra el notifier y libera recursos
	Close() error
}

// Event representa un evento del sistema.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Source sonda o componente que generó el evento
	Source string

	// Data datos específicos del evento
	Data interface{}
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	// Round events
	EventTypeRoundStarted   EventType = "round.started"
	EventTypeRoundCompleted EventType = "round.completed"

	// Probe events
	EventTypeProbeStarted     EventType = "probe.started"
	EventTypeProbeCompleted   EventType = "probe.completed"
	EventTypeProbeFailed      EventType = "probe.failed"
	EventTypeProbeTimeout     EventType = "probe.timeout"
	EventTypeProbeUnavailable EventType = "probe.unavailable"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, source string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// RoundStartedEvent datos para evento de inicio de ronda.
type RoundStartedEvent struct {
	RoundID string
	Subject domain.Subject
	Probes  int
}

// RoundCompletedEvent datos para evento de finalización de ronda.
type RoundCompletedEvent struct {
	RoundID       string
	Subject       domain.Subject
	FindingsCount int
	Duration      time.Duration
}

// ProbeCompletedEvent datos para evento de finalización de sonda.
type ProbeCompletedEvent struct {
	Probe    string
	Status   domain.OutcomeStatus
	Findings int
	Duration time.Duration
}

// NotifierFactory es una función que crea una instancia de Notifier.
type NotifierFactory func(config map[string]interface{}) (Notifier, error)
