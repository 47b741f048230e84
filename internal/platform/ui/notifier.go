// internal/platform/ui/notifier.go
package ui

import (
	"context"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
)

// EventAdapter traduce eventos del orquestador a llamadas del Presenter.
// Implementa ports.Notifier, de modo que la UI se engancha a las rondas
// como un observer más sin acoplar los usecases a pterm.
type EventAdapter struct {
	presenter Presenter
}

// NewEventAdapter crea el adapter sobre un presenter concreto.
func NewEventAdapter(p Presenter) *EventAdapter {
	return &EventAdapter{presenter: p}
}

// Notify despacha un evento hacia el presenter.
func (a *EventAdapter) Notify(ctx context.Context, event ports.Event) error {
	switch event.Type {
	case ports.EventTypeRoundStarted:
		if data, ok := event.Data.(ports.RoundStartedEvent); ok {
			a.presenter.StartRound(data.RoundID, data.Subject.Label(), data.Probes)
		}

	case ports.EventTypeRoundCompleted:
		if data, ok := event.Data.(ports.RoundCompletedEvent); ok {
			a.presenter.FinishRound(RoundStats{
				RoundID:  data.RoundID,
				Subject:  data.Subject.Label(),
				Findings: data.FindingsCount,
				Duration: data.Duration,
			})
		}

	case ports.EventTypeProbeStarted:
		a.presenter.StartProbe(event.Source)

	case ports.EventTypeProbeCompleted:
		if data, ok := event.Data.(ports.ProbeCompletedEvent); ok {
			a.presenter.FinishProbe(
				data.Probe,
				statusForOutcome(data.Status),
				data.Duration,
				data.Findings,
				"",
			)
		}

	case ports.EventTypeProbeUnavailable:
		a.presenter.FinishProbe(event.Source, StatusSkipped, 0, 0, reasonFrom(event.Data))

	case ports.EventTypeProbeTimeout:
		a.presenter.FinishProbe(event.Source, StatusWarning, 0, 0, "timed out")

	case ports.EventTypeProbeFailed:
		a.presenter.FinishProbe(event.Source, StatusError, 0, 0, reasonFrom(event.Data))
	}

	return nil
}

// Close libera el presenter subyacente.
func (a *EventAdapter) Close() error {
	return a.presenter.Close()
}

// statusForOutcome mapea el desenlace de una probe a un estado visual.
func statusForOutcome(status domain.OutcomeStatus) Status {
	switch status {
	case domain.OutcomeCompleted:
		return StatusSuccess
	case domain.OutcomeTimedOut:
		return StatusWarning
	case domain.OutcomeUnavailable:
		return StatusSkipped
	case domain.OutcomeFailed:
		return StatusError
	default:
		return StatusWarning
	}
}

// reasonFrom extrae el mensaje cuando el payload del evento es un error.
func reasonFrom(data any) string {
	if err, ok := data.(error); ok {
		return err.Error()
	}
	return ""
}
