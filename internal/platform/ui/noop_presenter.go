// internal/platform/ui/noop_presenter.go
package ui

import "time"

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo silent o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// Start no hace nada
func (n *NoopPresenter) Start(info RunInfo) {}

// StartRound no hace nada
func (n *NoopPresenter) StartRound(roundID, subject string, probes int) {}

// StartProbe no hace nada
func (n *NoopPresenter) StartProbe(name string) {}

// FinishProbe no hace nada
func (n *NoopPresenter) FinishProbe(name string, status Status, duration time.Duration, findings int, note string) {
}

// FinishRound no hace nada
func (n *NoopPresenter) FinishRound(stats RoundStats) {}

// Info no hace nada
func (n *NoopPresenter) Info(msg string) {}

// Warning no hace nada
func (n *NoopPresenter) Warning(msg string) {}

// Error no hace nada
func (n *NoopPresenter) Error(msg string) {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}
