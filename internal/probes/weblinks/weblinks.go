// Package weblinks generates manual-check reference links without any
// network or process calls: people-search sites for a name, state and
// federal court registers, and reverse phone lookup pages. The link
// builders are pure functions used directly by the investigation
// pipeline; the package also registers a static probe so sweep rounds
// carry the same links.
package weblinks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/validator"
)

const (
	probeName      = "weblinks"
	defaultTimeout = 5 * time.Second
)

// WebLinksProbe implements ports.Probe with pure link synthesis. It
// never touches the network, so it is always available and never fails.
type WebLinksProbe struct {
	logger  logx.Logger
	timeout time.Duration
}

// WebLinksConfig contiene la configuración para WebLinksProbe.
type WebLinksConfig struct {
	Timeout time.Duration
}

// New creates a new WebLinksProbe with default configuration.
func New(logger logx.Logger) *WebLinksProbe {
	return NewWithConfig(logger, WebLinksConfig{})
}

// NewWithConfig creates a new WebLinksProbe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg WebLinksConfig) *WebLinksProbe {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &WebLinksProbe{
		logger:  logger.With("probe", probeName),
		timeout: cfg.Timeout,
	}
}

// Name retorna el identificador de la probe.
func (w *WebLinksProbe) Name() string {
	return probeName
}

// Kind retorna el tipo de probe.
func (w *WebLinksProbe) Kind() domain.ProbeKind {
	return domain.ProbeKindStatic
}

// Attribute retorna el atributo que consume la probe.
func (w *WebLinksProbe) Attribute() domain.Attribute {
	return domain.AttributeName
}

// Timeout retorna el tiempo máximo de ejecución.
func (w *WebLinksProbe) Timeout() time.Duration {
	return w.timeout
}

// Available siempre retorna nil: no hay binario ni credencial que falte.
func (w *WebLinksProbe) Available(ctx context.Context) error {
	return ctx.Err()
}

// ValidateInput verifica que el nombre no esté vacío.
func (w *WebLinksProbe) ValidateInput(value string) error {
	if validator.IsEmpty(value) {
		return fmt.Errorf("name is empty")
	}
	return nil
}

// Run builds the name-derived links. Location and state variants need
// the full subject and are only produced through ForSubject.
func (w *WebLinksProbe) Run(ctx context.Context, name string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeName, name)

	for _, f := range BuildPeopleSearch(name, "") {
		outcome.AddFinding(f)
	}
	for _, f := range BuildCourtLinks(name, "") {
		outcome.AddFinding(f)
	}

	w.logger.Debug("links generated", "name", name, "links", len(outcome.Findings))
	return outcome, nil
}

// Close libera recursos. No hay nada que liberar.
func (w *WebLinksProbe) Close() error {
	return nil
}

// ForSubject builds every link collection the subject's attributes
// allow. This is the LinkBuilder the investigation pipeline consumes
// in its first step.
func ForSubject(subject domain.Subject) []*domain.Finding {
	var links []*domain.Finding

	if subject.Name != "" {
		links = append(links, BuildPeopleSearch(subject.Name, subjectLocation(subject))...)
		links = append(links, BuildCourtLinks(subject.Name, subject.State)...)
	}
	if subject.Phone != "" {
		links = append(links, BuildPhoneLookups(subject.Phone)...)
	}

	return links
}

// subjectLocation compone la localización en una sola cadena, como la
// esperan los sitios de people search.
func subjectLocation(subject domain.Subject) string {
	parts := make([]string, 0, 2)
	if subject.City != "" {
		parts = append(parts, subject.City)
	}
	if subject.State != "" {
		parts = append(parts, subject.State)
	}
	return strings.Join(parts, " ")
}
