// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
	"laelaps/internal/platform/errors"
	"laelaps/internal/platform/logx"
)

// defaultRoundTimeout acota la ronda cuando ninguna probe declara timeout.
const defaultRoundTimeout = 60 * time.Second

// Orchestrator coordina la ejecución concurrente de múltiples probes
// contra un sujeto. Una ronda produce exactamente un outcome por probe
// seleccionada, independientemente de fallos individuales.
type Orchestrator struct {
	probes    []ports.Probe
	merger    *MergeService
	logger    logx.Logger
	observers []ports.Notifier

	// Configuración
	maxWorkers int

	// Control de goroutines
	notifyWg sync.WaitGroup
}

// OrchestratorOptions configura el orchestrator.
type OrchestratorOptions struct {
	Probes     []ports.Probe
	Logger     logx.Logger
	Observers  []ports.Notifier
	MaxWorkers int
}

// NewOrchestrator crea una nueva instancia del orchestrator.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 4
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Orchestrator{
		probes:     opts.Probes,
		merger:     NewMergeService(),
		logger:     opts.Logger.With("component", "orchestrator"),
		observers:  opts.Observers,
		maxWorkers: opts.MaxWorkers,
	}
}

// Run ejecuta todas las probes cuyo atributo está presente en el sujeto.
func (o *Orchestrator) Run(ctx context.Context, subject domain.Subject) (*domain.AggregatedResult, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	selected := o.selectProbes(func(p ports.Probe) bool {
		return subject.Has(p.Attribute())
	})

	return o.run(ctx, subject, selected)
}

// RunAttribute ejecuta una ronda restringida a un atributo. La usa el
// pipeline para rondas de email y de variaciones de username.
func (o *Orchestrator) RunAttribute(ctx context.Context, subject domain.Subject, attr domain.Attribute) (*domain.AggregatedResult, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	selected := o.selectProbes(func(p ports.Probe) bool {
		return p.Attribute() == attr && subject.Has(attr)
	})

	return o.run(ctx, subject, selected)
}

// RunProbe ejecuta una ronda de una sola probe identificada por nombre.
func (o *Orchestrator) RunProbe(ctx context.Context, subject domain.Subject, name string) (*domain.AggregatedResult, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	var probe ports.Probe
	for _, p := range o.probes {
		if p.Name() == name {
			probe = p
			break
		}
	}
	if probe == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProbeNotFound, name)
	}
	if !subject.Has(probe.Attribute()) {
		return nil, fmt.Errorf("%w: probe %s needs attribute %s",
			domain.ErrNoProbesSelected, name, probe.Attribute())
	}

	return o.run(ctx, subject, []ports.Probe{probe})
}

// run ejecuta la ronda sobre las probes ya seleccionadas.
func (o *Orchestrator) run(ctx context.Context, subject domain.Subject, selected []ports.Probe) (*domain.AggregatedResult, error) {
	if len(selected) == 0 {
		return nil, domain.ErrNoProbesSelected
	}

	result := domain.NewAggregatedResult(subject)

	o.logger.Info("starting round",
		"round", result.ID,
		"subject", subject.Label(),
		"probes", len(selected),
		"workers", o.maxWorkers,
	)

	o.notify(ctx, ports.NewEvent(
		ports.EventTypeRoundStarted,
		"orchestrator",
		ports.RoundStartedEvent{
			RoundID: result.ID,
			Subject: subject,
			Probes:  len(selected),
		},
	))

	// El deadline de la ronda lo fija la probe más lenta, no la suma.
	roundCtx, cancel := context.WithTimeout(ctx, roundDeadline(selected))
	defer cancel()

	result.Outcomes = o.executeProbes(ctx, roundCtx, selected, subject)

	// Consolidar hallazgos en orden de selección
	result.Findings = o.merger.MergeOutcomes(result.Outcomes)
	result.Finalize()

	o.logger.Info("round completed",
		"round", result.ID,
		"subject", subject.Label(),
		"findings", result.UniqueFindings,
		"duration_ms", result.Duration.Milliseconds(),
	)

	o.notify(ctx, ports.NewEvent(
		ports.EventTypeRoundCompleted,
		"orchestrator",
		ports.RoundCompletedEvent{
			RoundID:       result.ID,
			Subject:       subject,
			FindingsCount: result.UniqueFindings,
			Duration:      result.Duration,
		},
	))

	// Esperar a que todas las notificaciones terminen antes de retornar
	o.notifyWg.Wait()

	return result, nil
}

// selectProbes filtra las probes que cumplen el predicado, en orden de registro.
func (o *Orchestrator) selectProbes(keep func(ports.Probe) bool) []ports.Probe {
	var selected []ports.Probe
	for _, p := range o.probes {
		if keep(p) {
			selected = append(selected, p)
		}
	}
	return selected
}

// executeProbes ejecuta las probes en paralelo con límite de workers.
// El slice de outcomes se indexa por posición de selección para que el
// orden del resultado no dependa del orden de terminación. roundCtx acota
// la ejecución; ctx (padre) mantiene vivas las notificaciones de cierre
// aunque el deadline de la ronda ya haya vencido.
func (o *Orchestrator) executeProbes(
	ctx context.Context,
	roundCtx context.Context,
	selected []ports.Probe,
	subject domain.Subject,
) []*domain.ProbeOutcome {
	sem := make(chan struct{}, o.maxWorkers)
	var wg sync.WaitGroup
	outcomes := make([]*domain.ProbeOutcome, len(selected))

	for i, probe := range selected {
		wg.Add(1)
		go func(idx int, p ports.Probe) {
			defer wg.Done()

			// Adquirir semáforo
			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes[idx] = o.executeProbe(ctx, roundCtx, p, subject)
		}(i, probe)
	}

	wg.Wait()
	return outcomes
}

// executeProbe ejecuta una probe individual y clasifica su desenlace.
// Nunca retorna nil: toda probe seleccionada produce un outcome.
func (o *Orchestrator) executeProbe(
	ctx context.Context,
	roundCtx context.Context,
	probe ports.Probe,
	subject domain.Subject,
) *domain.ProbeOutcome {
	name := probe.Name()
	attr := probe.Attribute()
	value := subject.Attribute(attr)

	o.logger.Debug("executing probe", "probe", name, "attribute", attr)
	o.notify(ctx, ports.NewEvent(ports.EventTypeProbeStarted, name, nil))

	started := time.Now()

	// Pre-flight de disponibilidad: una probe sin binario o credencial no
	// se invoca y no bloquea al resto de la ronda.
	if err := probe.Available(roundCtx); err != nil {
		o.logger.Warn("probe unavailable", "probe", name, "reason", err.Error())
		outcome := domain.NewProbeOutcome(name, attr, value)
		outcome.Status = domain.OutcomeUnavailable
		outcome.AddError(err.Error())
		outcome.Finalize()
		o.notify(ctx, ports.NewEvent(ports.EventTypeProbeUnavailable, name, err))
		return outcome
	}

	// Validación de entrada opcional, por type assertion
	if v, ok := probe.(ports.Validator); ok {
		if err := v.ValidateInput(value); err != nil {
			o.logger.Warn("probe input rejected", "probe", name, "error", err.Error())
			outcome := domain.NewProbeOutcome(name, attr, value)
			outcome.Status = domain.OutcomeFailed
			outcome.AddError(err.Error())
			outcome.Finalize()
			o.notify(ctx, ports.NewEvent(ports.EventTypeProbeFailed, name, err))
			return outcome
		}
	}

	// Contexto hijo con el timeout propio de la probe
	probeCtx, cancel := context.WithTimeout(roundCtx, probe.Timeout())
	defer cancel()

	outcome, err := probe.Run(probeCtx, value)

	// Una probe que retorna nil outcome no rompe la invariante de la ronda
	if outcome == nil {
		outcome = domain.NewProbeOutcome(name, attr, value)
		outcome.StartedAt = started
	}

	switch {
	case err == nil:
		if outcome.Status == "" {
			outcome.Status = domain.OutcomeCompleted
		}
		o.logger.Debug("probe completed",
			"probe", name,
			"findings", len(outcome.Findings),
		)

	case errors.Is(err, context.DeadlineExceeded) || errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		outcome.Status = domain.OutcomeTimedOut
		outcome.AddError(fmt.Sprintf("timed out after %s", probe.Timeout()))
		o.logger.Warn("probe timed out", "probe", name, "timeout", probe.Timeout())
		o.notify(ctx, ports.NewEvent(ports.EventTypeProbeTimeout, name, err))

	default:
		outcome.Status = domain.OutcomeFailed
		outcome.AddError(err.Error())
		o.logger.Warn("probe failed", "probe", name, "error", err.Error())
		o.notify(ctx, ports.NewEvent(ports.EventTypeProbeFailed, name, err))
	}

	outcome.Finalize()

	o.notify(ctx, ports.NewEvent(
		ports.EventTypeProbeCompleted,
		name,
		ports.ProbeCompletedEvent{
			Probe:    name,
			Status:   outcome.Status,
			Findings: len(outcome.Findings),
			Duration: outcome.Duration,
		},
	))

	return outcome
}

// roundDeadline retorna el timeout de la probe más lenta de la selección.
func roundDeadline(selected []ports.Probe) time.Duration {
	max := time.Duration(0)
	for _, p := range selected {
		if t := p.Timeout(); t > max {
			max = t
		}
	}
	if max <= 0 {
		max = defaultRoundTimeout
	}
	return max
}

// notify envía una notificación a todos los observers.
// Usa goroutines con WaitGroup y timeout para evitar leaks y bloqueos.
func (o *Orchestrator) notify(ctx context.Context, event ports.Event) {
	const notificationTimeout = 5 * time.Second

	for _, observer := range o.observers {
		o.notifyWg.Add(1)
		go func(notifier ports.Notifier) {
			defer o.notifyWg.Done()

			// Crear contexto con timeout para esta notificación
			notifyCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
			defer cancel()

			// Canal para capturar el resultado
			done := make(chan error, 1)

			// Ejecutar notificación en goroutine separada
			go func() {
				done <- notifier.Notify(notifyCtx, event)
			}()

			// Esperar resultado o timeout
			select {
			case err := <-done:
				if err != nil {
					o.logger.Warn("notification failed", "error", err.Error())
				}
			case <-notifyCtx.Done():
				if notifyCtx.Err() == context.DeadlineExceeded {
					o.logger.Warn("notification timeout exceeded",
						"timeout", notificationTimeout,
						"event_type", event.Type,
					)
				}
			}
		}(observer)
	}
}
