// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
)

// mockProbe es un mock de ports.Probe para tests del orchestrator
type mockProbe struct {
	name         string
	kind         domain.ProbeKind
	attribute    domain.Attribute
	timeout      time.Duration
	availableErr error
	runFunc      func(ctx context.Context, value string) (*domain.ProbeOutcome, error)

	mu           sync.Mutex
	runCallCount int
}

func newMockProbe(name string, attr domain.Attribute) *mockProbe {
	return &mockProbe{
		name:      name,
		kind:      domain.ProbeKindAPI,
		attribute: attr,
		timeout:   5 * time.Second,
	}
}

func (m *mockProbe) Name() string {
	return m.name
}

func (m *mockProbe) Kind() domain.ProbeKind {
	return m.kind
}

func (m *mockProbe) Attribute() domain.Attribute {
	return m.attribute
}

func (m *mockProbe) Timeout() time.Duration {
	return m.timeout
}

func (m *mockProbe) Available(ctx context.Context) error {
	return m.availableErr
}

func (m *mockProbe) Run(ctx context.Context, value string) (*domain.ProbeOutcome, error) {
	m.mu.Lock()
	m.runCallCount++
	m.mu.Unlock()

	if m.runFunc != nil {
		return m.runFunc(ctx, value)
	}
	// Default behavior: return empty completed outcome
	return domain.NewProbeOutcome(m.name, m.attribute, value), nil
}

func (m *mockProbe) Close() error {
	// Mock probe no tiene recursos que liberar
	return nil
}

// calls returns how many times Run was invoked (thread-safe)
func (m *mockProbe) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCallCount
}

// mockProbeWithFindings creates a mock that returns specific findings
func mockProbeWithFindings(name string, attr domain.Attribute, findings []*domain.Finding) *mockProbe {
	mock := newMockProbe(name, attr)
	mock.runFunc = func(ctx context.Context, value string) (*domain.ProbeOutcome, error) {
		outcome := domain.NewProbeOutcome(name, attr, value)
		for _, f := range findings {
			outcome.AddFinding(f)
		}
		return outcome, nil
	}
	return mock
}

// mockProbeWithError creates a mock that always fails
func mockProbeWithError(name string, attr domain.Attribute, err error) *mockProbe {
	mock := newMockProbe(name, attr)
	mock.runFunc = func(ctx context.Context, value string) (*domain.ProbeOutcome, error) {
		return nil, err
	}
	return mock
}

// mockProbeUnavailable creates a mock whose backing tool is missing
func mockProbeUnavailable(name string, attr domain.Attribute, reason error) *mockProbe {
	mock := newMockProbe(name, attr)
	mock.availableErr = reason
	return mock
}

// mockProbeHung creates a mock that blocks until its context expires
func mockProbeHung(name string, attr domain.Attribute, timeout time.Duration) *mockProbe {
	mock := newMockProbe(name, attr)
	mock.timeout = timeout
	mock.runFunc = func(ctx context.Context, value string) (*domain.ProbeOutcome, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return mock
}

// mockValidatingProbe implementa ports.Validator además de ports.Probe
type mockValidatingProbe struct {
	*mockProbe
	validateFunc func(value string) error
}

func (m *mockValidatingProbe) ValidateInput(value string) error {
	if m.validateFunc != nil {
		return m.validateFunc(value)
	}
	return nil
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu              sync.Mutex
	notifyFunc      func(ctx context.Context, event ports.Event) error
	closeFunc       func() error
	notifyCallCount int
	events          []ports.Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		notifyCallCount: 0,
		events:          []ports.Event{},
	}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.notifyCallCount++
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, event)
	}
	return nil
}

func (m *mockNotifier) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// getNotifyCallCount returns the number of times Notify was called (thread-safe)
func (m *mockNotifier) getNotifyCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifyCallCount
}
