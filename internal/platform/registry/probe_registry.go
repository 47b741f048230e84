// internal/platform/registry/probe_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"laelaps/internal/core/ports"
	"laelaps/internal/platform/logx"
)

// ProbeRegistry gestiona el registro y construcción de probes.
// Implementa el patrón Registry + Factory para desacoplar la creación
// de probes del código de aplicación.
type ProbeRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProbeFactory
	metadata  map[string]ports.ProbeMetadata
	logger    logx.Logger
}

// ProbeFactory es una función que crea una instancia de Probe.
type ProbeFactory func(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ProbeRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ProbeRegistry {
	once.Do(func() {
		globalRegistry = NewProbeRegistry(logx.New())
	})
	return globalRegistry
}

// NewProbeRegistry crea un nuevo registry de probes.
func NewProbeRegistry(logger logx.Logger) *ProbeRegistry {
	return &ProbeRegistry{
		factories: make(map[string]ProbeFactory),
		metadata:  make(map[string]ports.ProbeMetadata),
		logger:    logger.With("component", "probe-registry"),
	}
}

// Register registra una probe factory con su metadata.
// Típicamente llamado desde init() de cada probe package.
func (r *ProbeRegistry) Register(name string, factory ProbeFactory, meta ports.ProbeMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("probe name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for probe %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("probe %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("probe registered", "name", name, "kind", meta.Kind, "attribute", meta.Attribute)

	return nil
}

// Build construye todas las probes habilitadas según la configuración.
// El orden de salida es determinista: prioridad descendente y nombre
// ascendente en caso de empate. Ese orden fija el orden de selección
// dentro de una ronda.
func (r *ProbeRegistry) Build(configs map[string]ports.ProbeConfig, logger logx.Logger) ([]ports.Probe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Validación de configuración (fail-fast)
	if configs == nil {
		return nil, fmt.Errorf("configs cannot be nil")
	}

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	probes := make([]ports.Probe, 0, len(configs))
	errors := make([]error, 0)

	type prioritizedProbe struct {
		name     string
		config   ports.ProbeConfig
		priority int
	}

	prioritized := make([]prioritizedProbe, 0, len(configs))
	for name, cfg := range configs {
		if !cfg.Enabled {
			continue
		}

		// Validar que la probe esté registrada
		if _, exists := r.factories[name]; !exists {
			r.logger.Warn("probe not registered, skipping",
				"probe", name,
			)
			errors = append(errors, fmt.Errorf("probe %s not registered in registry", name))
			continue
		}

		if cfg.Priority < 0 {
			r.logger.Warn("invalid priority, using default",
				"probe", name,
				"priority", cfg.Priority,
			)
			cfg.Priority = 5
		}

		prioritized = append(prioritized, prioritizedProbe{
			name:     name,
			config:   cfg,
			priority: cfg.Priority,
		})
	}

	sort.Slice(prioritized, func(i, j int) bool {
		if prioritized[i].priority != prioritized[j].priority {
			return prioritized[i].priority > prioritized[j].priority
		}
		return prioritized[i].name < prioritized[j].name
	})

	// Construir probes
	for _, pp := range prioritized {
		factory := r.factories[pp.name] // Ya validado arriba

		probe, err := factory(pp.config, logger)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to build probe %s: %w", pp.name, err))
			continue
		}

		probes = append(probes, probe)
		r.logger.Debug("probe built",
			"name", pp.name,
			"priority", pp.priority,
			"attribute", r.metadata[pp.name].Attribute,
		)
	}

	if len(errors) > 0 {
		// Log errors pero no fallar completamente
		for _, err := range errors {
			r.logger.Warn("probe build error", "error", err.Error())
		}
	}

	if len(probes) == 0 && len(configs) > 0 {
		return nil, fmt.Errorf("no probes could be built")
	}

	// Use the provided logger (respects visual mode) instead of registry's logger
	logger.Info("probes built", "count", len(probes), "requested", len(configs))
	return probes, nil
}

// List retorna los nombres de todas las probes registradas.
func (r *ProbeRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de una probe.
func (r *ProbeRegistry) GetMetadata(name string) (ports.ProbeMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// GetAllMetadata retorna el metadata de todas las probes registradas.
func (r *ProbeRegistry) GetAllMetadata() map[string]ports.ProbeMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Crear copia para evitar race conditions
	result := make(map[string]ports.ProbeMetadata, len(r.metadata))
	for name, meta := range r.metadata {
		result[name] = meta
	}

	return result
}

// IsRegistered verifica si una probe está registrada.
func (r *ProbeRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todas las probes registradas (útil para testing).
func (r *ProbeRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ProbeFactory)
	r.metadata = make(map[string]ports.ProbeMetadata)
}
