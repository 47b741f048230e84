// cmd/laelaps/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"laelaps/internal/adapters/api"
	"laelaps/internal/adapters/output"
	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
	"laelaps/internal/core/usecases"
	"laelaps/internal/platform/config"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/registry"
	"laelaps/internal/platform/ui"
	"laelaps/internal/probes/weblinks"

	// Import probes for auto-registration via init()
	_ "laelaps/internal/probes/courtlistener"
	_ "laelaps/internal/probes/h8mail"
	_ "laelaps/internal/probes/holehe"
	_ "laelaps/internal/probes/maigret"
	_ "laelaps/internal/probes/phoneinfoga"
	_ "laelaps/internal/probes/sherlock"
	_ "laelaps/internal/probes/socialanalyzer"
	_ "laelaps/internal/probes/socialscan"
	_ "laelaps/internal/probes/theharvester"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (handles help internally)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		config.PrintVersion(version, commit, date)
	}

	// 2. Shared logger
	logger := logx.New()

	logger.Info("laelaps starting",
		"version", version,
		"commit", commit,
		"date", date,
		"mode", cfg.Mode,
		"workers", cfg.Workers,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	// 4. Build probes from registry
	probes, err := registry.Global().Build(cfg.Probes, logger)
	if err != nil {
		logger.Err(err, "phase", "probe-build")
		os.Exit(2)
	}

	if len(probes) == 0 {
		logger.Err(fmt.Errorf("no probes enabled"))
		os.Exit(2)
	}

	// Ensure probe cleanup on exit
	defer closeProbes(logger, probes)

	logger.Info("probes built", "count", len(probes))

	// Health mode reports availability without touching the subject
	if cfg.Mode == config.ModeHealth {
		runHealth(ctx, probes)
	}

	// 5. Build subject and per-mode validation
	subject := cfg.Subject()

	// Sweep sin username explícito: el nombre colapsado en minúsculas
	// hace de username, misma regla que el endpoint /api/sweep
	if cfg.Mode == config.ModeSweep && subject.Username == "" && subject.Name != "" {
		subject.Username = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(subject.Name), " ", ""))
	}

	switch cfg.Mode {
	case config.ModeInvestigate:
		if subject.Name == "" {
			fmt.Fprintln(os.Stderr, "Error: investigate mode needs a full name")
			fmt.Fprintln(os.Stderr, "Usage: laelaps -n \"Amanda Driskell\" [options]")
			fmt.Fprintln(os.Stderr, "Try: laelaps -h for help")
			os.Exit(2)
		}
	case config.ModeProbe:
		if cfg.Probe == "" {
			fmt.Fprintln(os.Stderr, "Error: probe mode needs --probe <name>")
			fmt.Fprintf(os.Stderr, "Registered probes: %s\n", strings.Join(registry.Global().List(), ", "))
			os.Exit(2)
		}
	case config.ModeSweep:
		if err := subject.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Try: laelaps -h for help")
			os.Exit(2)
		}
	}

	// 6. Presenter: UI visual salvo en serve o quiet
	var presenter ui.Presenter
	if cfg.Mode == config.ModeServe || cfg.Outputs.TableDisabled {
		presenter = ui.NewNoopPresenter()
	} else {
		presenter = ui.NewPTermPresenter()
	}

	uiNotifier := ui.NewEventAdapter(presenter)
	defer uiNotifier.Close()

	// 7. Usecases
	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Probes:     probes,
		Logger:     logger,
		Observers:  []ports.Notifier{uiNotifier},
		MaxWorkers: cfg.Workers,
	})

	pipe := usecases.NewPipeline(usecases.PipelineOptions{
		Orchestrator:  orch,
		Links:         weblinks.ForSubject,
		Logger:        logger,
		MaxVariations: cfg.MaxVariations,
	})

	// 8. Serve mode blocks until the context is cancelled
	if cfg.Mode == config.ModeServe {
		server := api.NewServer(api.ServerOptions{
			Addr:         cfg.Server.Addr,
			Rounds:       orch,
			Investigator: pipe,
			Links:        weblinks.ForSubject,
			Probes:       probes,
			Logger:       logger,
			Version:      version,
		})

		if err := server.Start(ctx); err != nil {
			logger.Err(err, "phase", "serve")
			os.Exit(1)
		}
		return
	}

	presenter.Start(ui.RunInfo{
		Subject:    subject.Label(),
		Attributes: attributeNames(subject),
		Probes:     probeNames(probes),
		Workers:    cfg.Workers,
		Mode:       cfg.Mode,
		Version:    version,
	})

	// 9. Execute the selected workflow
	start := time.Now()

	var (
		result *domain.AggregatedResult
		state  *domain.InvestigationState
		runErr error
	)

	switch cfg.Mode {
	case config.ModeInvestigate:
		state, runErr = pipe.Run(ctx, subject)
	case config.ModeSweep:
		result, runErr = orch.Run(ctx, subject)
	case config.ModeProbe:
		result, runErr = orch.RunProbe(ctx, subject, cfg.Probe)
	}

	elapsed := time.Since(start)

	// 10. Handle execution errors
	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		// Continue to emit partial results (useful in pipelines)
	}

	// 11. Write outputs
	if outErr := writeOutputs(cfg, result, state); outErr != nil {
		logger.Err(outErr, "phase", "output")
		os.Exit(1)
	}

	// 12. Summary
	switch {
	case result != nil:
		logger.Info("laelaps finished",
			"elapsed_ms", elapsed.Milliseconds(),
			"findings", result.UniqueFindings,
			"probes", len(result.Outcomes),
		)
	case state != nil:
		logger.Info("laelaps finished",
			"elapsed_ms", elapsed.Milliseconds(),
			"profiles", len(state.Profiles),
			"usernames", len(state.Usernames),
		)
	}

	if runErr != nil {
		os.Exit(1)
	}
}

// writeOutputs decide y ejecuta salidas según configuración y modo.
// Aislarlo de main facilita añadir formatos nuevos.
func writeOutputs(cfg config.Config, result *domain.AggregatedResult, state *domain.InvestigationState) error {
	jsonOpts := ports.DefaultExportOptions()
	jsonOpts.OutputPath = cfg.OutputDir

	tableOpts := ports.DefaultExportOptions()

	jsonExporter := output.NewJSONExporter()
	tableExporter := output.NewTableExporter(nil)

	switch {
	case state != nil:
		// ALWAYS generate JSON: it is the machine-readable record
		if err := jsonExporter.ExportInvestigation(state, jsonOpts); err != nil {
			return fmt.Errorf("json output: %w", err)
		}
		if !cfg.Outputs.TableDisabled {
			if err := tableExporter.ExportInvestigation(state, tableOpts); err != nil {
				return fmt.Errorf("table output: %w", err)
			}
		}

	case result != nil:
		if err := jsonExporter.Export(result, jsonOpts); err != nil {
			return fmt.Errorf("json output: %w", err)
		}
		if !cfg.Outputs.TableDisabled {
			if err := tableExporter.Export(result, tableOpts); err != nil {
				return fmt.Errorf("table output: %w", err)
			}
		}
	}

	return nil
}

// runHealth reporta la disponibilidad de cada probe y termina el proceso.
// Sale con 1 cuando alguna herramienta falta, útil para scripting.
func runHealth(ctx context.Context, probes []ports.Probe) {
	code := 0

	for _, p := range probes {
		if err := p.Available(ctx); err != nil {
			fmt.Printf("  ✗ %-16s %s\n", p.Name(), err.Error())
			code = 1
			continue
		}
		fmt.Printf("  ✓ %-16s %s/%s\n", p.Name(), p.Kind(), p.Attribute())
	}

	os.Exit(code)
}

// closeProbes cierra todas las probes liberando sus recursos.
func closeProbes(logger logx.Logger, probes []ports.Probe) {
	for _, p := range probes {
		if err := p.Close(); err != nil {
			logger.Warn("failed to close probe",
				"probe", p.Name(),
				"error", err.Error(),
			)
		}
	}
}

func probeNames(probes []ports.Probe) []string {
	names := make([]string, 0, len(probes))
	for _, p := range probes {
		names = append(names, p.Name())
	}
	return names
}

func attributeNames(subject domain.Subject) []string {
	attrs := subject.Attributes()
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, string(a))
	}
	return names
}

// rootContextWithSignals creates a root context cancelled by SIGINT or
// SIGTERM. The returned cancel cleans up signal handler, channel and context.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
