// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	// Tracking de progreso por probe
	probes map[string]*ProbeProgress

	// Spinners activos por probe
	spinners map[string]*pterm.SpinnerPrinter

	// Configuración
	runInfo RunInfo
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		probes:   make(map[string]*ProbeProgress),
		spinners: make(map[string]*pterm.SpinnerPrinter),
	}
}

// Start inicia la presentación mostrando el header de la ejecución
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runInfo = info

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Laelaps - Person OSINT Probes")

	pterm.Println()

	pterm.DefaultSection.Println("Run Configuration")

	infoPanel := pterm.DefaultBox.
		WithTitle("Subject Information").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	subjectInfo := fmt.Sprintf("%s Subject: %s\n", IconTarget, StylePrimary.Sprint(info.Subject))
	subjectInfo += fmt.Sprintf("   Attributes: %s\n", StyleText.Sprint(strings.Join(info.Attributes, ", ")))
	subjectInfo += fmt.Sprintf("%s Probes: %d\n", IconProbes, len(info.Probes))
	subjectInfo += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	subjectInfo += fmt.Sprintf("   Mode: %s", StyleWarning.Sprint(info.Mode))

	infoPanel.Println(subjectInfo)

	pterm.Println()
	pterm.Println(StyleInfo.Sprint(SeparatorHeavy))
	pterm.Println()
}

// StartRound notifica el inicio de una ronda de probes
func (p *PTermPresenter) StartRound(roundID, subject string, probes int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.probes = make(map[string]*ProbeProgress, probes)

	title := fmt.Sprintf("%s %s: %s (%d probes)",
		IconRound,
		StyleSecondary.Sprint(roundID),
		StylePrimary.Sprint(subject),
		probes,
	)

	pterm.DefaultSection.WithLevel(2).Println(title)
}

// StartProbe notifica el inicio de ejecución de una probe
func (p *PTermPresenter) StartProbe(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.probes[name] = &ProbeProgress{
		Name:      name,
		Status:    StatusRunning,
		StartTime: time.Now(),
	}

	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
		Start(fmt.Sprintf("  %s Running %s...",
			StatusRunning.Symbol(),
			StyleActive.Sprint(name),
		))

	p.spinners[name] = spinner
}

// FinishProbe notifica la finalización de una probe. El primer estado
// terminal gana: el probe.completed que acompaña a un probe.failed no
// vuelve a renderizar la línea.
func (p *PTermPresenter) FinishProbe(name string, status Status, duration time.Duration, findings int, note string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	progress, exists := p.probes[name]
	if !exists {
		progress = &ProbeProgress{Name: name}
		p.probes[name] = progress
	}

	if progress.Status.Terminal() {
		return
	}

	progress.Status = status
	progress.Duration = duration
	progress.Findings = findings
	progress.Note = note

	if spinner, ok := p.spinners[name]; ok {
		spinner.Stop()
		delete(p.spinners, name)
	}

	p.renderProbeLine(progress)
}

// FinishRound finaliza la presentación con estadísticas de la ronda
func (p *PTermPresenter) FinishRound(stats RoundStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Detener spinners que hayan quedado activos
	for _, spinner := range p.spinners {
		spinner.Stop()
	}
	p.spinners = make(map[string]*pterm.SpinnerPrinter)

	pterm.Println()
	pterm.Println(StyleInfo.Sprint(SeparatorHeavy))
	pterm.Println()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Round Completed")

	pterm.Println()

	statsPanel := pterm.DefaultBox.
		WithTitle("Round Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	succeeded, failed, skipped := p.tally()

	content := fmt.Sprintf("%s Duration: %s\n",
		IconTime,
		StyleSuccess.Sprint(p.formatDuration(stats.Duration)),
	)
	content += fmt.Sprintf("%s Unique Findings: %s\n",
		IconFindings,
		StyleAccent.Sprint(fmt.Sprintf("%d", stats.Findings)),
	)
	content += fmt.Sprintf("%s Probes Succeeded: %s\n",
		IconSuccess,
		StyleSuccess.Sprint(fmt.Sprintf("%d", succeeded)),
	)

	if failed > 0 {
		content += fmt.Sprintf("%s Probes Failed: %s\n",
			IconError,
			StyleError.Sprint(fmt.Sprintf("%d", failed)),
		)
	}

	if skipped > 0 {
		content += fmt.Sprintf("   Probes Skipped: %s\n",
			StyleSecondary.Sprint(fmt.Sprintf("%d", skipped)),
		)
	}

	content += fmt.Sprintf("   Subject: %s", StyleText.Sprint(stats.Subject))

	statsPanel.Println(content)

	// Tabla por probe (si hay datos)
	if len(p.probes) > 0 {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println(IconStats + " Findings by Probe")

		tableData := pterm.TableData{
			{"Probe", "Status", "Findings", "Duration"},
		}

		for _, name := range p.sortedProbeNames() {
			progress := p.probes[name]
			tableData = append(tableData, []string{
				name,
				progress.Status.String(),
				fmt.Sprintf("%d", progress.Findings),
				p.formatDuration(progress.Duration),
			})
		}

		pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(tableData).
			Render()
	}

	pterm.Println()
	pterm.Println(pterm.Gray(SeparatorLight))
	pterm.Println()
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, spinner := range p.spinners {
		spinner.Stop()
	}

	p.spinners = make(map[string]*pterm.SpinnerPrinter)
	return nil
}

// renderProbeLine renderiza una línea con el resultado de una probe
func (p *PTermPresenter) renderProbeLine(progress *ProbeProgress) {
	line := fmt.Sprintf("  %s %s",
		progress.Status.Symbol(),
		progress.Status.Style().Sprint(progress.Name),
	)

	if progress.Duration > 0 {
		line += fmt.Sprintf(" (%s)", p.formatDuration(progress.Duration))
	}

	if progress.Findings > 0 {
		line += fmt.Sprintf(" %s %s findings",
			IconFindings,
			StyleAccent.Sprint(fmt.Sprintf("%d", progress.Findings)),
		)
	}

	if progress.Note != "" {
		line += StyleSecondary.Sprint(" (" + progress.Note + ")")
	}

	pterm.Println(line)
}

// tally cuenta probes por desenlace sobre el tracking de la ronda
func (p *PTermPresenter) tally() (succeeded, failed, skipped int) {
	for _, progress := range p.probes {
		switch progress.Status {
		case StatusSuccess:
			succeeded++
		case StatusError, StatusWarning:
			failed++
		case StatusSkipped:
			skipped++
		}
	}
	return succeeded, failed, skipped
}

// sortedProbeNames retorna los nombres de probe en orden estable
func (p *PTermPresenter) sortedProbeNames() []string {
	names := make([]string, 0, len(p.probes))
	for name := range p.probes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatDuration formatea una duración de manera legible
func (p *PTermPresenter) formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
