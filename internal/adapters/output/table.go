// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
)

// timePrecision redondea las duraciones por probe en la tabla.
const timePrecision = time.Millisecond

// TableExporter imprime tablas legibles en terminal. Implementa
// ports.InvestigationExporter y ports.WriterExporter.
type TableExporter struct {
	out io.Writer
}

// NewTableExporter crea un exporter de tablas. Con writer nil escribe
// a stdout.
func NewTableExporter(w io.Writer) *TableExporter {
	if w == nil {
		w = os.Stdout
	}
	return &TableExporter{out: w}
}

// Name retorna el nombre del exporter.
func (e *TableExporter) Name() string {
	return "table"
}

// SupportedFormats retorna los formatos soportados.
func (e *TableExporter) SupportedFormats() []string {
	return []string{"table"}
}

// Export imprime el resultado de una ronda de probes.
func (e *TableExporter) Export(result *domain.AggregatedResult, opts ports.ExportOptions) error {
	return e.writeRound(e.out, result, opts)
}

// ExportToWriter imprime el resultado a un Writer arbitrario.
func (e *TableExporter) ExportToWriter(result *domain.AggregatedResult, writer io.Writer, opts ports.ExportOptions) error {
	return e.writeRound(writer, result, opts)
}

// ExportInvestigation imprime el estado de una investigación guiada.
func (e *TableExporter) ExportInvestigation(state *domain.InvestigationState, opts ports.ExportOptions) error {
	w := tabwriter.NewWriter(e.out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== Laelaps Investigation ===\n")
	fmt.Fprintf(w, "Subject:\t%s\n", state.Subject.Label())
	fmt.Fprintf(w, "Duration:\t%s\n", state.Duration)
	fmt.Fprintf(w, "Profiles:\t%d\n", len(state.Profiles))
	fmt.Fprintf(w, "Links:\t%d\n\n", len(state.Links))

	// Bitácora del pipeline
	fmt.Fprintln(w, "STEP\tACTION\tSTATUS\tRESULT")
	fmt.Fprintln(w, "----\t------\t------\t------")
	for _, step := range state.Steps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", step.Index, step.Action, step.Status, step.Result)
	}

	// Perfiles confirmados
	if len(state.Profiles) > 0 {
		fmt.Fprintln(w, "\nPLATFORM\tURL\tORIGIN")
		fmt.Fprintln(w, "--------\t---\t------")
		for _, p := range state.Profiles {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Platform, findingTarget(p), p.Metadata["origin"])
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if len(state.Emails) > 0 {
		fmt.Fprintf(e.out, "\nDiscovered emails: %s\n", strings.Join(state.Emails, ", "))
	}
	if len(state.Usernames) > 0 {
		fmt.Fprintf(e.out, "Usernames tried: %s\n", strings.Join(state.Usernames, ", "))
	}
	if state.Summary != "" {
		fmt.Fprintf(e.out, "\n%s\n", state.Summary)
	}

	fmt.Fprintln(e.out)
	return nil
}

// writeRound imprime el encabezado, el resumen por probe, los hallazgos
// y los errores de una ronda.
func (e *TableExporter) writeRound(out io.Writer, result *domain.AggregatedResult, opts ports.ExportOptions) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== Laelaps Probe Round ===\n")
	fmt.Fprintf(w, "Subject:\t%s\n", result.Subject.Label())
	fmt.Fprintf(w, "Duration:\t%s\n", result.Duration)
	fmt.Fprintf(w, "Probes:\t%d\n", len(result.Outcomes))
	fmt.Fprintf(w, "Findings:\t%d unique\n\n", result.UniqueFindings)

	// Resumen por probe
	fmt.Fprintln(w, "PROBE\tSTATUS\tFINDINGS\tNOT FOUND\tDURATION")
	fmt.Fprintln(w, "-----\t------\t--------\t---------\t--------")
	for _, o := range result.Outcomes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			o.Probe, o.Status, len(o.Findings), len(o.NotFound), o.Duration.Round(timePrecision))
	}

	// Hallazgos consolidados
	if len(result.Findings) > 0 {
		fmt.Fprintln(w, "\nSTATUS\tPLATFORM\tURL\tSOURCES")
		fmt.Fprintln(w, "------\t--------\t---\t-------")
		for _, f := range result.Findings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				f.Status, f.Platform, findingTarget(f), strings.Join(f.Sources, ","))
		}
	} else {
		fmt.Fprintln(w, "No findings.")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	// Errores por probe
	if opts.IncludeErrors {
		for _, o := range result.Outcomes {
			if len(o.Errors) == 0 {
				continue
			}
			fmt.Fprintf(out, "\n❌ %s errors (%d):\n", o.Probe, len(o.Errors))
			for i, msg := range o.Errors {
				fmt.Fprintf(out, "  %d. %s\n", i+1, msg)
			}
		}
	}

	fmt.Fprintln(out)
	return nil
}

// findingTarget retorna la URL del hallazgo, o su identificador cuando
// el hallazgo no tiene URL.
func findingTarget(f *domain.Finding) string {
	if f.URL != "" {
		return f.URL
	}
	if ident := f.Metadata["identifier"]; ident != "" {
		return ident
	}
	return "-"
}
