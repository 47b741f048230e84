// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
)

// sanitizeSubjectLabel convierte la etiqueta del sujeto en un nombre de
// carpeta válido. Ejemplo: "John Doe" -> "John_Doe", "a@b.com" -> "a_b_com"
func sanitizeSubjectLabel(label string) string {
	sanitized := strings.ReplaceAll(strings.TrimSpace(label), ".", "_")
	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, sanitized)
	return sanitized
}

// JSONExporter exporta resultados en JSON, con la misma estructura que
// expone el API HTTP. Implementa ports.InvestigationExporter y
// ports.WriterExporter.
type JSONExporter struct{}

// NewJSONExporter crea un exporter JSON.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Name retorna el nombre del exporter.
func (e *JSONExporter) Name() string {
	return "json"
}

// SupportedFormats retorna los formatos soportados.
func (e *JSONExporter) SupportedFormats() []string {
	return []string{"json"}
}

// Export escribe el resultado de una ronda. Con OutputPath vacío escribe
// a stdout; con ruta, crea <dir>/<sujeto>/laelaps_<sujeto>_<timestamp>.json.
func (e *JSONExporter) Export(result *domain.AggregatedResult, opts ports.ExportOptions) error {
	payload := roundPayload(result, opts)
	if opts.OutputPath == "" {
		return encodeJSON(os.Stdout, payload, opts.Pretty)
	}
	return writeTimestamped(opts.OutputPath, result.Subject.Label(), payload, opts.Pretty)
}

// ExportInvestigation escribe el estado completo de una investigación.
func (e *JSONExporter) ExportInvestigation(state *domain.InvestigationState, opts ports.ExportOptions) error {
	if opts.OutputPath == "" {
		return encodeJSON(os.Stdout, state, opts.Pretty)
	}
	return writeTimestamped(opts.OutputPath, state.Subject.Label(), state, opts.Pretty)
}

// ExportToWriter escribe el resultado a un Writer arbitrario.
func (e *JSONExporter) ExportToWriter(result *domain.AggregatedResult, writer io.Writer, opts ports.ExportOptions) error {
	return encodeJSON(writer, roundPayload(result, opts), opts.Pretty)
}

// roundPayload aplica el filtro de estados sin mutar el resultado
// original: los findings filtrados viven en una copia superficial.
func roundPayload(result *domain.AggregatedResult, opts ports.ExportOptions) *domain.AggregatedResult {
	if len(opts.FilterByStatus) == 0 {
		return result
	}

	keep := make(map[domain.FindingStatus]bool, len(opts.FilterByStatus))
	for _, s := range opts.FilterByStatus {
		keep[s] = true
	}

	filtered := *result
	filtered.Findings = make([]*domain.Finding, 0, len(result.Findings))
	for _, f := range result.Findings {
		if keep[f.Status] {
			filtered.Findings = append(filtered.Findings, f)
		}
	}
	filtered.UniqueFindings = len(filtered.Findings)

	return &filtered
}

// writeTimestamped crea el subdirectorio del sujeto y escribe el archivo
// con timestamp en el nombre.
func writeTimestamped(dir, label string, payload interface{}, pretty bool) error {
	subject := sanitizeSubjectLabel(label)
	fullDir := filepath.Join(dir, subject)

	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("laelaps_%s_%s.json", subject, timestamp)

	f, err := os.Create(filepath.Join(fullDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return encodeJSON(f, payload, pretty)
}

func encodeJSON(w io.Writer, payload interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
