// internal/core/ports/exporter.go
package ports

import (
	"io"

	"laelaps/internal/core/domain"
)

// Exporter es el port para exportar resultados en diferentes formatos.
type Exporter interface {
	// Name retorna el nombre del exporter (ej: "json", "table")
	Name() string

	// SupportedFormats retorna los formatos soportados por el exporter
	SupportedFormats() []string

	// Export exporta el resultado agregado de una ronda de sondas
	Export(result *domain.AggregatedResult, opts ExportOptions) error
}

// InvestigationExporter permite exportar el estado de una investigación guiada.
type InvestigationExporter interface {
	Exporter

	// ExportInvestigation exporta el estado acumulado de una investigación
	ExportInvestigation(state *domain.InvestigationState, opts ExportOptions) error
}

// WriterExporter permite exportar a cualquier io.Writer.
type WriterExporter interface {
	Exporter

	// ExportToWriter exporta el resultado a un Writer personalizado
	ExportToWriter(result *domain.AggregatedResult, writer io.Writer, opts ExportOptions) error
}

// ExportOptions configura las opciones de exportación.
type ExportOptions struct {
	// OutputPath ruta donde guardar el resultado (puede ser vacío para stdout)
	OutputPath string

	// Format formato específico (json, table)
	Format string

	// Pretty indica si el output debe ser formateado para legibilidad humana
	Pretty bool

	// IncludeMetadata si se debe incluir metadata de la ronda
	IncludeMetadata bool

	// IncludeErrors si se deben incluir errores y ausencias por sonda
	IncludeErrors bool

	// FilterByStatus filtra findings por estado (vacío = todos)
	FilterByStatus []domain.FindingStatus

	// Metadata adicional para el export
	Metadata map[string]string
}

// DefaultExportOptions retorna opciones por defecto.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		OutputPath:      "",
		Format:          "json",
		Pretty:          true,
		IncludeMetadata: true,
		IncludeErrors:   true,
		FilterByStatus:  []domain.FindingStatus{},
		Metadata:        make(map[string]string),
	}
}

// ExporterFactory es una función que crea una instancia de Exporter.
type ExporterFactory func() (Exporter, error)
