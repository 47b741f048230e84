// internal/core/usecases/merge.go
package usecases

import (
	"laelaps/internal/core/domain"
)

// MergeService consolida hallazgos de múltiples probes en una colección
// deduplicada por URL canónica.
type MergeService struct{}

// NewMergeService crea una nueva instancia del servicio.
func NewMergeService() *MergeService {
	return &MergeService{}
}

// MergeOutcomes consolida los hallazgos de una lista de outcomes.
// El orden de outcomes define el orden de llegada de los hallazgos.
func (m *MergeService) MergeOutcomes(outcomes []*domain.ProbeOutcome) []*domain.Finding {
	var all []*domain.Finding
	for _, o := range outcomes {
		if o == nil {
			continue
		}
		all = append(all, o.Findings...)
	}
	return m.MergeFindings(all)
}

// MergeFindings elimina duplicados de una lista de hallazgos.
// El primer hallazgo con cada clave canónica define la identidad visible
// (plataforma, URL, status); los posteriores solo aportan sources, tags y
// metadata. El orden de inserción se preserva, así que la operación es
// idempotente y estable.
func (m *MergeService) MergeFindings(findings []*domain.Finding) []*domain.Finding {
	if len(findings) == 0 {
		return []*domain.Finding{}
	}

	seen := make(map[string]*domain.Finding, len(findings))
	merged := make([]*domain.Finding, 0, len(findings))

	for _, f := range findings {
		if f == nil || !f.IsValid() {
			continue
		}

		key := f.CanonicalURL()

		if existing, found := seen[key]; found {
			if err := existing.Merge(f); err != nil {
				continue
			}
		} else {
			seen[key] = f
			merged = append(merged, f)
		}
	}

	return merged
}

// FilterByStatus filtra hallazgos por status.
func (m *MergeService) FilterByStatus(findings []*domain.Finding, statuses ...domain.FindingStatus) []*domain.Finding {
	if len(statuses) == 0 {
		return findings
	}

	statusMap := make(map[domain.FindingStatus]bool)
	for _, s := range statuses {
		statusMap[s] = true
	}

	filtered := make([]*domain.Finding, 0)
	for _, f := range findings {
		if statusMap[f.Status] {
			filtered = append(filtered, f)
		}
	}

	return filtered
}

// FilterByPlatform filtra hallazgos reportados para una plataforma.
func (m *MergeService) FilterByPlatform(findings []*domain.Finding, platform string) []*domain.Finding {
	filtered := make([]*domain.Finding, 0)
	for _, f := range findings {
		if f.Platform == platform {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// FilterBySource filtra hallazgos reportados por una probe específica.
func (m *MergeService) FilterBySource(findings []*domain.Finding, source string) []*domain.Finding {
	filtered := make([]*domain.Finding, 0)
	for _, f := range findings {
		for _, s := range f.Sources {
			if s == source {
				filtered = append(filtered, f)
				break
			}
		}
	}
	return filtered
}

// GroupByPlatform agrupa hallazgos por plataforma.
func (m *MergeService) GroupByPlatform(findings []*domain.Finding) map[string][]*domain.Finding {
	groups := make(map[string][]*domain.Finding)
	for _, f := range findings {
		groups[f.Platform] = append(groups[f.Platform], f)
	}
	return groups
}

// UniqueCount retorna el número de claves canónicas distintas.
func (m *MergeService) UniqueCount(findings []*domain.Finding) int {
	seen := make(map[string]bool, len(findings))
	for _, f := range findings {
		if f == nil {
			continue
		}
		seen[f.CanonicalURL()] = true
	}
	return len(seen)
}
