package socialscan

import (
	"strings"

	"laelaps/internal/core/domain"
)

// parseOutput parses socialscan stdout. Relevant lines carry the queried
// value and look like "Platform: Taken" or "Platform: Available". Taken
// handles become ambiguous findings keyed by the queried value since
// socialscan does not expose profile URLs; available handles are
// reported as not found.
func parseOutput(output, query string) (findings []*domain.Finding, notFound []string) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, query) {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}

		platform := strings.TrimSpace(parts[0])
		status := strings.ToLower(strings.TrimSpace(parts[1]))
		if platform == "" {
			continue
		}

		switch {
		case strings.Contains(status, "taken"), strings.Contains(status, "claimed"):
			f := domain.NewFinding(platform, "", probeName)
			f.Status = domain.FindingAmbiguous
			f.SetMeta("identifier", query)
			findings = append(findings, f)
		case strings.Contains(status, "available"):
			notFound = append(notFound, platform)
		}
	}

	return findings, notFound
}
