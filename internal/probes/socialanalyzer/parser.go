package socialanalyzer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"laelaps/internal/core/domain"
)

// analyzerReport modela el documento JSON embebido en stdout.
type analyzerReport struct {
	Detected []detectedProfile `json:"detected"`
}

type detectedProfile struct {
	Name      string                 `json:"name"`
	URL       string                 `json:"url"`
	Status    string                 `json:"status"`
	Extracted map[string]interface{} `json:"extracted"`
}

// parseOutput extracts the JSON document embedded in social-analyzer
// stdout (first "{" through last "}") and converts detected profiles
// into findings. When the document does not decode, found URLs are
// recovered by scanning lines that mention the username.
func parseOutput(output, username string) (findings []*domain.Finding, errs []string) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return nil, nil
	}

	var report analyzerReport
	if err := json.Unmarshal([]byte(output[start:end+1]), &report); err != nil {
		findings = fallbackScan(output, username)
		if len(findings) == 0 {
			errs = append(errs, fmt.Sprintf("failed to parse report: %v", err))
		}
		return findings, errs
	}

	for _, p := range report.Detected {
		name := p.Name
		if name == "" {
			name = "Unknown"
		}

		f := domain.NewFinding(name, p.URL, probeName)
		if p.URL == "" {
			f.SetMeta("identifier", username)
		}
		f.SetMeta("status", p.Status)
		for _, key := range sortedKeys(p.Extracted) {
			f.SetMeta("extracted_"+key, fmt.Sprintf("%v", p.Extracted[key]))
		}
		findings = append(findings, f)
	}

	return findings, nil
}

// fallbackScan recovers profile URLs from raw stdout lines carrying
// both a URL and the username.
func fallbackScan(output, username string) []*domain.Finding {
	var findings []*domain.Finding
	lower := strings.ToLower(username)

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.Contains(line, "http") || !strings.Contains(strings.ToLower(line), lower) {
			continue
		}
		findings = append(findings, domain.NewFinding("Unknown", line, probeName))
	}

	return findings
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
