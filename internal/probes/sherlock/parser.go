package sherlock

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"laelaps/internal/core/domain"
)

// siteReport modela la entrada por sitio del reporte JSON de sherlock.
type siteReport struct {
	Status       string  `json:"status"`
	URLUser      string  `json:"url_user"`
	ResponseTime float64 `json:"response_time_s"`
}

// parseReport parses the per-site JSON report written by sherlock.
// Claimed entries become confirmed findings, Available entries become
// not-found platforms, and any other status is recorded as an error.
func parseReport(data []byte) (findings []*domain.Finding, notFound []string, errs []string) {
	var sites map[string]siteReport
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, nil, []string{fmt.Sprintf("failed to parse report: %v", err)}
	}

	// Sites are iterated in sorted order so outcomes are reproducible.
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, site := range names {
		info := sites[site]
		switch info.Status {
		case "Claimed":
			f := domain.NewFinding(site, info.URLUser, probeName)
			if info.ResponseTime > 0 {
				f.SetMeta("response_time_s", strconv.FormatFloat(info.ResponseTime, 'f', 2, 64))
			}
			findings = append(findings, f)
		case "Available":
			notFound = append(notFound, site)
		default:
			status := info.Status
			if status == "" {
				status = "Unknown"
			}
			errs = append(errs, fmt.Sprintf("%s: %s", site, status))
		}
	}

	return findings, notFound, errs
}

// mergeStdoutFindings scans sherlock stdout for "[+]" lines and appends
// any profile URLs the JSON report missed. Lines look like:
//
//	[+] GitHub: https://github.com/user
func mergeStdoutFindings(findings []*domain.Finding, stdout string) []*domain.Finding {
	if stdout == "" {
		return findings
	}

	seen := make(map[string]bool, len(findings))
	for _, f := range findings {
		seen[f.URL] = true
	}

	for _, line := range strings.Split(stdout, "\n") {
		if !strings.Contains(line, "[+]") || !strings.Contains(line, "http") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if !strings.HasPrefix(field, "http") || seen[field] {
				continue
			}
			seen[field] = true
			findings = append(findings, domain.NewFinding("Unknown", field, probeName))
		}
	}

	return findings
}
