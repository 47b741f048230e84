package maigret

import (
	"encoding/json"
	"fmt"
	"sort"

	"laelaps/internal/core/domain"
)

// siteEntry modela la entrada por sitio del reporte "simple" de maigret.
type siteEntry struct {
	Status  string                 `json:"status"`
	Exists  bool                   `json:"exists"`
	URL     string                 `json:"url"`
	URLUser string                 `json:"url_user"`
	Tags    []string               `json:"tags"`
	IDs     map[string]interface{} `json:"ids"`
}

// parseReport parses the maigret simple JSON report. A site counts as a
// hit when its status is Claimed or the exists flag is set; every other
// site is reported as not found.
func parseReport(data []byte) (findings []*domain.Finding, notFound []string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, site := range names {
		var info siteEntry
		if err := json.Unmarshal(raw[site], &info); err != nil {
			// Non-object entries (maigret metadata keys) are skipped
			continue
		}

		if info.Status != "Claimed" && !info.Exists {
			notFound = append(notFound, site)
			continue
		}

		url := info.URL
		if url == "" {
			url = info.URLUser
		}

		f := domain.NewFinding(site, url, probeName)
		for _, tag := range info.Tags {
			f.AddTag(tag)
		}
		for _, key := range sortedKeys(info.IDs) {
			f.SetMeta("id_"+key, fmt.Sprintf("%v", info.IDs[key]))
		}
		findings = append(findings, f)
	}

	return findings, notFound
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
