package phoneinfoga

import (
	"encoding/json"
	"strconv"
	"strings"

	"laelaps/internal/core/domain"
)

// scanReport modela el JSON que phoneinfoga escribe con -o.
type scanReport struct {
	RawLocal      string      `json:"rawLocal"`
	International string      `json:"international"`
	Country       string      `json:"country"`
	Carrier       string      `json:"carrier"`
	LineType      string      `json:"lineType"`
	Valid         bool        `json:"valid"`
	GoogleSearch  []googleHit `json:"googlesearch"`
}

type googleHit struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// parseReport decodes the phoneinfoga JSON report.
func parseReport(data []byte) (scanReport, bool) {
	var rep scanReport
	if err := json.Unmarshal(data, &rep); err != nil {
		return scanReport{}, false
	}
	return rep, true
}

// applyStdout overrides report fields with values announced on stdout.
// phoneinfoga prints "Carrier: X" style lines that are fresher than the
// report file on some scanner combinations.
func applyStdout(rep *scanReport, stdout string) {
	for _, line := range strings.Split(stdout, "\n") {
		switch {
		case strings.Contains(line, "Carrier:"):
			rep.Carrier = strings.TrimSpace(strings.SplitN(line, "Carrier:", 2)[1])
		case strings.Contains(line, "Country:"):
			rep.Country = strings.TrimSpace(strings.SplitN(line, "Country:", 2)[1])
		case strings.Contains(line, "Line type:"), strings.Contains(line, "LineType:"):
			parts := strings.SplitN(line, ":", 2)
			rep.LineType = strings.TrimSpace(parts[1])
		}
	}
}

// summaryFinding builds the single summary finding for the number. A
// number the tool validated is a confirmed hit; otherwise ambiguous.
func summaryFinding(rep scanReport, phone string) *domain.Finding {
	f := domain.NewFinding("PhoneInfoga", "", probeName)
	if !rep.Valid {
		f.Status = domain.FindingAmbiguous
	}
	f.AddTag("phone")
	f.SetMeta("identifier", phone)
	f.SetMeta("raw_local", rep.RawLocal)
	f.SetMeta("international", rep.International)
	f.SetMeta("country", rep.Country)
	f.SetMeta("carrier", rep.Carrier)
	f.SetMeta("line_type", rep.LineType)
	f.SetMeta("valid", strconv.FormatBool(rep.Valid))
	f.SetMeta("google_dorks", strings.Join(buildDorks(phone), "; "))
	return f
}

// googleFindings converts googlesearch scanner hits into URL findings.
func googleFindings(hits []googleHit) []*domain.Finding {
	var findings []*domain.Finding
	for _, hit := range hits {
		if hit.URL == "" {
			continue
		}
		f := domain.NewFinding("Google", hit.URL, probeName)
		f.AddTag("phone")
		f.SetMeta("title", hit.Title)
		f.SetMeta("snippet", truncate(hit.Snippet, 300))
		findings = append(findings, f)
	}
	return findings
}

// buildDorks generates Google dork strings for manual phone searches.
// Site-scoped dorks keep the number as typed; the rest use the cleaned
// digits form.
func buildDorks(phone string) []string {
	clean := strings.NewReplacer("-", "", " ", "", "(", "", ")", "").Replace(phone)
	return []string{
		`"` + clean + `"`,
		`"` + phone + `" site:facebook.com`,
		`"` + phone + `" site:linkedin.com`,
		`"` + phone + `" site:twitter.com`,
		`"` + clean + `" intext:contact`,
		`"` + clean + `" filetype:pdf`,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
