package h8mail

import (
	"encoding/json"
	"strings"

	"laelaps/internal/core/domain"
)

// report modela el JSON que h8mail escribe con -j.
type report struct {
	Targets []target `json:"targets"`
}

type target struct {
	Target string        `json:"target"`
	Data   []breachEntry `json:"data"`
}

type breachEntry struct {
	Source string `json:"source"`
	Breach string `json:"breach"`
	Data   string `json:"data"`
	Date   string `json:"date"`
}

// parseReport parses the h8mail JSON report. Each breach entry becomes
// a URL-less finding tagged "breach"; targets other than the queried
// email become ambiguous "Related email" findings tagged "chase".
func parseReport(data []byte, queried string) []*domain.Finding {
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil
	}

	var findings []*domain.Finding
	seenRelated := make(map[string]bool)

	for _, t := range rep.Targets {
		if t.Target != "" && t.Target != queried && !seenRelated[t.Target] {
			seenRelated[t.Target] = true
			f := domain.NewFinding("Related email", "", probeName)
			f.Status = domain.FindingAmbiguous
			f.AddTag("chase")
			f.SetMeta("identifier", t.Target)
			f.SetMeta("email", t.Target)
			findings = append(findings, f)
		}

		for _, b := range t.Data {
			findings = append(findings, breachFinding(b))
		}
	}

	return findings
}

// breachFinding converts one breach entry into a finding. Credentials
// in the breach data are replaced by a masked form; the raw string is
// dropped when it matches the email:password shape.
func breachFinding(b breachEntry) *domain.Finding {
	source := b.Source
	if source == "" {
		source = "Unknown"
	}

	f := domain.NewFinding(source, "", probeName)
	f.AddTag("breach")
	f.SetMeta("breach", b.Breach)
	f.SetMeta("date", b.Date)

	masked, isCredential := maskCredential(b.Data)
	if isCredential {
		f.SetMeta("leak", masked)
	} else {
		f.SetMeta("data", b.Data)
	}

	switch {
	case b.Breach != "":
		f.SetMeta("identifier", b.Breach)
	case isCredential:
		f.SetMeta("identifier", masked)
	case b.Data != "":
		f.SetMeta("identifier", b.Data)
	default:
		f.SetMeta("identifier", b.Date)
	}

	return f
}

// parseStdout scans h8mail stdout for breach mentions not present in
// the JSON report.
func parseStdout(output string) []*domain.Finding {
	var findings []*domain.Finding

	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "[+]") || !strings.Contains(strings.ToLower(line), "breach") {
			continue
		}

		text := strings.TrimSpace(strings.Replace(line, "[+]", "", 1))
		if text == "" {
			continue
		}
		if masked, isCredential := maskCredential(text); isCredential {
			text = masked
		}

		f := domain.NewFinding("Unknown", "", probeName)
		f.AddTag("breach")
		f.SetMeta("identifier", text)
		f.SetMeta("data", text)
		findings = append(findings, f)
	}

	return findings
}

// maskCredential detects the email:password shape and masks the
// password, keeping at most its first three characters.
func maskCredential(data string) (masked string, isCredential bool) {
	if !strings.Contains(data, ":") {
		return "", false
	}

	parts := strings.Split(data, ":")
	if !strings.Contains(parts[0], "@") {
		return "", false
	}

	password := parts[len(parts)-1]
	if password == "" {
		return "", false
	}

	if len(password) > 3 {
		return parts[0] + ":" + password[:3] + "***", true
	}
	return parts[0] + ":***", true
}
