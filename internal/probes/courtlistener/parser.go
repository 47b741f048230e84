package courtlistener

import (
	"encoding/json"
	"strings"

	"laelaps/internal/core/domain"
)

// parseOpinions converts the /search/ response into case findings,
// keeping the newest entries up to the cap.
func parseOpinions(body []byte) ([]*domain.Finding, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if len(results) > maxOpinions {
		results = results[:maxOpinions]
	}

	findings := make([]*domain.Finding, 0, len(results))
	for _, r := range results {
		u := ""
		if r.AbsoluteURL != "" {
			u = publicBase + r.AbsoluteURL
		}

		f := domain.NewFinding("CourtListener", u, probeName)
		f.AddTag("court")
		if u == "" {
			f.SetMeta("identifier", r.CaseName)
		}
		f.SetMeta("case_name", r.CaseName)
		f.SetMeta("court", r.Court)
		f.SetMeta("date_filed", r.DateFiled)
		f.SetMeta("docket_number", r.DocketNumber)
		f.SetMeta("status", r.Status)
		f.SetMeta("snippet", truncate(r.Snippet, 300))
		findings = append(findings, f)
	}

	return findings, nil
}

// parsePeople converts the /people/ response (judges, attorneys) into
// findings.
func parsePeople(body []byte) ([]*domain.Finding, error) {
	var resp peopleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if len(results) > maxPeople {
		results = results[:maxPeople]
	}

	findings := make([]*domain.Finding, 0, len(results))
	for _, p := range results {
		u := ""
		if p.AbsoluteURL != "" {
			u = publicBase + p.AbsoluteURL
		}

		f := domain.NewFinding("CourtListener", u, probeName)
		f.AddTag("court")
		f.AddTag("person")
		if u == "" {
			f.SetMeta("identifier", p.NameFull)
		}
		f.SetMeta("name", p.NameFull)
		f.SetMeta("born", p.DateDOB)

		positions := make([]string, 0, len(p.Positions))
		for _, pos := range p.Positions {
			if pos.PositionType != "" {
				positions = append(positions, pos.PositionType)
			}
		}
		f.SetMeta("positions", strings.Join(positions, ", "))

		findings = append(findings, f)
	}

	return findings, nil
}

// parseDockets converts the /dockets/ response into findings. Entries
// without a URL carry no usable reference and are skipped.
func parseDockets(body []byte) ([]*domain.Finding, error) {
	var resp docketResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if len(results) > maxDockets {
		results = results[:maxDockets]
	}

	findings := make([]*domain.Finding, 0, len(results))
	for _, d := range results {
		if d.AbsoluteURL == "" {
			continue
		}

		f := domain.NewFinding("CourtListener", publicBase+d.AbsoluteURL, probeName)
		f.AddTag("court")
		f.AddTag("docket")
		f.SetMeta("case_name", d.CaseName)
		findings = append(findings, f)
	}

	return findings, nil
}

// manualFindings builds the always-present manual search links for the
// three public search scopes.
func manualFindings(name string) []*domain.Finding {
	encoded := strings.ReplaceAll(name, " ", "+")

	scopes := []struct {
		code  string
		label string
	}{
		{"o", "case law"},
		{"r", "federal filings"},
		{"p", "judges"},
	}

	findings := make([]*domain.Finding, 0, len(scopes))
	for _, s := range scopes {
		f := domain.NewFinding("CourtListener search", publicBase+"/?q="+encoded+"&type="+s.code, probeName)
		f.Status = domain.FindingAmbiguous
		f.IdentityQuery = true
		f.AddTag("court")
		f.AddTag("manual")
		f.SetMeta("scope", s.label)
		findings = append(findings, f)
	}

	return findings
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// searchResponse modela la respuesta paginada de /search/.
type searchResponse struct {
	Results []opinionRecord `json:"results"`
}

type opinionRecord struct {
	CaseName     string `json:"caseName"`
	Court        string `json:"court"`
	DateFiled    string `json:"dateFiled"`
	DocketNumber string `json:"docketNumber"`
	Status       string `json:"status"`
	AbsoluteURL  string `json:"absolute_url"`
	Snippet      string `json:"snippet"`
}

type peopleResponse struct {
	Results []personRecord `json:"results"`
}

type personRecord struct {
	NameFull    string           `json:"name_full"`
	DateDOB     string           `json:"date_dob"`
	Positions   []positionRecord `json:"positions"`
	AbsoluteURL string           `json:"absolute_url"`
}

type positionRecord struct {
	PositionType string `json:"position_type"`
}

type docketResponse struct {
	Results []docketRecord `json:"results"`
}

type docketRecord struct {
	CaseName    string `json:"case_name"`
	AbsoluteURL string `json:"absolute_url"`
}
