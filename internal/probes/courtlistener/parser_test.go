package courtlistener

import (
	"fmt"
	"strings"
	"testing"

	"laelaps/internal/core/domain"
)

func TestParseOpinions(t *testing.T) {
	body := []byte(`{"results": [
		{"caseName": "Doe v. State", "court": "ca9", "dateFiled": "2023-01-15",
		 "docketNumber": "21-55555", "status": "Published",
		 "absolute_url": "/opinion/123/doe-v-state/", "snippet": "` + strings.Repeat("a", 350) + `"},
		{"caseName": "In re Doe", "court": "nysd"}
	]}`)

	findings, err := parseOpinions(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}

	first := findings[0]
	if first.URL != "https://www.courtlistener.com/opinion/123/doe-v-state/" {
		t.Errorf("unexpected URL: %q", first.URL)
	}
	if first.Metadata["court"] != "ca9" {
		t.Errorf("expected court metadata, got %v", first.Metadata)
	}
	if len(first.Metadata["snippet"]) != 300 {
		t.Errorf("snippet should be truncated to 300, got %d", len(first.Metadata["snippet"]))
	}
	if len(first.Tags) != 1 || first.Tags[0] != "court" {
		t.Errorf("expected 'court' tag, got %v", first.Tags)
	}

	second := findings[1]
	if second.URL != "" {
		t.Errorf("expected empty URL, got %q", second.URL)
	}
	if second.Metadata["identifier"] != "In re Doe" {
		t.Errorf("URL-less finding should carry the case name identifier, got %v", second.Metadata)
	}
}

func TestParseOpinions_Cap(t *testing.T) {
	recs := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		recs = append(recs, fmt.Sprintf(`{"caseName": "Case %d", "absolute_url": "/opinion/%d/"}`, i, i))
	}
	body := []byte(`{"results": [` + strings.Join(recs, ",") + `]}`)

	findings, err := parseOpinions(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != maxOpinions {
		t.Errorf("expected %d findings, got %d", maxOpinions, len(findings))
	}
}

func TestParseOpinions_InvalidJSON(t *testing.T) {
	if _, err := parseOpinions([]byte("<html>not json</html>")); err == nil {
		t.Error("expected parse error for non-JSON body")
	}
}

func TestParsePeople(t *testing.T) {
	body := []byte(`{"results": [
		{"name_full": "John Doe", "date_dob": "1970-01-01",
		 "positions": [{"position_type": "jud"}, {"position_type": ""}, {"position_type": "att"}],
		 "absolute_url": "/person/42/john-doe/"}
	]}`)

	findings, err := parsePeople(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.URL != "https://www.courtlistener.com/person/42/john-doe/" {
		t.Errorf("unexpected URL: %q", f.URL)
	}
	if f.Metadata["positions"] != "jud, att" {
		t.Errorf("empty positions should be dropped, got %q", f.Metadata["positions"])
	}
	if f.Metadata["born"] != "1970-01-01" {
		t.Errorf("expected born metadata, got %v", f.Metadata)
	}
	if len(f.Tags) != 2 || f.Tags[1] != "person" {
		t.Errorf("expected 'person' tag, got %v", f.Tags)
	}
}

func TestParseDockets_SkipsEntriesWithoutURL(t *testing.T) {
	body := []byte(`{"results": [
		{"case_name": "Doe v. Roe", "absolute_url": "/docket/7/doe-v-roe/"},
		{"case_name": "No URL here"}
	]}`)

	findings, err := parseDockets(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Metadata["case_name"] != "Doe v. Roe" {
		t.Errorf("unexpected metadata: %v", findings[0].Metadata)
	}
	if len(findings[0].Tags) != 2 || findings[0].Tags[1] != "docket" {
		t.Errorf("expected 'docket' tag, got %v", findings[0].Tags)
	}
}

func TestManualFindings(t *testing.T) {
	findings := manualFindings("John Doe")
	if len(findings) != 3 {
		t.Fatalf("expected 3 manual links, got %d", len(findings))
	}

	wantURLs := []string{
		"https://www.courtlistener.com/?q=John+Doe&type=o",
		"https://www.courtlistener.com/?q=John+Doe&type=r",
		"https://www.courtlistener.com/?q=John+Doe&type=p",
	}
	wantScopes := []string{"case law", "federal filings", "judges"}

	for i, f := range findings {
		if f.URL != wantURLs[i] {
			t.Errorf("link %d: expected %q, got %q", i, wantURLs[i], f.URL)
		}
		if f.Metadata["scope"] != wantScopes[i] {
			t.Errorf("link %d: expected scope %q, got %q", i, wantScopes[i], f.Metadata["scope"])
		}
		if f.Status != domain.FindingAmbiguous {
			t.Errorf("link %d: manual links are ambiguous, got %v", i, f.Status)
		}
		if !f.IdentityQuery {
			t.Errorf("link %d: manual links carry the identity in the query", i)
		}
	}
}
