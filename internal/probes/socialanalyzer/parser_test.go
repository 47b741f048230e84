package socialanalyzer

import (
	"testing"
)

func TestParseOutput(t *testing.T) {
	output := `[!] social-analyzer starting up
{"detected": [
		{"name": "GitHub", "url": "https://github.com/johndoe", "status": "good", "extracted": {"followers": 42}},
		{"name": "", "url": "https://pastebin.com/u/johndoe", "status": "maybe"}
	]}
trailing banner`

	findings, errs := parseOutput(output, "johndoe")

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}

	github := findings[0]
	if github.Platform != "GitHub" {
		t.Errorf("unexpected platform: %q", github.Platform)
	}
	if github.URL != "https://github.com/johndoe" {
		t.Errorf("unexpected URL: %q", github.URL)
	}
	if github.Metadata["status"] != "good" {
		t.Errorf("expected status metadata, got %v", github.Metadata)
	}
	if github.Metadata["extracted_followers"] != "42" {
		t.Errorf("expected extracted metadata, got %v", github.Metadata)
	}

	if findings[1].Platform != "Unknown" {
		t.Errorf("missing name should default to Unknown, got %q", findings[1].Platform)
	}
}

func TestParseOutput_FallbackOnBrokenJSON(t *testing.T) {
	output := `starting up {broken json
https://github.com/JohnDoe
https://unrelated.example.com/other
[+] found JohnDoe on https://gitlab.com/johndoe }`

	findings, errs := parseOutput(output, "johndoe")

	if len(errs) != 0 {
		t.Fatalf("fallback recovered URLs, expected no errors: %v", errs)
	}
	if len(findings) != 2 {
		t.Fatalf("expected 2 fallback findings, got %d: %v", len(findings), findings)
	}
	if findings[0].URL != "https://github.com/JohnDoe" {
		t.Errorf("unexpected URL: %q", findings[0].URL)
	}
	if findings[0].Platform != "Unknown" {
		t.Errorf("fallback findings carry Unknown platform, got %q", findings[0].Platform)
	}
}

func TestParseOutput_NoJSON(t *testing.T) {
	findings, errs := parseOutput("no braces in this output", "johndoe")

	if findings != nil || errs != nil {
		t.Error("output without JSON should produce nothing")
	}
}

func TestParseOutput_BrokenJSONNoRecovery(t *testing.T) {
	findings, errs := parseOutput("{broken and no urls}", "johndoe")

	if len(findings) != 0 {
		t.Errorf("expected no findings, got %v", findings)
	}
	if len(errs) != 1 {
		t.Errorf("expected a parse error, got %v", errs)
	}
}
