package holehe

import (
	"testing"
)

func TestParseOutput(t *testing.T) {
	output := `***********************
   user@example.com
***********************
[+] twitter
[+] adobe : used for creative cloud
[-] github
[x] instagram : rate limited
`

	findings, notRegistered, errs := parseOutput(output)

	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Platform != "twitter" {
		t.Errorf("unexpected platform: %q", findings[0].Platform)
	}
	if findings[0].URL != "https://twitter.com" {
		t.Errorf("unexpected synthesized URL: %q", findings[0].URL)
	}
	if findings[1].Platform != "adobe" {
		t.Errorf("unexpected platform: %q", findings[1].Platform)
	}
	if findings[1].Metadata["details"] != "used for creative cloud" {
		t.Errorf("expected details metadata, got %v", findings[1].Metadata)
	}

	if len(notRegistered) != 1 || notRegistered[0] != "github" {
		t.Errorf("expected not-registered [github], got %v", notRegistered)
	}
	if len(errs) != 1 || errs[0] != "instagram" {
		t.Errorf("expected errors [instagram], got %v", errs)
	}
}

func TestParseOutput_Empty(t *testing.T) {
	findings, notRegistered, errs := parseOutput("")

	if findings != nil || notRegistered != nil || errs != nil {
		t.Error("empty output should produce nothing")
	}
}

func TestServiceURL(t *testing.T) {
	tests := []struct {
		service string
		want    string
	}{
		{"twitter", "https://twitter.com"},
		{"Creative Cloud", "https://creativecloud.com"},
		{"GitHub", "https://github.com"},
	}

	for _, tt := range tests {
		if got := serviceURL(tt.service); got != tt.want {
			t.Errorf("serviceURL(%q) = %q, want %q", tt.service, got, tt.want)
		}
	}
}
