package socialscan

import (
	"testing"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

func TestNew(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if probe.Name() != "socialscan" {
		t.Errorf("expected name 'socialscan', got %q", probe.Name())
	}
	if probe.Kind() != domain.ProbeKindCLI {
		t.Errorf("expected CLI kind, got %v", probe.Kind())
	}
	if probe.Attribute() != domain.AttributeUsername {
		t.Errorf("expected username attribute, got %v", probe.Attribute())
	}
	if probe.Timeout() != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", probe.Timeout())
	}
}

func TestParseOutput(t *testing.T) {
	output := `Checking johndoe...
Twitter (johndoe): Taken
GitHub (johndoe): Available
Instagram (johndoe): Claimed by another user
Pinterest (other): Taken
noise line without separator`

	findings, notFound := parseOutput(output, "johndoe")

	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d: %v", len(findings), findings)
	}
	if findings[0].Platform != "Twitter (johndoe)" {
		t.Errorf("unexpected platform: %q", findings[0].Platform)
	}
	if findings[0].Status != domain.FindingAmbiguous {
		t.Errorf("taken handles are ambiguous, got %v", findings[0].Status)
	}
	if findings[0].URL != "" {
		t.Errorf("socialscan findings carry no URL, got %q", findings[0].URL)
	}
	if findings[0].Metadata["identifier"] != "johndoe" {
		t.Errorf("expected identifier metadata for dedup, got %v", findings[0].Metadata)
	}

	if len(notFound) != 1 || notFound[0] != "GitHub (johndoe)" {
		t.Errorf("expected available platform as not-found, got %v", notFound)
	}
}

func TestParseOutput_IgnoresUnrelatedLines(t *testing.T) {
	findings, notFound := parseOutput("Pinterest (other): Taken\n", "johndoe")

	if len(findings) != 0 || len(notFound) != 0 {
		t.Errorf("lines without the query should be skipped: %v %v", findings, notFound)
	}
}

func TestParseOutput_Empty(t *testing.T) {
	findings, notFound := parseOutput("", "johndoe")

	if findings != nil || notFound != nil {
		t.Error("empty output should produce nothing")
	}
}
