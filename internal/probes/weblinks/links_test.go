package weblinks

import (
	"testing"

	"laelaps/internal/core/domain"
)

func findByPlatform(t *testing.T, findings []*domain.Finding, platform string) *domain.Finding {
	t.Helper()
	for _, f := range findings {
		if f.Platform == platform {
			return f
		}
	}
	t.Fatalf("no finding for platform %q", platform)
	return nil
}

func TestBuildPeopleSearch(t *testing.T) {
	findings := BuildPeopleSearch("John Doe", "")

	if len(findings) != 12 {
		t.Fatalf("expected 12 links, got %d", len(findings))
	}

	cases := []struct {
		platform string
		url      string
		tag      string
	}{
		{"TruePeopleSearch", "https://www.truepeoplesearch.com/results?name=John%20Doe", "free"},
		{"FastPeopleSearch", "https://www.fastpeoplesearch.com/name/John-Doe", "free"},
		{"Whitepages", "https://www.whitepages.com/name/john-doe", "free"},
		{"Spokeo", "https://www.spokeo.com/john-doe", "paid"},
		{"USSearch", "https://www.ussearch.com/search/results/people?firstName=john&lastName=doe", "paid"},
		{"Instagram", "https://www.instagram.com/johndoe/", "social"},
		{"Twitter/X", "https://twitter.com/search?q=John%20Doe&f=user", "social"},
	}

	for _, tc := range cases {
		f := findByPlatform(t, findings, tc.platform)
		if f.URL != tc.url {
			t.Errorf("%s: expected URL %q, got %q", tc.platform, tc.url, f.URL)
		}
		if len(f.Tags) != 1 || f.Tags[0] != tc.tag {
			t.Errorf("%s: expected tag %q, got %v", tc.platform, tc.tag, f.Tags)
		}
	}

	for _, f := range findings {
		if f.Status != domain.FindingAmbiguous {
			t.Errorf("%s: manual links are ambiguous, got %v", f.Platform, f.Status)
		}
		if !f.IdentityQuery {
			t.Errorf("%s: links carry the identity in the URL", f.Platform)
		}
	}
}

func TestBuildPeopleSearch_WithLocation(t *testing.T) {
	findings := BuildPeopleSearch("John Doe", "New Orleans LA")

	if len(findings) != 14 {
		t.Fatalf("expected 14 links with location variants, got %d", len(findings))
	}

	tps := findByPlatform(t, findings, "TruePeopleSearch (Location)")
	want := "https://www.truepeoplesearch.com/results?name=John%20Doe&citystatezip=New%20Orleans%20LA"
	if tps.URL != want {
		t.Errorf("expected %q, got %q", want, tps.URL)
	}

	wp := findByPlatform(t, findings, "Whitepages (Location)")
	want = "https://www.whitepages.com/name/john-doe/New%20Orleans%20LA"
	if wp.URL != want {
		t.Errorf("expected %q, got %q", want, wp.URL)
	}
}

func TestBuildPeopleSearch_SingleToken(t *testing.T) {
	findings := BuildPeopleSearch("Cher", "")

	wp := findByPlatform(t, findings, "Whitepages")
	if wp.URL != "https://www.whitepages.com/name/cher-cher" {
		t.Errorf("single token name should repeat for first-last, got %q", wp.URL)
	}

	ig := findByPlatform(t, findings, "Instagram")
	if ig.URL != "https://www.instagram.com/chercher/" {
		t.Errorf("unexpected instagram URL: %q", ig.URL)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"John Doe", "john", "doe"},
		{"John Michael Doe", "john", "doe"},
		{"  John   Doe  ", "john", "doe"},
		{"Cher", "cher", "cher"},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.name)
		if first != tt.first || last != tt.last {
			t.Errorf("splitName(%q) = (%q, %q), expected (%q, %q)",
				tt.name, first, last, tt.first, tt.last)
		}
	}
}
