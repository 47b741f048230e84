package weblinks

import "testing"

func TestBuildPhoneLookups(t *testing.T) {
	findings := BuildPhoneLookups("+1 (504) 233-1234")

	if len(findings) != 4 {
		t.Fatalf("expected 4 lookup links, got %d", len(findings))
	}

	truecaller := findByPlatform(t, findings, "TrueCaller")
	if truecaller.URL != "https://www.truecaller.com/search/us/5042331234" {
		t.Errorf("unexpected TrueCaller URL: %q", truecaller.URL)
	}

	for _, f := range findings {
		if f.Metadata["area_code"] != "504" {
			t.Errorf("%s: expected area code 504, got %v", f.Platform, f.Metadata)
		}
		if f.Metadata["city"] != "New Orleans" || f.Metadata["state"] != "LA" {
			t.Errorf("%s: expected New Orleans LA, got %v", f.Platform, f.Metadata)
		}
		if len(f.Tags) != 1 || f.Tags[0] != "phone" {
			t.Errorf("%s: expected phone tag, got %v", f.Platform, f.Tags)
		}
	}
}

func TestBuildPhoneLookups_UnknownAreaCode(t *testing.T) {
	findings := BuildPhoneLookups("9995551234")

	if findings[0].Metadata["city"] != "Unknown" {
		t.Errorf("unknown area codes locate as Unknown, got %v", findings[0].Metadata)
	}
}

func TestBuildPhoneLookups_ShortNumber(t *testing.T) {
	findings := BuildPhoneLookups("12345")

	if len(findings) != 4 {
		t.Fatalf("short numbers still get lookup links, got %d", len(findings))
	}
	if _, ok := findings[0].Metadata["city"]; ok {
		t.Errorf("short numbers carry no location, got %v", findings[0].Metadata)
	}
}

func TestCleanPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+1 (504) 233-1234", "5042331234"},
		{"15042331234", "5042331234"},
		{"504-233-1234", "5042331234"},
		{"5042331234", "5042331234"},
		{"+44 20 7946 0958", "+442079460958"},
	}

	for _, tt := range tests {
		if got := cleanPhone(tt.in); got != tt.want {
			t.Errorf("cleanPhone(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
