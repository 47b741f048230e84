package theharvester

import (
	"testing"
)

const sampleOutput = `*******************************************************************
[*] Target: example.com
[*] Searching Google.

[*] Emails found: 2
----------------------
admin@example.com
info@example.com
not-an-email-line

[*] Hosts found: 2
---------------------
mail.example.com
www.example.com

[*] IPs found: 1
-------------------
93.184.216.34
not.an.ip.row

[*] URLs found: 1
--------------------
https://example.com/about
ftp-only-row

[*] LinkedIn
---------------------
Jane Smith - Engineer

[-] No more results
stray line after reset`

func TestParseOutput(t *testing.T) {
	h := parseOutput(sampleOutput)

	if len(h.Emails) != 2 {
		t.Errorf("expected 2 emails, got %v", h.Emails)
	}
	if len(h.Hosts) != 2 || h.Hosts[0] != "mail.example.com" {
		t.Errorf("expected 2 hosts, got %v", h.Hosts)
	}
	if len(h.IPs) != 1 || h.IPs[0] != "93.184.216.34" {
		t.Errorf("expected 1 IP, got %v", h.IPs)
	}
	if len(h.URLs) != 1 || h.URLs[0] != "https://example.com/about" {
		t.Errorf("expected 1 URL, got %v", h.URLs)
	}
	if len(h.People) != 1 || h.People[0] != "Jane Smith - Engineer" {
		t.Errorf("expected 1 person, got %v", h.People)
	}
}

func TestParseOutput_Empty(t *testing.T) {
	h := parseOutput("")

	if len(h.Emails)+len(h.Hosts)+len(h.IPs)+len(h.URLs)+len(h.People) != 0 {
		t.Errorf("empty output should harvest nothing: %+v", h)
	}
}

func TestAccumulator_DedupsAcrossSources(t *testing.T) {
	acc := newAccumulator()

	acc.add(harvest{Emails: []string{"admin@example.com"}, Hosts: []string{"www.example.com"}})
	acc.add(harvest{Emails: []string{"ADMIN@example.com", "info@example.com"}})

	if len(acc.total.Emails) != 2 {
		t.Errorf("case-insensitive dedup expected 2 emails, got %v", acc.total.Emails)
	}
	if len(acc.total.Hosts) != 1 {
		t.Errorf("expected 1 host, got %v", acc.total.Hosts)
	}
}

func TestAccumulator_Findings(t *testing.T) {
	acc := newAccumulator()
	acc.add(harvest{
		Emails: []string{"admin@example.com"},
		Hosts:  []string{"mail.example.com"},
		URLs:   []string{"https://example.com/team"},
		People: []string{"Jane Smith"},
	})

	findings := acc.findings()

	if len(findings) != 4 {
		t.Fatalf("expected 4 findings, got %d", len(findings))
	}

	email := findings[0]
	if email.Platform != "Email" || email.Metadata["email"] != "admin@example.com" {
		t.Errorf("unexpected email finding: %+v", email)
	}
	if email.URL != "" {
		t.Errorf("email findings carry no URL, got %q", email.URL)
	}

	u := findings[2]
	if u.Platform != "URL" || u.URL != "https://example.com/team" {
		t.Errorf("URL finding keeps the real URL: %+v", u)
	}
	if len(u.Tags) != 1 || u.Tags[0] != "url" {
		t.Errorf("expected url tag, got %v", u.Tags)
	}
}
