package holehe

import (
	"strings"

	"laelaps/internal/core/domain"
)

// parseOutput parses holehe stdout. Lines are tagged with a marker:
//
//	[+] service        the email is registered there
//	[-] service        the email is not registered
//	[x] service        the check failed or was rate limited
//
// Registered services carry a synthesized https://<service>.com URL.
func parseOutput(output string) (findings []*domain.Finding, notRegistered []string, errs []string) {
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "[+]"):
			service, details := splitMarkerLine(line, "[+]")
			if service == "" {
				continue
			}
			f := domain.NewFinding(service, serviceURL(service), probeName)
			f.SetMeta("details", details)
			findings = append(findings, f)

		case strings.Contains(line, "[-]"):
			service, _ := splitMarkerLine(line, "[-]")
			if service != "" {
				notRegistered = append(notRegistered, service)
			}

		case strings.Contains(line, "[x]"):
			service, _ := splitMarkerLine(line, "[x]")
			if service != "" {
				errs = append(errs, service)
			}
		}
	}

	return findings, notRegistered, errs
}

// splitMarkerLine strips the marker and splits "service: details".
func splitMarkerLine(line, marker string) (service, details string) {
	rest := strings.TrimSpace(strings.Replace(line, marker, "", 1))
	parts := strings.SplitN(rest, ":", 2)
	service = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		details = strings.TrimSpace(parts[1])
	}
	return service, details
}

// serviceURL synthesizes a site URL from a holehe service name.
func serviceURL(service string) string {
	host := strings.ReplaceAll(strings.ToLower(service), " ", "")
	return "https://" + host + ".com"
}
