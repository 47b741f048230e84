package theharvester

import (
	"strings"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/validator"
)

// harvest agrupa los resultados de una ejecución por secciones.
type harvest struct {
	Emails []string
	Hosts  []string
	IPs    []string
	URLs   []string
	People []string
}

// parseOutput parses theHarvester stdout. Output is organized in
// sections announced by headers ("Emails found", "[*] Hosts", ...);
// every non-separator line under a header belongs to that section until
// the next "[*]" or "[-]" marker resets it.
func parseOutput(output string) harvest {
	var h harvest
	section := ""

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "Emails found") || strings.Contains(line, "[*] Emails"):
			section = "emails"
		case strings.Contains(line, "Hosts found") || strings.Contains(line, "[*] Hosts"):
			section = "hosts"
		case strings.Contains(line, "IPs found") || strings.Contains(line, "[*] IPs"):
			section = "ips"
		case strings.Contains(line, "URLs found"):
			section = "urls"
		case strings.Contains(line, "People found") || strings.Contains(line, "[*] LinkedIn"):
			section = "people"
		case strings.HasPrefix(line, "[*]") || strings.HasPrefix(line, "[-]"):
			section = ""
		case section != "" && !strings.HasPrefix(line, "-"):
			switch section {
			case "emails":
				if strings.Contains(line, "@") {
					h.Emails = append(h.Emails, line)
				}
			case "hosts":
				h.Hosts = append(h.Hosts, line)
			case "ips":
				if validator.IsIP(line) {
					h.IPs = append(h.IPs, line)
				}
			case "urls":
				if strings.Contains(line, "http") {
					h.URLs = append(h.URLs, line)
				}
			case "people":
				h.People = append(h.People, line)
			}
		}
	}

	return h
}

// accumulator dedups harvest values across sources preserving insertion
// order.
type accumulator struct {
	total harvest
	seen  map[string]bool
}

func newAccumulator() *accumulator {
	return &accumulator{seen: make(map[string]bool)}
}

func (a *accumulator) add(h harvest) {
	a.total.Emails = a.appendNew("email", a.total.Emails, h.Emails)
	a.total.Hosts = a.appendNew("host", a.total.Hosts, h.Hosts)
	a.total.IPs = a.appendNew("ip", a.total.IPs, h.IPs)
	a.total.URLs = a.appendNew("url", a.total.URLs, h.URLs)
	a.total.People = a.appendNew("person", a.total.People, h.People)
}

func (a *accumulator) appendNew(category string, dst, values []string) []string {
	for _, v := range values {
		key := category + ":" + strings.ToLower(v)
		if a.seen[key] {
			continue
		}
		a.seen[key] = true
		dst = append(dst, v)
	}
	return dst
}

// findings converts the accumulated harvest into findings. Each value
// is typed by its section through the platform label and a tag; URL
// rows carry the real URL, everything else is keyed by identifier.
func (a *accumulator) findings() []*domain.Finding {
	var out []*domain.Finding

	for _, e := range a.total.Emails {
		f := domain.NewFinding("Email", "", probeName)
		f.AddTag("email")
		f.SetMeta("identifier", e)
		f.SetMeta("email", e)
		out = append(out, f)
	}
	for _, host := range a.total.Hosts {
		f := domain.NewFinding("Host", "", probeName)
		f.AddTag("host")
		f.SetMeta("identifier", host)
		out = append(out, f)
	}
	for _, ip := range a.total.IPs {
		f := domain.NewFinding("IP", "", probeName)
		f.AddTag("ip")
		f.SetMeta("identifier", ip)
		out = append(out, f)
	}
	for _, u := range a.total.URLs {
		f := domain.NewFinding("URL", u, probeName)
		f.AddTag("url")
		out = append(out, f)
	}
	for _, p := range a.total.People {
		f := domain.NewFinding("Person", "", probeName)
		f.AddTag("person")
		f.SetMeta("identifier", p)
		out = append(out, f)
	}

	return out
}
