package weblinks

import (
	"strings"

	"laelaps/internal/core/domain"
)

// areaLocation ubica un código de área estadounidense.
type areaLocation struct {
	City  string
	State string
}

// areaCodes es un subconjunto de códigos de área de grandes ciudades,
// suficiente para orientar la búsqueda manual.
var areaCodes = map[string]areaLocation{
	"212": {"New York", "NY"},
	"213": {"Los Angeles", "CA"},
	"312": {"Chicago", "IL"},
	"404": {"Atlanta", "GA"},
	"504": {"New Orleans", "LA"},
	"713": {"Houston", "TX"},
	"305": {"Miami", "FL"},
	"702": {"Las Vegas", "NV"},
	"206": {"Seattle", "WA"},
	"415": {"San Francisco", "CA"},
}

var phoneCleaner = strings.NewReplacer("-", "", " ", "", "(", "", ")", "")

// BuildPhoneLookups genera los enlaces de búsqueda inversa para un
// número de teléfono. Cuando el código de área es conocido, cada enlace
// lleva la ciudad y el estado como metadata.
func BuildPhoneLookups(phone string) []*domain.Finding {
	clean := cleanPhone(phone)

	lookups := []struct {
		platform string
		url      string
	}{
		{"Facebook", "https://www.facebook.com/search/top?q=" + clean},
		{"TrueCaller", "https://www.truecaller.com/search/us/" + clean},
		{"Whitepages", "https://www.whitepages.com/phone/" + clean},
		{"NumLookup", "https://www.numlookup.com/us/" + clean},
	}

	area, loc, located := locateAreaCode(clean)

	findings := make([]*domain.Finding, 0, len(lookups))
	for _, l := range lookups {
		f := linkFinding(l.platform, l.url, "phone")
		if located {
			f.SetMeta("area_code", area)
			f.SetMeta("city", loc.City)
			f.SetMeta("state", loc.State)
		}
		findings = append(findings, f)
	}

	return findings
}

// cleanPhone normaliza el número a dígitos locales de 10 posiciones
// cuando trae prefijo de país estadounidense.
func cleanPhone(phone string) string {
	clean := phoneCleaner.Replace(phone)
	if strings.HasPrefix(clean, "+1") {
		clean = clean[2:]
	}
	if len(clean) == 11 && strings.HasPrefix(clean, "1") {
		clean = clean[1:]
	}
	return clean
}

// locateAreaCode resuelve el código de área contra la tabla. Códigos
// fuera de la tabla se reportan como Unknown; números de menos de diez
// dígitos no se localizan.
func locateAreaCode(clean string) (string, areaLocation, bool) {
	if len(clean) < 10 {
		return "", areaLocation{}, false
	}

	area := clean[:3]
	loc, ok := areaCodes[area]
	if !ok {
		loc = areaLocation{City: "Unknown", State: "Unknown"}
	}
	return area, loc, true
}
