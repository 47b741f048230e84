package weblinks

import (
	"strings"

	"laelaps/internal/core/domain"
)

// peopleSearchSite describe una plantilla de búsqueda de personas. El
// builder recibe el nombre tal cual y sus tokens primero/último en
// minúsculas.
type peopleSearchSite struct {
	name  string
	tag   string
	build func(name, first, last string) string
}

// Los sitios conservan el orden y el etiquetado free/paid/social del
// flujo original de investigación.
var peopleSearchSites = []peopleSearchSite{
	{"TruePeopleSearch", "free", func(name, first, last string) string {
		return "https://www.truepeoplesearch.com/results?name=" + spaced(name)
	}},
	{"FastPeopleSearch", "free", func(name, first, last string) string {
		return "https://www.fastpeoplesearch.com/name/" + strings.ReplaceAll(name, " ", "-")
	}},
	{"Whitepages", "free", func(name, first, last string) string {
		return "https://www.whitepages.com/name/" + first + "-" + last
	}},
	{"Spokeo", "paid", func(name, first, last string) string {
		return "https://www.spokeo.com/" + first + "-" + last
	}},
	{"BeenVerified", "paid", func(name, first, last string) string {
		return "https://www.beenverified.com/people/" + first + "-" + last + "/"
	}},
	{"Intelius", "paid", func(name, first, last string) string {
		return "https://www.intelius.com/people-search/" + first + "-" + last + "/"
	}},
	{"ThatsThem", "free", func(name, first, last string) string {
		return "https://thatsthem.com/name/" + first + "-" + last
	}},
	{"USSearch", "paid", func(name, first, last string) string {
		return "https://www.ussearch.com/search/results/people?firstName=" + first + "&lastName=" + last
	}},
	{"Facebook", "social", func(name, first, last string) string {
		return "https://www.facebook.com/search/people?q=" + spaced(name)
	}},
	{"LinkedIn", "social", func(name, first, last string) string {
		return "https://www.linkedin.com/search/results/people/?keywords=" + spaced(name)
	}},
	{"Instagram", "social", func(name, first, last string) string {
		return "https://www.instagram.com/" + first + last + "/"
	}},
	{"Twitter/X", "social", func(name, first, last string) string {
		return "https://twitter.com/search?q=" + spaced(name) + "&f=user"
	}},
}

// BuildPeopleSearch genera los enlaces de people search para un nombre.
// Con location no vacía añade las variantes acotadas por ciudad/estado.
func BuildPeopleSearch(name, location string) []*domain.Finding {
	first, last := splitName(name)

	findings := make([]*domain.Finding, 0, len(peopleSearchSites)+2)
	for _, site := range peopleSearchSites {
		findings = append(findings, linkFinding(site.name, site.build(name, first, last), site.tag))
	}

	if location != "" {
		loc := spaced(location)
		findings = append(findings,
			linkFinding("TruePeopleSearch (Location)",
				"https://www.truepeoplesearch.com/results?name="+spaced(name)+"&citystatezip="+loc, "free"),
			linkFinding("Whitepages (Location)",
				"https://www.whitepages.com/name/"+first+"-"+last+"/"+loc, "free"),
		)
	}

	return findings
}

// spaced codifica espacios como %20, que es lo que estos sitios esperan
// en sus URLs de búsqueda.
func spaced(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}

// splitName separa el nombre en primer y último token, en minúsculas.
// Un nombre de un solo token usa ese token para ambos.
func splitName(name string) (first, last string) {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// linkFinding construye un hallazgo de verificación manual. El enlace
// lleva la identidad en la URL, así que la query se preserva al
// canonicalizar.
func linkFinding(platform, url, tag string) *domain.Finding {
	f := domain.NewFinding(platform, url, probeName)
	f.Status = domain.FindingAmbiguous
	f.IdentityQuery = true
	f.AddTag(tag)
	return f
}
