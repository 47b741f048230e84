package weblinks

import (
	"strings"

	"laelaps/internal/core/domain"
)

// courtRegister es un registro judicial consultable de un estado. Las
// URLs estáticas apuntan al buscador del registro; las dinámicas llevan
// el nombre (o apellido) ya interpolado.
type courtRegister struct {
	scope string
	build func(plussed, lastName string) string
}

type stateCourtSystem struct {
	name      string
	registers []courtRegister
}

// stateCourts cubre los estados con registros judiciales en línea
// conocidos. El resto cae en el enlace genérico de búsqueda.
var stateCourts = map[string]stateCourtSystem{
	"LA": {"Louisiana", []courtRegister{
		{"supreme_court", func(plussed, lastName string) string {
			return "https://www.lasc.org/search?q=" + plussed
		}},
		{"district_courts", func(plussed, lastName string) string {
			return "https://www.laed.uscourts.gov/search/node/" + plussed
		}},
		{"case_search", staticRegister("https://www.lacourt.org/")},
		{"offender_search", func(plussed, lastName string) string {
			return "https://www.doc.la.gov/offender-search?name=" + plussed
		}},
	}},
	"TX": {"Texas", []courtRegister{
		{"courts_online", func(plussed, lastName string) string {
			return "https://search.txcourts.gov/CaseSearch.aspx?coa=cossup&s=" + plussed
		}},
		{"offender_search", func(plussed, lastName string) string {
			return "https://offender.tdcj.texas.gov/OffenderSearch/search.action?lastName=" + lastName
		}},
	}},
	"FL": {"Florida", []courtRegister{
		{"clerk_search", staticRegister("https://www.myfloridacounty.com/")},
		{"offender_search", func(plussed, lastName string) string {
			return "https://www.dc.state.fl.us/offenderSearch/search.aspx?TypeSearch=IR&LastName=" + lastName
		}},
	}},
	"CA": {"California", []courtRegister{
		{"courts", staticRegister("https://www.courts.ca.gov/find-my-court.htm")},
		{"cdcr_search", staticRegister("https://inmatelocator.cdcr.ca.gov/search.aspx")},
	}},
	"GA": {"Georgia", []courtRegister{
		{"courts", func(plussed, lastName string) string {
			return "https://www.gasupreme.us/search/?q=" + plussed
		}},
		{"offender_search", staticRegister("https://gdc.ga.gov/GDC/Offender/Query")},
	}},
	"NY": {"New York", []courtRegister{
		{"ecourts", staticRegister("https://iapps.courts.state.ny.us/webcrim_attorney/AttorneyWelcome")},
		{"doccs_search", staticRegister("https://nysdoccslookup.doccs.ny.gov/")},
	}},
	"AL": {"Alabama", []courtRegister{
		{"alacourt", staticRegister("https://pa.alacourt.com/")},
		{"doc_search", staticRegister("https://www.doc.alabama.gov/InmateSearch")},
	}},
	"MS": {"Mississippi", []courtRegister{
		{"courts", staticRegister("https://courts.ms.gov/")},
		{"doc_search", staticRegister("https://www.mdoc.ms.gov/Inmate-Search")},
	}},
}

func staticRegister(url string) func(plussed, lastName string) string {
	return func(plussed, lastName string) string { return url }
}

// BuildCourtLinks genera los enlaces de registros judiciales para un
// nombre. Los enlaces federales van siempre; los estatales solo cuando
// hay estado, con un enlace genérico para estados sin registro conocido.
func BuildCourtLinks(name, state string) []*domain.Finding {
	plussed := strings.ReplaceAll(name, " ", "+")
	lastName := plussed
	if i := strings.LastIndex(plussed, "+"); i >= 0 {
		lastName = plussed[i+1:]
	}
	state = strings.ToUpper(strings.TrimSpace(state))

	var findings []*domain.Finding

	if state != "" {
		if system, ok := stateCourts[state]; ok {
			for _, reg := range system.registers {
				f := linkFinding(system.name, reg.build(plussed, lastName), "court")
				f.SetMeta("scope", reg.scope)
				findings = append(findings, f)
			}
		} else {
			f := domain.NewFinding(state+" courts", "", probeName)
			f.Status = domain.FindingAmbiguous
			f.AddTag("court")
			f.SetMeta("identifier", state+" court records "+name)
			f.SetMeta("note", "state-specific links not available, search manually")
			findings = append(findings, f)
		}
	}

	pacer := linkFinding("PACER", "https://pacer.uscourts.gov/", "court")
	pacer.SetMeta("scope", "federal")
	courtlistener := linkFinding("CourtListener", "https://www.courtlistener.com/?q="+plussed, "court")
	courtlistener.SetMeta("scope", "federal")

	return append(findings, pacer, courtlistener)
}
