// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureNames contiene nombres completos de prueba.
var FixtureNames = []string{
	"Amanda Driskell",
	"John Smith",
	"Maria Ann Lopez",
}

// FixtureUsernames contiene aliases de prueba válidos.
var FixtureUsernames = []string{
	"amandadriskell",
	"amanda_driskell",
	"adriskell",
	"john.smith",
}

// FixtureEmails contiene emails de prueba.
var FixtureEmails = []string{
	"amanda@example.com",
	"contact@example.com",
	"info@subdomain.example.com",
}

// FixturePhones contiene teléfonos de prueba en varios formatos.
var FixturePhones = []string{
	"5045550142",
	"(504) 555-0142",
	"+1 504 555 0142",
}

// FixtureDomains contiene dominios de prueba válidos.
var FixtureDomains = []string{
	"example.com",
	"test.example.com",
	"subdomain.example.com",
}

// FixtureInvalidDomains contiene dominios inválidos.
var FixtureInvalidDomains = []string{
	"",
	"not a domain",
	"192.168.1.1",
	"-invalid.com",
	"invalid-.com",
	".example.com",
}

// FixtureProfileURLs contiene URLs de perfil de prueba.
var FixtureProfileURLs = []string{
	"https://github.com/amandadriskell",
	"https://twitter.com/amandadriskell",
	"https://instagram.com/amanda_driskell",
	"https://www.reddit.com/user/amandadriskell",
}
