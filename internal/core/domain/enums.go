// internal/core/domain/enums.go
package domain

// Attribute identifica el tipo de atributo de identidad que consume una probe.
type Attribute string

const (
	// AttributeName nombre completo de la persona investigada
	AttributeName Attribute = "name"

	// AttributeUsername alias o handle en plataformas
	AttributeUsername Attribute = "username"

	// AttributeEmail dirección de correo electrónico
	AttributeEmail Attribute = "email"

	// AttributePhone número de teléfono
	AttributePhone Attribute = "phone"

	// AttributeDomain dominio asociado al sujeto
	AttributeDomain Attribute = "domain"
)

// IsValid verifica si el atributo es válido.
func (a Attribute) IsValid() bool {
	switch a {
	case AttributeName, AttributeUsername, AttributeEmail, AttributePhone, AttributeDomain:
		return true
	default:
		return false
	}
}

// String retorna la representación string del atributo.
func (a Attribute) String() string {
	return string(a)
}

// AllAttributes retorna los atributos en orden estable de selección.
func AllAttributes() []Attribute {
	return []Attribute{
		AttributeName,
		AttributeUsername,
		AttributeEmail,
		AttributePhone,
		AttributeDomain,
	}
}

// FindingStatus clasifica la certeza de un hallazgo individual.
type FindingStatus string

const (
	// FindingFound la plataforma confirmó presencia del identificador
	FindingFound FindingStatus = "found"

	// FindingNotFound la plataforma confirmó ausencia
	FindingNotFound FindingStatus = "not_found"

	// FindingAmbiguous la respuesta no permite confirmar ni descartar
	FindingAmbiguous FindingStatus = "ambiguous"
)

// IsValid verifica si el estado de hallazgo es válido.
func (s FindingStatus) IsValid() bool {
	switch s {
	case FindingFound, FindingNotFound, FindingAmbiguous:
		return true
	default:
		return false
	}
}

// String retorna la representación string del estado.
func (s FindingStatus) String() string {
	return string(s)
}

// OutcomeStatus clasifica el resultado de ejecutar una probe dentro de una ronda.
type OutcomeStatus string

const (
	// OutcomeCompleted la probe terminó dentro de su timeout
	OutcomeCompleted OutcomeStatus = "completed"

	// OutcomeTimedOut la probe excedió su timeout declarado
	OutcomeTimedOut OutcomeStatus = "timed_out"

	// OutcomeUnavailable el binario o credencial de respaldo no está presente
	OutcomeUnavailable OutcomeStatus = "unavailable"

	// OutcomeFailed la invocación externa falló (exit != 0, error de red, parseo)
	OutcomeFailed OutcomeStatus = "failed"
)

// IsValid verifica si el estado de outcome es válido.
func (s OutcomeStatus) IsValid() bool {
	switch s {
	case OutcomeCompleted, OutcomeTimedOut, OutcomeUnavailable, OutcomeFailed:
		return true
	default:
		return false
	}
}

// String retorna la representación string del estado.
func (s OutcomeStatus) String() string {
	return string(s)
}

// StepStatus clasifica el estado de un paso del pipeline de investigación.
type StepStatus string

const (
	// StepRunning el paso está en ejecución
	StepRunning StepStatus = "running"

	// StepComplete el paso terminó con resultado
	StepComplete StepStatus = "complete"

	// StepError el paso falló; los pasos posteriores continúan igualmente
	StepError StepStatus = "error"
)

// IsValid verifica si el estado de paso es válido.
func (s StepStatus) IsValid() bool {
	switch s {
	case StepRunning, StepComplete, StepError:
		return true
	default:
		return false
	}
}

// String retorna la representación string del estado.
func (s StepStatus) String() string {
	return string(s)
}

// ProbeKind clasifica probes por su tipo de implementación.
type ProbeKind string

const (
	// ProbeKindAPI probes que consumen APIs HTTP/REST
	ProbeKindAPI ProbeKind = "api"

	// ProbeKindCLI probes que ejecutan binarios externos
	ProbeKindCLI ProbeKind = "cli"

	// ProbeKindStatic probes implementadas nativamente sin I/O externo
	ProbeKindStatic ProbeKind = "static"
)

// IsValid verifica si el tipo de probe es válido.
func (k ProbeKind) IsValid() bool {
	switch k {
	case ProbeKindAPI, ProbeKindCLI, ProbeKindStatic:
		return true
	default:
		return false
	}
}

// String retorna la representación string del tipo.
func (k ProbeKind) String() string {
	return string(k)
}
