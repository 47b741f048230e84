// internal/core/domain/investigation.go
package domain

import (
	"fmt"
	"time"
)

// InvestigationStep registra la ejecución de un paso del pipeline.
type InvestigationStep struct {
	// Index posición del paso dentro del pipeline (1-based)
	Index int `json:"step"`

	// Action descripción legible de lo que hace el paso
	Action string `json:"action"`

	// Status estado del paso: running hasta que el pipeline lo cierre
	Status StepStatus `json:"status"`

	// Result resumen corto del resultado, o la razón del fallo
	Result string `json:"result,omitempty"`
}

// InvestigationState acumula el estado de una investigación multi-ronda.
// Solo crece: ningún paso elimina perfiles ni identificadores ya registrados.
// Lo muta únicamente el coordinador del pipeline entre rondas, nunca de forma
// concurrente, por lo que no requiere sincronización.
type InvestigationState struct {
	// ID identificador único de la investigación
	ID string `json:"id"`

	// Subject sujeto investigado
	Subject Subject `json:"subject"`

	// Emails correos descubiertos; semántica de conjunto
	Emails []string `json:"discovered_emails"`

	// Usernames variaciones probadas, en orden de generación
	Usernames []string `json:"discovered_usernames"`

	// Profiles perfiles confirmados, cada uno etiquetado con su paso de origen
	Profiles []*Finding `json:"confirmed_profiles"`

	// Links enlaces de referencia construidos en el paso 1
	Links []*Finding `json:"search_links"`

	// Steps bitácora del pipeline, un registro por paso
	Steps []*InvestigationStep `json:"flow_steps"`

	// Summary resumen final legible
	Summary string `json:"summary"`

	// StartTime y Duration acotan la investigación completa
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewInvestigationState crea el estado inicial de una investigación.
func NewInvestigationState(subject Subject) *InvestigationState {
	return &InvestigationState{
		ID:        fmt.Sprintf("inv-%d", time.Now().UnixNano()),
		Subject:   subject,
		Emails:    []string{},
		Usernames: []string{},
		Profiles:  []*Finding{},
		Links:     []*Finding{},
		Steps:     []*InvestigationStep{},
		StartTime: time.Now(),
	}
}

// AddEmail registra un correo descubierto sin duplicados.
func (s *InvestigationState) AddEmail(email string) {
	if email == "" {
		return
	}
	for _, e := range s.Emails {
		if e == email {
			return
		}
	}
	s.Emails = append(s.Emails, email)
}

// AddUsername registra una variación probada preservando el orden de generación.
func (s *InvestigationState) AddUsername(username string) {
	if username == "" {
		return
	}
	for _, u := range s.Usernames {
		if u == username {
			return
		}
	}
	s.Usernames = append(s.Usernames, username)
}

// AddProfile añade un perfil confirmado.
func (s *InvestigationState) AddProfile(f *Finding) {
	if f == nil || !f.IsValid() {
		return
	}
	s.Profiles = append(s.Profiles, f)
}

// AddLink añade un enlace de referencia.
func (s *InvestigationState) AddLink(f *Finding) {
	if f == nil || !f.IsValid() {
		return
	}
	s.Links = append(s.Links, f)
}

// StartStep añade un registro de paso en estado running y lo retorna.
func (s *InvestigationState) StartStep(action string) *InvestigationStep {
	step := &InvestigationStep{
		Index:  len(s.Steps) + 1,
		Action: action,
		Status: StepRunning,
	}
	s.Steps = append(s.Steps, step)
	return step
}

// CompleteStep cierra un paso con resultado.
func (s *InvestigationState) CompleteStep(step *InvestigationStep, result string) {
	step.Status = StepComplete
	step.Result = result
}

// FailStep cierra un paso con error; los pasos posteriores continúan.
func (s *InvestigationState) FailStep(step *InvestigationStep, reason string) {
	step.Status = StepError
	step.Result = reason
}

// Finalize cierra la investigación calculando su duración.
func (s *InvestigationState) Finalize() {
	s.Duration = time.Since(s.StartTime)
}

// StepsComplete indica si todos los pasos terminaron sin error.
func (s *InvestigationState) StepsComplete() bool {
	for _, step := range s.Steps {
		if step.Status != StepComplete {
			return false
		}
	}
	return len(s.Steps) > 0
}

// String retorna una representación legible del estado.
func (s *InvestigationState) String() string {
	return fmt.Sprintf(
		"InvestigationState{subject=%s, steps=%d, profiles=%d, usernames=%d}",
		s.Subject.Label(),
		len(s.Steps),
		len(s.Profiles),
		len(s.Usernames),
	)
}
