// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"strings"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

// defaultMaxVariations acota cuántas variaciones de username prueba el paso 3.
const defaultMaxVariations = 5

// LinkBuilder construye enlaces de referencia para un sujeto sin tocar la red.
// La implementación real vive en la probe de enlaces estáticos; el pipeline
// solo depende de esta firma.
type LinkBuilder func(subject domain.Subject) []*domain.Finding

// Pipeline es el flujo de investigación de tres pasos fijos: enlaces de
// referencia, ronda de email y rondas de variaciones de username. Los pasos
// son secuenciales porque los posteriores consumen estado de los anteriores.
type Pipeline struct {
	orchestrator  *Orchestrator
	links         LinkBuilder
	logger        logx.Logger
	maxVariations int
}

// PipelineOptions configura el pipeline.
type PipelineOptions struct {
	Orchestrator  *Orchestrator
	Links         LinkBuilder
	Logger        logx.Logger
	MaxVariations int
}

// NewPipeline crea una nueva instancia del pipeline.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.MaxVariations <= 0 {
		opts.MaxVariations = defaultMaxVariations
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Pipeline{
		orchestrator:  opts.Orchestrator,
		links:         opts.Links,
		logger:        opts.Logger.With("component", "pipeline"),
		maxVariations: opts.MaxVariations,
	}
}

// Run ejecuta la investigación completa. Un fallo en las llamadas externas de
// un paso marca ese paso como error y el pipeline continúa: el llamador
// siempre recibe el estado completo con la bitácora de pasos.
func (p *Pipeline) Run(ctx context.Context, subject domain.Subject) (*domain.InvestigationState, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if subject.Name == "" {
		return nil, fmt.Errorf("%w: investigation needs a name", domain.ErrNoAttributes)
	}

	state := domain.NewInvestigationState(subject)

	p.logger.Info("starting investigation",
		"investigation", state.ID,
		"subject", subject.Label(),
	)

	p.stepLinks(state)
	p.stepEmail(ctx, state)
	p.stepUsernames(ctx, state)

	state.Summary = p.buildSummary(state)
	state.Finalize()

	p.logger.Info("investigation completed",
		"investigation", state.ID,
		"profiles", len(state.Profiles),
		"usernames", len(state.Usernames),
		"duration_ms", state.Duration.Milliseconds(),
	)

	return state, nil
}

// stepLinks construye los enlaces de referencia. Es puro y siempre completa.
func (p *Pipeline) stepLinks(state *domain.InvestigationState) {
	step := state.StartStep("Generate people search links")

	if p.links != nil {
		for _, f := range p.links(state.Subject) {
			state.AddLink(f)
		}
	}

	state.CompleteStep(step, fmt.Sprintf("Generated %d search links", len(state.Links)))
}

// stepEmail ejecuta la ronda de email cuando el sujeto trae correo. Sin
// correo, el paso igualmente queda registrado como completado y saltado
// para que la bitácora siempre tenga los tres pasos.
func (p *Pipeline) stepEmail(ctx context.Context, state *domain.InvestigationState) {
	email := state.Subject.Email
	if email == "" {
		step := state.StartStep("Check email registration")
		state.CompleteStep(step, "skipped: no email provided")
		return
	}

	step := state.StartStep(fmt.Sprintf("Check email registration: %s", email))
	state.AddEmail(email)

	result, err := p.orchestrator.RunAttribute(ctx, state.Subject, domain.AttributeEmail)
	if err != nil {
		p.logger.Warn("email round failed", "error", err.Error())
		state.FailStep(step, err.Error())
		return
	}

	found := 0
	for _, f := range result.Findings {
		if f.Status != domain.FindingFound {
			continue
		}
		if len(f.Sources) > 0 {
			f.SetMeta("origin", fmt.Sprintf("%s (email)", f.Sources[0]))
		}
		state.AddProfile(f)
		found++
	}

	state.CompleteStep(step, fmt.Sprintf("Found %d services", found))
}

// stepUsernames genera variaciones del nombre y ejecuta una ronda de username
// por variación, secuencialmente. Los hallazgos se deduplican por URL
// canónica entre variaciones antes de entrar a los perfiles confirmados.
func (p *Pipeline) stepUsernames(ctx context.Context, state *domain.InvestigationState) {
	step := state.StartStep("Search username variations")

	variations := domain.GenerateUsernameVariations(state.Subject.Name)
	if len(variations) > p.maxVariations {
		variations = variations[:p.maxVariations]
	}
	for _, u := range variations {
		state.AddUsername(u)
	}

	if len(variations) == 0 {
		state.CompleteStep(step, "Searched 0 usernames, found 0 profiles")
		return
	}

	seen := make(map[string]bool)
	found := 0
	var roundErrs []string

	for _, username := range variations {
		derived := state.Subject.WithAttribute(domain.AttributeUsername, username)

		result, err := p.orchestrator.RunAttribute(ctx, *derived, domain.AttributeUsername)
		if err != nil {
			p.logger.Warn("username round failed", "username", username, "error", err.Error())
			roundErrs = append(roundErrs, err.Error())
			continue
		}

		for _, f := range result.Findings {
			if f.Status != domain.FindingFound {
				continue
			}
			key := f.CanonicalURL()
			if seen[key] {
				continue
			}
			seen[key] = true

			if len(f.Sources) > 0 {
				f.SetMeta("origin", fmt.Sprintf("%s (username)", f.Sources[0]))
			}
			f.SetMeta("username", username)
			state.AddProfile(f)
			found++
		}
	}

	if len(roundErrs) == len(variations) {
		state.FailStep(step, fmt.Sprintf("all %d username rounds failed: %s",
			len(variations), roundErrs[0]))
		return
	}

	state.CompleteStep(step, fmt.Sprintf("Searched %d usernames, found %d profiles",
		len(variations), found))
}

// buildSummary arma el resumen final con " | " como separador.
func (p *Pipeline) buildSummary(state *domain.InvestigationState) string {
	parts := []string{fmt.Sprintf("Investigated: %s", state.Subject.Name)}

	if state.Subject.Email != "" {
		parts = append(parts, fmt.Sprintf("Email checked: %s", state.Subject.Email))
	}

	parts = append(parts, fmt.Sprintf("Search links: %d", len(state.Links)))

	if len(state.Usernames) > 0 {
		preview := state.Usernames
		if len(preview) > 3 {
			preview = preview[:3]
		}
		parts = append(parts, fmt.Sprintf("Usernames tried: %s...", strings.Join(preview, ", ")))
	}

	parts = append(parts, fmt.Sprintf("Confirmed profiles: %d", len(state.Profiles)))

	return strings.Join(parts, " | ")
}
