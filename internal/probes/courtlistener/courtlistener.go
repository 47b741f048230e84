// Package courtlistener implements an API probe against the
// CourtListener REST API (federal court records). It searches opinions,
// people and dockets for a full name and always emits manual search
// links for follow-up, with responses cached for a day.
package courtlistener

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
	"laelaps/internal/platform/cache"
	"laelaps/internal/platform/errors"
	"laelaps/internal/platform/httpclient"
	"laelaps/internal/platform/logx"
	"laelaps/internal/platform/registry"
	"laelaps/internal/platform/validator"
)

const (
	probeName      = "courtlistener"
	defaultTimeout = 30 * time.Second

	// publicBase prefixes the absolute_url paths the API returns.
	publicBase = "https://www.courtlistener.com"
	apiBase    = publicBase + "/api/rest/v3"

	cacheTTL  = 24 * time.Hour
	cacheSize = 128

	maxOpinions = 20
	maxPeople   = 10
	maxDockets  = 10
)

// Auto-registro de la probe al importar el package
func init() {
	if err := registry.Global().Register(
		probeName,
		func(cfg ports.ProbeConfig, logger logx.Logger) (ports.Probe, error) {
			timeout := cfg.Timeout
			if timeout <= 0 {
				timeout = defaultTimeout
			}
			return NewWithConfig(logger, CourtListenerConfig{
				APIKey:      registry.GetStringConfig(cfg.Custom, "api_key", ""),
				RequireAuth: registry.GetBoolConfig(cfg.Custom, "require_auth", false),
				BaseURL:     registry.GetStringConfig(cfg.Custom, "base_url", apiBase),
				Timeout:     timeout,
			}), nil
		},
		ports.ProbeMetadata{
			Name:         probeName,
			Description:  "Federal court records search via the CourtListener REST API",
			Version:      "1.0.0",
			Author:       "Laelaps",
			Kind:         domain.ProbeKindAPI,
			Attribute:    domain.AttributeName,
			RequiresAuth: false, // token optional, raises rate limits
		},
	); err != nil {
		// Log error but don't panic - allow application to start
		logx.New().Warn("failed to register courtlistener probe", "error", err.Error())
	}
}

// CourtListener implementa una probe que consulta la API REST de
// CourtListener para registros judiciales federales.
type CourtListener struct {
	client      httpclient.Client
	cache       *cache.MemoryCache
	logger      logx.Logger
	baseURL     string
	apiKey      string
	requireAuth bool
	timeout     time.Duration
}

// CourtListenerConfig contiene la configuración para CourtListener.
type CourtListenerConfig struct {
	// APIKey token de autenticación; vacío consulta el tier anónimo
	APIKey string

	// RequireAuth trata la falta de token como probe no disponible
	RequireAuth bool

	// BaseURL raíz de la API (sobreescribible en tests)
	BaseURL string

	Timeout time.Duration
}

// New creates a CourtListener probe with default configuration.
func New(logger logx.Logger) *CourtListener {
	return NewWithConfig(logger, CourtListenerConfig{})
}

// NewWithConfig creates a CourtListener probe with custom configuration.
func NewWithConfig(logger logx.Logger, cfg CourtListenerConfig) *CourtListener {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}

	httpConfig := httpclient.Config{
		Timeout:      cfg.Timeout,
		MaxRetries:   3,
		RetryBackoff: 2 * time.Second,
		// Anonymous tier allows modest request rates; stay polite
		RateLimit:      2.0,
		RateLimitBurst: 3,
	}

	return &CourtListener{
		client:      *httpclient.New(httpConfig, logger),
		cache:       cache.NewMemoryCache(cacheSize),
		logger:      logger.With("probe", probeName),
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		requireAuth: cfg.RequireAuth,
		timeout:     cfg.Timeout,
	}
}

// Name retorna el nombre de la probe.
func (c *CourtListener) Name() string {
	return probeName
}

// Kind retorna el tipo de probe (API).
func (c *CourtListener) Kind() domain.ProbeKind {
	return domain.ProbeKindAPI
}

// Attribute retorna el atributo que consume (nombre completo).
func (c *CourtListener) Attribute() domain.Attribute {
	return domain.AttributeName
}

// Timeout retorna el tiempo máximo de ejecución.
func (c *CourtListener) Timeout() time.Duration {
	return c.timeout
}

// Available reports whether the probe can run. The API serves
// unauthenticated queries, so a missing token only matters when the
// configuration demands one.
func (c *CourtListener) Available(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.requireAuth && c.apiKey == "" {
		return errors.Wrap(errors.ErrUnauthorized, "courtlistener API token not configured")
	}
	return nil
}

// ValidateInput rejects empty names.
func (c *CourtListener) ValidateInput(value string) error {
	if validator.IsEmpty(value) {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// Run searches opinions, people and dockets for the name. Endpoint
// failures are recorded per endpoint; the manual search links are
// emitted regardless so the caller always has somewhere to look.
func (c *CourtListener) Run(ctx context.Context, name string) (*domain.ProbeOutcome, error) {
	outcome := domain.NewProbeOutcome(probeName, domain.AttributeName, name)

	c.logger.Info("starting courtlistener search", "name", name)

	searchParams := url.Values{}
	searchParams.Set("q", name)
	searchParams.Set("type", "o")
	searchParams.Set("order_by", "dateFiled desc")

	if body, err := c.fetch(ctx, c.baseURL+"/search/?"+searchParams.Encode()); err != nil {
		outcome.AddError(fmt.Sprintf("opinion search: %v", err))
	} else if findings, err := parseOpinions(body); err != nil {
		outcome.AddError(fmt.Sprintf("opinion search: %v", err))
	} else {
		for _, f := range findings {
			outcome.AddFinding(f)
		}
	}

	peopleParams := url.Values{}
	peopleParams.Set("name_full", name)

	if body, err := c.fetch(ctx, c.baseURL+"/people/?"+peopleParams.Encode()); err != nil {
		outcome.AddError(fmt.Sprintf("people search: %v", err))
	} else if findings, err := parsePeople(body); err != nil {
		outcome.AddError(fmt.Sprintf("people search: %v", err))
	} else {
		for _, f := range findings {
			outcome.AddFinding(f)
		}
	}

	docketParams := url.Values{}
	docketParams.Set("case_name__icontains", name)

	if body, err := c.fetch(ctx, c.baseURL+"/dockets/?"+docketParams.Encode()); err != nil {
		outcome.AddError(fmt.Sprintf("docket search: %v", err))
	} else if findings, err := parseDockets(body); err != nil {
		outcome.AddError(fmt.Sprintf("docket search: %v", err))
	} else {
		for _, f := range findings {
			outcome.AddFinding(f)
		}
	}

	for _, f := range manualFindings(name) {
		outcome.AddFinding(f)
	}

	if ctx.Err() != nil {
		return outcome, ctx.Err()
	}

	c.logger.Info("courtlistener search completed",
		"name", name,
		"found", outcome.FoundCount(),
		"errors", len(outcome.Errors),
	)

	return outcome, nil
}

// Close implements ports.Probe.
func (c *CourtListener) Close() error {
	c.logger.Debug("closing courtlistener probe")
	return nil
}

// fetch resolves a URL through the response cache, hitting the API only
// on a miss.
func (c *CourtListener) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	if cached, ok := c.cache.Get(requestURL); ok {
		if body, ok := cached.([]byte); ok {
			c.logger.Debug("cache hit", "url", requestURL)
			return body, nil
		}
	}

	body, err := c.client.FetchJSONWithHeaders(ctx, requestURL, c.authHeaders())
	if err != nil {
		return nil, err
	}

	c.cache.Set(requestURL, body, cacheTTL)
	return body, nil
}

// authHeaders returns the token header when a key is configured.
func (c *CourtListener) authHeaders() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{
		"Authorization": "Token " + c.apiKey,
	}
}
