// Package api expone el core por HTTP: rondas de probes, investigaciones
// guiadas, enlaces de referencia y health check. La capa es deliberadamente
// delgada: decodifica, delega en los usecases y serializa, sin lógica de
// negocio propia.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"laelaps/internal/core/domain"
	"laelaps/internal/core/ports"
	"laelaps/internal/platform/errors"
	"laelaps/internal/platform/logx"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// RoundRunner ejecuta rondas de probes. Lo implementa usecases.Orchestrator.
type RoundRunner interface {
	Run(ctx context.Context, subject domain.Subject) (*domain.AggregatedResult, error)
	RunAttribute(ctx context.Context, subject domain.Subject, attr domain.Attribute) (*domain.AggregatedResult, error)
}

// Investigator ejecuta el pipeline de investigación. Lo implementa
// usecases.Pipeline.
type Investigator interface {
	Run(ctx context.Context, subject domain.Subject) (*domain.InvestigationState, error)
}

// LinkBuilder construye los enlaces de referencia para un sujeto.
type LinkBuilder func(subject domain.Subject) []*domain.Finding

// Server es el servidor HTTP del API.
type Server struct {
	httpServer *http.Server
	logger     logx.Logger

	rounds       RoundRunner
	investigator Investigator
	links        LinkBuilder
	probes       []ports.Probe
	version      string
}

// ServerOptions configura el servidor.
type ServerOptions struct {
	Addr         string
	Rounds       RoundRunner
	Investigator Investigator
	Links        LinkBuilder
	Probes       []ports.Probe
	Logger       logx.Logger
	Version      string
}

// NewServer crea el servidor con sus rutas montadas.
func NewServer(opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Addr == "" {
		opts.Addr = ":8000"
	}

	s := &Server{
		logger:       opts.Logger.With("component", "api"),
		rounds:       opts.Rounds,
		investigator: opts.Investigator,
		links:        opts.Links,
		probes:       opts.Probes,
		version:      opts.Version,
	}

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

// Router construye el router chi con todas las rutas del API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/investigate", s.handleInvestigate)
		r.Post("/sweep", s.handleSweep)
		r.Post("/probe", s.handleProbe)
		r.Get("/links", s.handleLinks)
	})
	r.Get("/health", s.handleHealth)

	return r
}

// Start levanta el servidor y bloquea hasta que el contexto se cancele o
// el listener falle. La cancelación dispara un shutdown con gracia: las
// rondas en vuelo terminan dentro del timeout de apagado.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// requestLogger registra cada petición con su status y latencia.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
