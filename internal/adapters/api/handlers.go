// internal/adapters/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/errors"
)

// maxBodyBytes acota el tamaño de los cuerpos de petición.
const maxBodyBytes = 1 << 20

type investigateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

type sweepRequest struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Domain   string `json:"domain,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

type probeRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type linksResponse struct {
	Name        string            `json:"name"`
	City        string            `json:"city,omitempty"`
	State       string            `json:"state,omitempty"`
	Count       int               `json:"count"`
	Links       []*domain.Finding `json:"links"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type probeHealth struct {
	Installed bool   `json:"installed"`
	Reason    string `json:"reason,omitempty"`
	Kind      string `json:"kind"`
	Attribute string `json:"attribute"`
}

type healthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Probes  map[string]probeHealth `json:"probes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleInvestigate ejecuta el pipeline completo de investigación.
func (s *Server) handleInvestigate(w http.ResponseWriter, r *http.Request) {
	var req investigateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	subject := domain.Subject{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
		State: req.State,
	}

	state, err := s.investigator.Run(r.Context(), subject)
	if err != nil {
		s.writeFailure(w, r, "investigation failed", err)
		return
	}

	s.writeJSON(w, http.StatusOK, state)
}

// handleSweep ejecuta una ronda con todas las probes cuyos atributos
// estén presentes. Sin username explícito, el nombre colapsado en
// minúsculas hace de username para que las probes de username participen.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if req.Username == "" && req.Name != "" {
		req.Username = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(req.Name), " ", ""))
	}

	subject := domain.Subject{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Domain:   req.Domain,
		City:     req.City,
		State:    req.State,
	}

	result, err := s.rounds.Run(r.Context(), subject)
	if err != nil {
		s.writeFailure(w, r, "sweep failed", err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleProbe ejecuta una ronda restringida a un solo atributo.
func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	var req probeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	attr := domain.Attribute(req.Attribute)
	if !attr.IsValid() {
		s.writeError(w, http.StatusBadRequest, "unknown attribute: "+req.Attribute)
		return
	}

	subject := domain.Subject{}
	subject = *subject.WithAttribute(attr, req.Value)

	result, err := s.rounds.RunAttribute(r.Context(), subject, attr)
	if err != nil {
		s.writeFailure(w, r, "probe round failed", err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleLinks genera los enlaces de referencia sin ejecutar probes.
func (s *Server) handleLinks(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	subject := domain.Subject{
		Name:  name,
		City:  strings.TrimSpace(r.URL.Query().Get("city")),
		State: strings.TrimSpace(r.URL.Query().Get("state")),
	}

	links := s.links(subject)

	s.writeJSON(w, http.StatusOK, linksResponse{
		Name:        subject.Name,
		City:        subject.City,
		State:       subject.State,
		Count:       len(links),
		Links:       links,
		GeneratedAt: time.Now(),
	})
}

// handleHealth reporta la disponibilidad de cada probe registrada.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	probes := make(map[string]probeHealth, len(s.probes))

	for _, p := range s.probes {
		h := probeHealth{
			Installed: true,
			Kind:      string(p.Kind()),
			Attribute: string(p.Attribute()),
		}
		if err := p.Available(r.Context()); err != nil {
			h.Installed = false
			h.Reason = err.Error()
		}
		probes[p.Name()] = h
	}

	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: s.version,
		Probes:  probes,
	})
}

// writeFailure clasifica el error y responde con el status acorde. Los
// errores de entrada del llamador son 4xx; el resto, 500.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Err(err, "path", r.URL.Path)
	} else {
		s.logger.Warn(msg, "path", r.URL.Path, "error", err.Error())
	}
	s.writeError(w, status, err.Error())
}

// statusFor mapea errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoAttributes),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidDomain),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidAttribute),
		errors.Is(err, domain.ErrNoProbesSelected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProbeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodifica el cuerpo y responde 400 si no es JSON válido.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Err(err, "context", "encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
