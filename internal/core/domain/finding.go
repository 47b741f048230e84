// internal/core/domain/finding.go
package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Finding representa un hallazgo individual reportado por una probe: una
// afirmación de presencia (o ausencia) de un identificador en una plataforma.
type Finding struct {
	// Platform etiqueta de la plataforma o servicio que originó el hallazgo
	Platform string `json:"platform"`

	// URL del perfil o recurso; puede estar vacía si la plataforma no expone una
	URL string `json:"url,omitempty"`

	// Status clasifica la certeza del hallazgo
	Status FindingStatus `json:"status"`

	// Sources lista las probes que reportaron este hallazgo
	Sources []string `json:"sources,omitempty"`

	// Tags permite categorización adicional (free/paid/social, breach, ...)
	Tags []string `json:"tags,omitempty"`

	// Metadata pares clave/valor específicos de la probe (carrier, breach, ids)
	Metadata map[string]string `json:"metadata,omitempty"`

	// IdentityQuery marca que la query string de la URL porta identidad y no
	// debe descartarse al canonicalizar (enlaces de búsqueda con ?q=nombre)
	IdentityQuery bool `json:"identity_query,omitempty"`

	// DiscoveredAt timestamp del hallazgo
	DiscoveredAt time.Time `json:"discovered_at"`
}

// NewFinding crea un hallazgo confirmado con valores por defecto.
func NewFinding(platform, rawURL, source string) *Finding {
	f := &Finding{
		Platform:     strings.TrimSpace(platform),
		URL:          strings.TrimSpace(rawURL),
		Status:       FindingFound,
		Sources:      []string{},
		Tags:         []string{},
		DiscoveredAt: time.Now(),
	}
	if source != "" {
		f.Sources = append(f.Sources, source)
	}
	return f
}

// CanonicalURL retorna la clave de deduplicación del hallazgo.
// Regla: scheme y host en minúsculas, puertos por defecto eliminados, slash
// final del path eliminado, query descartada salvo IdentityQuery (entonces se
// ordena para estabilidad). Hallazgos sin URL usan platform:identificador.
func (f *Finding) CanonicalURL() string {
	if f.URL == "" {
		ident := f.Metadata["identifier"]
		return strings.ToLower(f.Platform) + ":" + strings.ToLower(ident)
	}

	parsed, err := url.Parse(strings.TrimSpace(f.URL))
	if err != nil || parsed.Host == "" {
		// URL no parseable: la clave es el texto crudo en minúsculas
		return strings.ToLower(strings.TrimSpace(f.URL))
	}

	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Host)
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}

	path := parsed.EscapedPath()
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "/" {
		path = ""
	}

	canonical := scheme + "://" + host + path

	if f.IdentityQuery && parsed.RawQuery != "" {
		canonical += "?" + sortQuery(parsed.Query())
	}

	return canonical
}

// AddSource añade una probe a la lista sin duplicados.
func (f *Finding) AddSource(source string) {
	if source == "" {
		return
	}
	for _, s := range f.Sources {
		if s == source {
			return
		}
	}
	f.Sources = append(f.Sources, source)
}

// AddTag añade un tag sin duplicados.
func (f *Finding) AddTag(tag string) {
	if tag == "" {
		return
	}
	for _, t := range f.Tags {
		if t == tag {
			return
		}
	}
	f.Tags = append(f.Tags, tag)
}

// SetMeta registra un par clave/valor de metadata, inicializando el mapa.
func (f *Finding) SetMeta(key, value string) {
	if key == "" || value == "" {
		return
	}
	if f.Metadata == nil {
		f.Metadata = make(map[string]string)
	}
	f.Metadata[key] = value
}

// Merge combina otro hallazgo con la misma clave canónica: une sources, tags
// y metadata (gana la clave existente) y conserva la etiqueta de plataforma
// del receptor. El primer hallazgo en llegar define la identidad visible.
func (f *Finding) Merge(other *Finding) error {
	if f.CanonicalURL() != other.CanonicalURL() {
		return fmt.Errorf("cannot merge findings with different keys: %s != %s",
			f.CanonicalURL(), other.CanonicalURL())
	}

	for _, s := range other.Sources {
		f.AddSource(s)
	}
	for _, t := range other.Tags {
		f.AddTag(t)
	}
	for k, v := range other.Metadata {
		if f.Metadata == nil {
			f.Metadata = make(map[string]string)
		}
		if _, exists := f.Metadata[k]; !exists {
			f.Metadata[k] = v
		}
	}

	// Conservar el timestamp más antiguo (primer descubrimiento)
	if !other.DiscoveredAt.IsZero() && other.DiscoveredAt.Before(f.DiscoveredAt) {
		f.DiscoveredAt = other.DiscoveredAt
	}

	return nil
}

// IsValid verifica si el hallazgo tiene datos válidos.
func (f *Finding) IsValid() bool {
	if f.Platform == "" && f.URL == "" {
		return false
	}
	return f.Status.IsValid()
}

// String retorna una representación legible del hallazgo.
func (f *Finding) String() string {
	target := f.URL
	if target == "" {
		target = f.Platform
	}
	return fmt.Sprintf("[%s] %s (%s)", f.Status, target, strings.Join(f.Sources, ","))
}

// sortQuery serializa los parámetros en orden de clave estable.
func sortQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		vs := values[k]
		sort.Strings(vs)
		for j, v := range vs {
			if i > 0 || j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
