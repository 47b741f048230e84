// internal/platform/validator/validator.go
package validator

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Domain validators

// IsDomain verifica si un string es un dominio válido.
// Soporta dominios internacionales (IDN) y punycode.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	// Regex para validar dominios
	// Permite dominios internacionales (IDN) y punycode
	domainRegex := regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	if !domainRegex.MatchString(domain) {
		return false
	}

	// Verificar que no sea una IP
	if net.ParseIP(domain) != nil {
		return false
	}

	return true
}

// IsSubdomain verifica si subdomain es un subdominio válido de baseDomain.
func IsSubdomain(subdomain, baseDomain string) bool {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	baseDomain = strings.ToLower(strings.TrimSpace(baseDomain))

	if subdomain == baseDomain {
		return false
	}

	return strings.HasSuffix(subdomain, "."+baseDomain)
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// RegistrableDomain retorna el dominio registrable (eTLD+1) de un host.
// Si la lista de sufijos públicos no lo cubre, retorna el host normalizado.
func RegistrableDomain(host string) string {
	host = NormalizeDomain(host)
	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld
}

// Email validators

// IsEmail valida formato de email (RFC 5322 simplificado).
func IsEmail(email string) bool {
	if len(email) == 0 || len(email) > 254 {
		return false
	}

	// Regex simplificada para email
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// NormalizeEmail normaliza un email a su forma canónica.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Phone validators

// NormalizePhone reduce un teléfono a solo dígitos y elimina el prefijo
// de país norteamericano cuando está presente (11 dígitos con 1 inicial).
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	if len(normalized) == 11 && strings.HasPrefix(normalized, "1") {
		normalized = normalized[1:]
	}
	return normalized
}

// IsPhone verifica si un string normalizado parece un teléfono utilizable.
// Acepta entre 10 y 15 dígitos (E.164 permite hasta 15).
func IsPhone(phone string) bool {
	phone = NormalizePhone(phone)
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Username validators

// IsUsername verifica si un string es un alias de plataforma plausible.
func IsUsername(username string) bool {
	if len(username) < 2 || len(username) > 64 {
		return false
	}
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)
	return usernameRegex.MatchString(username)
}

// NormalizeUsername normaliza un alias a su forma canónica.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Network validators

// IsIP verifica si un string es una dirección IP válida (v4 o v6).
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// NormalizeIP normaliza una IP a su forma canónica.
// Si la IP es inválida, retorna string vacío.
func NormalizeIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "" // Invalid IP
	}
	return parsed.String()
}

// URL validators

// IsURL verifica si un string es una URL válida.
func IsURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// Debe tener scheme y host
	return parsed.Scheme != "" && parsed.Host != ""
}

// NormalizeURL normaliza una URL a su forma canónica.
func NormalizeURL(urlStr string) string {
	urlStr = strings.TrimSpace(urlStr)

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return strings.ToLower(urlStr)
	}

	// Normalizar scheme (case-insensitive)
	parsed.Scheme = strings.ToLower(parsed.Scheme)

	// Normalizar host (case-insensitive)
	parsed.Host = strings.ToLower(parsed.Host)

	// Remover puertos por defecto
	if parsed.Scheme == "http" && strings.HasSuffix(parsed.Host, ":80") {
		parsed.Host = strings.TrimSuffix(parsed.Host, ":80")
	}
	if parsed.Scheme == "https" && strings.HasSuffix(parsed.Host, ":443") {
		parsed.Host = strings.TrimSuffix(parsed.Host, ":443")
	}

	// Remover trailing slash si no hay path adicional
	if parsed.Path == "/" && parsed.RawQuery == "" && parsed.Fragment == "" {
		parsed.Path = ""
	}

	// Note: Path, query, and fragment are case-sensitive and NOT normalized
	return parsed.String()
}

// Generic validators

// IsEmpty verifica si un string está vacío o solo contiene espacios.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsAlphanumeric verifica si un string contiene solo caracteres alfanuméricos.
func IsAlphanumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	alphanumericRegex := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	return alphanumericRegex.MatchString(s)
}

// MaxLength verifica que un string no exceda una longitud máxima.
func MaxLength(s string, max int) bool {
	return len(s) <= max
}

// MinLength verifica que un string tenga al menos una longitud mínima.
func MinLength(s string, min int) bool {
	return len(s) >= min
}
