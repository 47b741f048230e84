// internal/core/domain/subject.go
package domain

import (
	"fmt"
	"strings"

	"laelaps/internal/platform/validator"
)

// Subject representa los atributos de identidad disponibles para una consulta.
// Es inmutable tras Validate(): las probes concurrentes lo comparten en solo lectura.
type Subject struct {
	// Name nombre completo de la persona
	Name string `json:"name,omitempty"`

	// Username alias conocido en plataformas
	Username string `json:"username,omitempty"`

	// Email dirección de correo conocida
	Email string `json:"email,omitempty"`

	// Phone número de teléfono conocido
	Phone string `json:"phone,omitempty"`

	// Domain dominio asociado al sujeto
	Domain string `json:"domain,omitempty"`

	// City y State acotan la búsqueda de enlaces y registros judiciales
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// Validate normaliza los atributos y verifica que el sujeto sea consultable.
// Un sujeto sin ningún atributo seleccionable es un error de entrada del
// llamador, distinto de cualquier fallo de probe.
func (s *Subject) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Username = strings.TrimSpace(s.Username)
	s.City = strings.TrimSpace(s.City)
	s.State = strings.ToUpper(strings.TrimSpace(s.State))

	if s.Email != "" {
		s.Email = validator.NormalizeEmail(s.Email)
		if !validator.IsEmail(s.Email) {
			return fmt.Errorf("%w: %s", ErrInvalidEmail, s.Email)
		}
	}

	if s.Domain != "" {
		s.Domain = validator.NormalizeDomain(s.Domain)
		if !validator.IsDomain(s.Domain) {
			return fmt.Errorf("%w: %s", ErrInvalidDomain, s.Domain)
		}
	}

	if s.Phone != "" {
		s.Phone = validator.NormalizePhone(s.Phone)
		if !validator.IsPhone(s.Phone) {
			return fmt.Errorf("%w: %s", ErrInvalidPhone, s.Phone)
		}
	}

	if len(s.Attributes()) == 0 {
		return ErrNoAttributes
	}

	return nil
}

// Attribute retorna el valor del atributo pedido, o cadena vacía si no está.
func (s *Subject) Attribute(attr Attribute) string {
	switch attr {
	case AttributeName:
		return s.Name
	case AttributeUsername:
		return s.Username
	case AttributeEmail:
		return s.Email
	case AttributePhone:
		return s.Phone
	case AttributeDomain:
		return s.Domain
	default:
		return ""
	}
}

// Has verifica si el atributo está presente y no vacío.
func (s *Subject) Has(attr Attribute) bool {
	return s.Attribute(attr) != ""
}

// Attributes retorna los atributos presentes en orden estable de selección.
func (s *Subject) Attributes() []Attribute {
	present := make([]Attribute, 0, 5)
	for _, attr := range AllAttributes() {
		if s.Has(attr) {
			present = append(present, attr)
		}
	}
	return present
}

// WithAttribute retorna una copia del sujeto con el atributo reemplazado.
// Se usa en rondas derivadas (una variación de username por ronda) sin
// mutar el sujeto original compartido.
func (s *Subject) WithAttribute(attr Attribute, value string) *Subject {
	clone := *s
	switch attr {
	case AttributeName:
		clone.Name = value
	case AttributeUsername:
		clone.Username = value
	case AttributeEmail:
		clone.Email = value
	case AttributePhone:
		clone.Phone = value
	case AttributeDomain:
		clone.Domain = value
	}
	return &clone
}

// Label retorna el identificador más representativo del sujeto para logs y
// nombres de archivo de salida.
func (s *Subject) Label() string {
	for _, attr := range AllAttributes() {
		if v := s.Attribute(attr); v != "" {
			return v
		}
	}
	return "unknown"
}

// String retorna una representación legible del sujeto.
func (s *Subject) String() string {
	parts := make([]string, 0, 5)
	for _, attr := range s.Attributes() {
		parts = append(parts, fmt.Sprintf("%s=%s", attr, s.Attribute(attr)))
	}
	return fmt.Sprintf("Subject{%s}", strings.Join(parts, ", "))
}
