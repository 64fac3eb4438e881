package dto

import (
	"regexp"
	"strings"

	"github.com/cartaonline/carta-api/internal/application/validate"
)

// phonePattern admite dígitos, +, -, paréntesis y espacios.
var phonePattern = regexp.MustCompile(`^[\d\-\+\(\)\s]+$`)

// CompanyPayload entrada para crear o actualizar una empresa. El contrato de
// validación es idéntico en ambas variantes (reemplazo completo, sin parciales).
type CompanyPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logoUrl"`
}

// Validate evalúa todas las reglas y devuelve los mensajes violados, en orden.
func (p CompanyPayload) Validate() []string {
	return validate.Collect(
		validate.Required("name", p.Name, "El nombre es obligatorio"),
		validate.LengthBetween("name", p.Name, 2, 200, "El nombre debe tener entre 2 y 200 caracteres"),
		validate.Required("address", p.Address, "La dirección es obligatoria"),
		validate.MaxLength("address", p.Address, 500, "La dirección no puede exceder los 500 caracteres"),
		validate.Required("phone", p.Phone, "El teléfono es obligatorio"),
		validate.MaxLength("phone", p.Phone, 50, "El teléfono no puede exceder los 50 caracteres"),
		validate.Matches("phone", p.Phone, phonePattern, "El formato del teléfono no es válido"),
		validate.Required("email", p.Email, "El email es obligatorio"),
		validate.Email("email", p.Email, "El formato del email no es válido"),
		validate.MaxLength("email", p.Email, 200, "El email no puede exceder los 200 caracteres"),
		validate.URL("logoUrl", p.LogoURL, "La URL del logo no es válida"),
	)
}

// Normalize recorta espacios y pasa el email a minúsculas antes de persistir.
func (p *CompanyPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.LogoURL = strings.TrimSpace(p.LogoURL)
}

// CompanyResponse salida pública de una empresa.
type CompanyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LogoURL string `json:"logoUrl"`
}
