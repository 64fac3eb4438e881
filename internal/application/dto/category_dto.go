package dto

import (
	"strings"

	"github.com/cartaonline/carta-api/internal/application/validate"
)

// CategoryPayload entrada para crear o actualizar una categoría.
type CategoryPayload struct {
	Name      string `json:"name"`
	CompanyID int64  `json:"companyId"`
}

// Validate evalúa todas las reglas y devuelve los mensajes violados, en orden.
func (p CategoryPayload) Validate() []string {
	return validate.Collect(
		validate.Required("name", p.Name, "El nombre es obligatorio"),
		validate.LengthBetween("name", p.Name, 2, 200, "El nombre debe tener entre 2 y 200 caracteres"),
		validate.PositiveID("companyId", p.CompanyID, "El ID de la empresa debe ser mayor a 0"),
	)
}

// Normalize recorta espacios del nombre antes de persistir.
func (p *CategoryPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

// CategoryResponse salida de una categoría, enriquecida con el nombre de la empresa.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CompanyID   int64  `json:"companyId"`
	CompanyName string `json:"companyName"`
}
