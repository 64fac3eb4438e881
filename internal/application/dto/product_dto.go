package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cartaonline/carta-api/internal/application/validate"
)

// Límites de precio del catálogo.
var (
	priceMin = decimal.RequireFromString("0.01")
	priceMax = decimal.RequireFromString("999999.99")
)

// ProductPayload entrada para crear o actualizar un producto.
type ProductPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
	CompanyID   int64           `json:"companyId"`
	ImageURL    string          `json:"imageUrl"`
}

// Validate evalúa todas las reglas y devuelve los mensajes violados, en orden.
func (p ProductPayload) Validate() []string {
	return validate.Collect(
		validate.Required("name", p.Name, "El nombre es obligatorio"),
		validate.LengthBetween("name", p.Name, 2, 200, "El nombre debe tener entre 2 y 200 caracteres"),
		validate.MaxLength("description", p.Description, 1000, "La descripción no puede exceder los 1000 caracteres"),
		validate.DecimalBetween("price", p.Price, priceMin, priceMax, "El precio debe estar entre 0.01 y 999999.99"),
		validate.PositiveID("categoryId", p.CategoryID, "El ID de la categoría debe ser mayor a 0"),
		validate.PositiveID("companyId", p.CompanyID, "El ID de la empresa debe ser mayor a 0"),
		validate.URL("imageUrl", p.ImageURL, "La URL de la imagen no es válida"),
	)
}

// Normalize recorta espacios de los campos de texto antes de persistir.
func (p *ProductPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
}

// ProductResponse salida de un producto, enriquecida con el nombre de la categoría
// (vacío si la categoría ya no existe).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   int64           `json:"categoryId"`
	CompanyID    int64           `json:"companyId"`
	ImageURL     string          `json:"imageUrl"`
	CategoryName string          `json:"categoryName"`
}
