package dto

import "github.com/shopspring/decimal"

// MenuResponse proyección anidada de la carta pública de una empresa:
// datos públicos de la empresa más sus categorías y productos, ordenados
// alfabéticamente (case-insensitive).
type MenuResponse struct {
	Company    CompanyResponse        `json:"company"`
	Categories []MenuCategoryResponse `json:"categories"`
}

// MenuCategoryResponse categoría dentro de la carta con sus productos anidados.
type MenuCategoryResponse struct {
	ID       int64                 `json:"id"`
	Name     string                `json:"name"`
	Products []MenuProductResponse `json:"products"`
}

// MenuProductResponse producto dentro de la carta (campos públicos).
type MenuProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}
