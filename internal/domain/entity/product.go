package entity

import "github.com/shopspring/decimal"

// Product representa un ítem de la carta. Pertenece a una categoría y, de forma
// redundante, a la empresa dueña de esa categoría (category.CompanyID debe coincidir).
// El nombre es único (case-insensitive) dentro de la categoría.
type Product struct {
	ID          int64
	CompanyID   int64
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal // 0.01 – 999999.99
	ImageURL    string

	// CategoryName se llena vía JOIN al consultar; vacío si la categoría no existe
	// (dato huérfano, defensivo).
	CategoryName string
}
