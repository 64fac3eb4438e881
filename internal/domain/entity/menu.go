package entity

import "github.com/shopspring/decimal"

// MenuCategory es una fila de la proyección de carta: una categoría con sus productos.
// Es solo lectura; no se persiste como tal.
type MenuCategory struct {
	ID       int64
	Name     string
	Products []MenuProduct
}

// MenuProduct es un producto dentro de la proyección de carta (campos públicos).
type MenuProduct struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}
