package entity

// Category representa una agrupación de productos dentro de la carta de una empresa.
// El nombre es único (case-insensitive) dentro de la empresa.
type Category struct {
	ID        int64
	CompanyID int64
	Name      string

	// CompanyName se llena vía JOIN al consultar; no es columna de categories.
	CompanyName string
}
