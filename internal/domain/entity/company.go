package entity

// Company representa un restaurante/tenant dueño de su carta (categorías y productos).
type Company struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string // almacenado en minúsculas; único (case-insensitive) entre todas las empresas
	LogoURL string // opcional, vacío si no se definió
}
