package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cartaonline/carta-api/internal/domain/entity"
	"github.com/cartaonline/carta-api/internal/domain/repository"
)

// Asegura que MenuRepo implementa repository.MenuRepository.
var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo lectura de la carta pública sobre PostgreSQL: una sola consulta
// con LEFT JOIN que agrupa productos bajo su categoría.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador de lectura de carta. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// ListByCompany devuelve las categorías de la empresa con sus productos
// anidados, ambos ordenados alfabéticamente (case-insensitive). Una categoría
// sin productos aparece con la lista vacía.
func (r *MenuRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.MenuCategory, error) {
	query := `
		SELECT c.id, c.name, p.id, p.name, p.description, p.price, p.image_url
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.company_id = $1
		ORDER BY LOWER(c.name), LOWER(p.name)`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var list []*entity.MenuCategory
	var current *entity.MenuCategory
	for rows.Next() {
		var (
			catID   int64
			catName string
			// columnas de producto anulables por el LEFT JOIN
			prodID    *int64
			prodName  *string
			prodDesc  *string
			prodPrice *decimal.Decimal
			prodImage *string
		)
		if err := rows.Scan(&catID, &catName, &prodID, &prodName, &prodDesc, &prodPrice, &prodImage); err != nil {
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		if current == nil || current.ID != catID {
			current = &entity.MenuCategory{ID: catID, Name: catName, Products: []entity.MenuProduct{}}
			list = append(list, current)
		}
		if prodID != nil {
			current.Products = append(current.Products, entity.MenuProduct{
				ID:          *prodID,
				Name:        *prodName,
				Description: *prodDesc,
				Price:       *prodPrice,
				ImageURL:    *prodImage,
			})
		}
	}
	return list, rows.Err()
}
