package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cartaonline/carta-api/internal/domain"
	"github.com/cartaonline/carta-api/internal/domain/entity"
	"github.com/cartaonline/carta-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (company_id, category_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.CompanyID, product.CategoryID, product.Name,
		product.Description, product.Price, product.ImageURL,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría (LEFT JOIN:
// vacío si la categoría no existe, defensivo ante datos huérfanos).
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT p.id, p.company_id, p.category_id, p.name, p.description, p.price, p.image_url,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByCategoryAndName obtiene un producto por categoría y nombre, ignorando
// mayúsculas/minúsculas.
func (r *ProductRepo) GetByCategoryAndName(ctx context.Context, categoryID int64, name string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, category_id, name, description, price, image_url
		FROM products
		WHERE category_id = $1 AND LOWER(name) = LOWER($2)`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, categoryID, name).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// List devuelve productos con el nombre de su categoría. Filtros opcionales y
// combinables por empresa y categoría (cero = sin filtro).
func (r *ProductRepo) List(ctx context.Context, companyID, categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.company_id, p.category_id, p.name, p.description, p.price, p.image_url,
		       COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id`
	var args []any
	var conds []string
	if companyID > 0 {
		args = append(args, companyID)
		conds = append(conds, fmt.Sprintf("p.company_id = $%d", len(args)))
	}
	if categoryID > 0 {
		args = append(args, categoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY p.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos mutables. Devuelve false si la fila no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, company_id = $6, image_url = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.CategoryID, product.CompanyID, product.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID. Los productos no tienen hijos dependientes.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCompany cuenta los productos de una empresa.
func (r *ProductRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by company: %w", err)
	}
	return n, nil
}

// CountByCategory cuenta los productos de una categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}
