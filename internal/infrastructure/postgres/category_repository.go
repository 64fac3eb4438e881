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

// Asegura que CategoryRepo implementa repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (company_id, name)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, category.CompanyID, category.Name).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID con el nombre de su empresa.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT c.id, c.company_id, c.name, e.name
		FROM categories c
		JOIN companies e ON e.id = c.company_id
		WHERE c.id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.CompanyID, &c.Name, &c.CompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByCompanyAndName obtiene una categoría por empresa y nombre, ignorando
// mayúsculas/minúsculas.
func (r *CategoryRepo) GetByCompanyAndName(ctx context.Context, companyID int64, name string) (*entity.Category, error) {
	query := `
		SELECT id, company_id, name
		FROM categories
		WHERE company_id = $1 AND LOWER(name) = LOWER($2)`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, companyID, name).Scan(&c.ID, &c.CompanyID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// List devuelve las categorías con el nombre de su empresa. companyID 0 = todas.
func (r *CategoryRepo) List(ctx context.Context, companyID int64) ([]*entity.Category, error) {
	query := `
		SELECT c.id, c.company_id, c.name, e.name
		FROM categories c
		JOIN companies e ON e.id = c.company_id`
	var args []any
	if companyID > 0 {
		query += ` WHERE c.company_id = $1`
		args = append(args, companyID)
	}
	query += ` ORDER BY c.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.CompanyName); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe nombre y empresa. Devuelve false si la fila no existe.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) (bool, error) {
	query := `
		UPDATE categories SET name = $2, company_id = $3
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, category.ID, category.Name, category.CompanyID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una categoría por ID. Un RESTRICT de FK se traduce a domain.ErrConflict.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CountByCompany cuenta las categorías de una empresa.
func (r *CategoryRepo) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories by company: %w", err)
	}
	return n, nil
}
