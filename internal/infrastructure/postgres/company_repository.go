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

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa y asigna el ID generado.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, address, phone, email, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		company.Name, company.Address, company.Phone, company.Email, company.LogoURL,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, logo_url
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene una empresa por email, ignorando mayúsculas/minúsculas.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, logo_url
		FROM companies WHERE LOWER(email) = LOWER($1)`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by email: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una empresa por nombre exacto, ignorando mayúsculas/minúsculas.
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, logo_url
		FROM companies WHERE LOWER(name) = LOWER($1)`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, name).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return &c, nil
}

// List devuelve todas las empresas en el orden por defecto del store.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, email, logo_url
		FROM companies ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.LogoURL); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos mutables. Devuelve false si la fila no existe.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (bool, error) {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, email = $5, logo_url = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Phone, company.Email, company.LogoURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una empresa por ID. Un RESTRICT de FK se traduce a domain.ErrConflict.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
