// Package testutil provee un store en memoria que implementa los puertos de
// persistencia del dominio, para ejercitar casos de uso y handlers sin base de
// datos. Sin concurrencia: los tests que lo usan son secuenciales.
package testutil

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cartaonline/carta-api/internal/domain/entity"
	"github.com/cartaonline/carta-api/internal/domain/repository"
)

// Store agrupa las tres colecciones y el contador de ids compartido.
type Store struct {
	companies  []*entity.Company
	categories []*entity.Category
	products   []*entity.Product
	nextID     int64
}

// NewStore crea un store vacío.
func NewStore() *Store { return &Store{} }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Helpers de seed para armar escenarios. Asignan ids secuenciales compartidos
// entre los tres tipos.

// SeedCompany agrega una empresa con datos de relleno válidos.
func (s *Store) SeedCompany(name, email string) *entity.Company {
	c := &entity.Company{ID: s.id(), Name: name, Address: "Calle 1", Phone: "123-4567", Email: strings.ToLower(email)}
	s.companies = append(s.companies, c)
	return c
}

// SeedCategory agrega una categoría bajo la empresa dada.
func (s *Store) SeedCategory(companyID int64, name string) *entity.Category {
	c := &entity.Category{ID: s.id(), CompanyID: companyID, Name: name}
	s.categories = append(s.categories, c)
	return c
}

// SeedProduct agrega un producto bajo la empresa y categoría dadas.
func (s *Store) SeedProduct(companyID, categoryID int64, name, price string) *entity.Product {
	p := &entity.Product{ID: s.id(), CompanyID: companyID, CategoryID: categoryID, Name: name, Price: decimal.RequireFromString(price)}
	s.products = append(s.products, p)
	return p
}

func (s *Store) companyByID(id int64) *entity.Company {
	for _, c := range s.companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) categoryByID(id int64) *entity.Category {
	for _, c := range s.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CompanyRepo devuelve el puerto de empresas sobre este store.
func (s *Store) CompanyRepo() repository.CompanyRepository { return &companyRepo{s} }

// CategoryRepo devuelve el puerto de categorías sobre este store.
func (s *Store) CategoryRepo() repository.CategoryRepository { return &categoryRepo{s} }

// ProductRepo devuelve el puerto de productos sobre este store.
func (s *Store) ProductRepo() repository.ProductRepository { return &productRepo{s} }

// MenuRepo devuelve el puerto de lectura de la carta sobre este store.
func (s *Store) MenuRepo() repository.MenuRepository { return &menuRepo{s} }

// ─── CompanyRepository ────────────────────────────────────────────────────────

type companyRepo struct{ s *Store }

func (r *companyRepo) Create(_ context.Context, company *entity.Company) error {
	company.ID = r.s.id()
	clone := *company
	r.s.companies = append(r.s.companies, &clone)
	return nil
}

func (r *companyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if c := r.s.companyByID(id); c != nil {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (r *companyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if strings.EqualFold(c.Email, email) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *companyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *companyRepo) List(_ context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *companyRepo) Update(_ context.Context, company *entity.Company) (bool, error) {
	existing := r.s.companyByID(company.ID)
	if existing == nil {
		return false, nil
	}
	*existing = *company
	return true, nil
}

func (r *companyRepo) Delete(_ context.Context, id int64) error {
	for i, c := range r.s.companies {
		if c.ID == id {
			r.s.companies = append(r.s.companies[:i], r.s.companies[i+1:]...)
			break
		}
	}
	return nil
}

// ─── CategoryRepository ───────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = r.s.id()
	clone := *category
	r.s.categories = append(r.s.categories, &clone)
	return nil
}

func (r *categoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c := r.s.categoryByID(id)
	if c == nil {
		return nil, nil
	}
	clone := *c
	if company := r.s.companyByID(c.CompanyID); company != nil {
		clone.CompanyName = company.Name
	}
	return &clone, nil
}

func (r *categoryRepo) GetByCompanyAndName(_ context.Context, companyID int64, name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.CompanyID == companyID && strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) List(_ context.Context, companyID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		if companyID > 0 && c.CompanyID != companyID {
			continue
		}
		clone := *c
		if company := r.s.companyByID(c.CompanyID); company != nil {
			clone.CompanyName = company.Name
		}
		out = append(out, &clone)
	}
	return out, nil
}

func (r *categoryRepo) Update(_ context.Context, category *entity.Category) (bool, error) {
	existing := r.s.categoryByID(category.ID)
	if existing == nil {
		return false, nil
	}
	*existing = *category
	return true, nil
}

func (r *categoryRepo) Delete(_ context.Context, id int64) error {
	for i, c := range r.s.categories {
		if c.ID == id {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			break
		}
	}
	return nil
}

func (r *categoryRepo) CountByCompany(_ context.Context, companyID int64) (int64, error) {
	var n int64
	for _, c := range r.s.categories {
		if c.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

// ─── ProductRepository ────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = r.s.id()
	clone := *product
	r.s.products = append(r.s.products, &clone)
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			clone := *p
			if cat := r.s.categoryByID(p.CategoryID); cat != nil {
				clone.CategoryName = cat.Name
			}
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *productRepo) GetByCategoryAndName(_ context.Context, categoryID int64, name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.CategoryID == categoryID && strings.EqualFold(p.Name, name) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *productRepo) List(_ context.Context, companyID, categoryID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if companyID > 0 && p.CompanyID != companyID {
			continue
		}
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}
		clone := *p
		if cat := r.s.categoryByID(p.CategoryID); cat != nil {
			clone.CategoryName = cat.Name
		}
		out = append(out, &clone)
	}
	return out, nil
}

func (r *productRepo) Update(_ context.Context, product *entity.Product) (bool, error) {
	for _, p := range r.s.products {
		if p.ID == product.ID {
			*p = *product
			return true, nil
		}
	}
	return false, nil
}

func (r *productRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			break
		}
	}
	return nil
}

func (r *productRepo) CountByCompany(_ context.Context, companyID int64) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *productRepo) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// ─── MenuRepository ───────────────────────────────────────────────────────────

// menuRepo devuelve las categorías y productos en orden de inserción: el caso
// de uso es quien debe ordenar alfabéticamente.
type menuRepo struct{ s *Store }

func (r *menuRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.MenuCategory, error) {
	var out []*entity.MenuCategory
	for _, c := range r.s.categories {
		if c.CompanyID != companyID {
			continue
		}
		mc := &entity.MenuCategory{ID: c.ID, Name: c.Name, Products: []entity.MenuProduct{}}
		for _, p := range r.s.products {
			if p.CategoryID == c.ID {
				mc.Products = append(mc.Products, entity.MenuProduct{
					ID:          p.ID,
					Name:        p.Name,
					Description: p.Description,
					Price:       p.Price,
					ImageURL:    p.ImageURL,
				})
			}
		}
		out = append(out, mc)
	}
	return out, nil
}
