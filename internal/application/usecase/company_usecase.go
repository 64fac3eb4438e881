package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/domain"
	"github.com/cartaonline/carta-api/internal/domain/entity"
	"github.com/cartaonline/carta-api/internal/domain/repository"
)

// Mensajes de negocio del recurso Company.
const (
	msgCompanyNotFound          = "Empresa no encontrada"
	msgCompanyEmailTaken        = "Ya existe una empresa con este email"
	msgCompanyEmailTakenByOther = "Ya existe otra empresa con este email"
	msgCompanyHasChildren       = "No se puede eliminar la empresa porque tiene categorías y/o productos asociados. Elimine primero las categorías y productos."
)

// CompanyUseCase aplica las reglas de negocio de empresas: unicidad global del
// email (case-insensitive) y bloqueo de borrado mientras existan hijos.
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, categories: categories, products: products}
}

// List devuelve todas las empresas en su forma pública.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return items, nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return companyToResponse(company), nil
}

// Create normaliza el payload, lo valida, rechaza emails ya usados
// (case-insensitive, global) y persiste.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CompanyPayload) (*dto.CompanyResponse, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return nil, domain.ValidationError{Errors: errs}
	}

	existing, err := uc.companies.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ConflictError{Message: msgCompanyEmailTaken}
	}

	company := &entity.Company{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		LogoURL: in.LogoURL,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		// El índice único del store es la autoridad final sobre la unicidad.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ConflictError{Message: msgCompanyEmailTaken}
		}
		return nil, err
	}
	return companyToResponse(company), nil
}

// Update reemplaza todos los campos mutables (nunca parcial). Si la fila
// desaparece entre la verificación y el UPDATE se reporta como no encontrada.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.CompanyPayload) error {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return domain.ValidationError{Errors: errs}
	}

	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.NotFoundError{Message: msgCompanyNotFound}
	}

	existing, err := uc.companies.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ConflictError{Message: msgCompanyEmailTakenByOther}
	}

	company.Name = in.Name
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.LogoURL = in.LogoURL

	ok, err := uc.companies.Update(ctx, company)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ConflictError{Message: msgCompanyEmailTakenByOther}
		}
		return err
	}
	if !ok {
		// Conflicto de escritura: re-verificar existencia antes de clasificar.
		again, err := uc.companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if again == nil {
			return domain.NotFoundError{Message: msgCompanyNotFound}
		}
		return fmt.Errorf("update company %d: conflicto de escritura sin resolver", id)
	}
	return nil
}

// Delete elimina la empresa solo si no posee categorías ni productos.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.NotFoundError{Message: msgCompanyNotFound}
	}

	catCount, err := uc.categories.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	prodCount, err := uc.products.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if catCount > 0 || prodCount > 0 {
		return domain.ConflictError{Message: msgCompanyHasChildren}
	}

	if err := uc.companies.Delete(ctx, id); err != nil {
		// El RESTRICT de la FK ganó la carrera contra un create concurrente.
		if errors.Is(err, domain.ErrConflict) {
			return domain.ConflictError{Message: msgCompanyHasChildren}
		}
		return err
	}
	return nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		LogoURL: c.LogoURL,
	}
}
