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

// Mensajes de negocio del recurso Category.
const (
	msgCategoryNotFound         = "Categoría no encontrada"
	msgCompanyMissing           = "La empresa especificada no existe"
	msgCategoryNameTaken        = "Ya existe una categoría con este nombre en la empresa especificada"
	msgCategoryNameTakenByOther = "Ya existe otra categoría con este nombre en la empresa especificada"
	msgCategoryHasProducts      = "No se puede eliminar la categoría porque tiene productos asociados. Elimine primero los productos."
)

// CategoryUseCase aplica las reglas de negocio de categorías: la empresa debe
// existir, el nombre es único (case-insensitive) dentro de la empresa y el
// borrado se bloquea mientras queden productos.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	companies  repository.CompanyRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso con los puertos de persistencia.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	companies repository.CompanyRepository,
	products repository.ProductRepository,
) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, companies: companies, products: products}
}

// List devuelve las categorías, opcionalmente filtradas por empresa (companyID 0
// = todas), cada una con el nombre de su empresa.
func (uc *CategoryUseCase) List(ctx context.Context, companyID int64) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *categoryToResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return categoryToResponse(category), nil
}

// Create normaliza y valida el payload, verifica que la empresa exista y que
// el nombre no esté tomado dentro de ella, y persiste.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryPayload) (*dto.CategoryResponse, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return nil, domain.ValidationError{Errors: errs}
	}

	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ConflictError{Message: msgCompanyMissing}
	}

	existing, err := uc.categories.GetByCompanyAndName(ctx, in.CompanyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ConflictError{Message: msgCategoryNameTaken}
	}

	category := &entity.Category{
		CompanyID:   in.CompanyID,
		Name:        in.Name,
		CompanyName: company.Name,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ConflictError{Message: msgCategoryNameTaken}
		}
		return nil, err
	}
	return categoryToResponse(category), nil
}

// Update reemplaza nombre y empresa (se permite re-parentar). Excluye la propia
// fila del chequeo de unicidad.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryPayload) error {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return domain.ValidationError{Errors: errs}
	}

	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.NotFoundError{Message: msgCategoryNotFound}
	}

	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ConflictError{Message: msgCompanyMissing}
	}

	existing, err := uc.categories.GetByCompanyAndName(ctx, in.CompanyID, in.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ConflictError{Message: msgCategoryNameTakenByOther}
	}

	category.Name = in.Name
	category.CompanyID = in.CompanyID

	ok, err := uc.categories.Update(ctx, category)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ConflictError{Message: msgCategoryNameTakenByOther}
		}
		return err
	}
	if !ok {
		again, err := uc.categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if again == nil {
			return domain.NotFoundError{Message: msgCategoryNotFound}
		}
		return fmt.Errorf("update category %d: conflicto de escritura sin resolver", id)
	}
	return nil
}

// Delete elimina la categoría solo si no posee productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.NotFoundError{Message: msgCategoryNotFound}
	}

	prodCount, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if prodCount > 0 {
		return domain.ConflictError{Message: msgCategoryHasProducts}
	}

	if err := uc.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ConflictError{Message: msgCategoryHasProducts}
		}
		return err
	}
	return nil
}

func categoryToResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
	}
}
