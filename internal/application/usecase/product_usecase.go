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

// Mensajes de negocio del recurso Product.
const (
	msgProductNotFound         = "Producto no encontrado"
	msgCategoryMissing         = "La categoría especificada no existe"
	msgCategoryNotOwned        = "La categoría no pertenece a la empresa especificada"
	msgProductNameTaken        = "Ya existe un producto con este nombre en la categoría especificada"
	msgProductNameTakenByOther = "Ya existe otro producto con este nombre en la categoría especificada"
)

// ProductUseCase aplica las reglas de negocio de productos. La cadena de
// verificaciones es la misma en create y update: la categoría existe, la
// empresa existe, la categoría pertenece a esa empresa (el invariante
// cruzado), y el nombre es único (case-insensitive) dentro de la categoría.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	companies  repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso con los puertos de persistencia.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	companies repository.CompanyRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, companies: companies}
}

// List devuelve los productos, con filtros opcionales por empresa y/o categoría
// (cero = sin filtro), cada uno con el nombre de su categoría.
func (uc *ProductUseCase) List(ctx context.Context, companyID, categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *productToResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return productToResponse(product), nil
}

// Create normaliza y valida el payload, ejecuta la cadena de verificaciones
// referenciales y de unicidad, y persiste.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductPayload) (*dto.ProductResponse, error) {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return nil, domain.ValidationError{Errors: errs}
	}

	category, err := uc.checkReferences(ctx, in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.products.GetByCategoryAndName(ctx, in.CategoryID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ConflictError{Message: msgProductNameTaken}
	}

	product := &entity.Product{
		CompanyID:    in.CompanyID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		CategoryName: category.Name,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ConflictError{Message: msgProductNameTaken}
		}
		return nil, err
	}
	return productToResponse(product), nil
}

// Update reemplaza todos los campos mutables con la misma cadena de
// verificaciones que Create, excluyendo la propia fila de la unicidad.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductPayload) error {
	in.Normalize()
	if errs := in.Validate(); len(errs) > 0 {
		return domain.ValidationError{Errors: errs}
	}

	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFoundError{Message: msgProductNotFound}
	}

	if _, err := uc.checkReferences(ctx, in); err != nil {
		return err
	}

	existing, err := uc.products.GetByCategoryAndName(ctx, in.CategoryID, in.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ConflictError{Message: msgProductNameTakenByOther}
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.CompanyID = in.CompanyID
	product.ImageURL = in.ImageURL

	ok, err := uc.products.Update(ctx, product)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ConflictError{Message: msgProductNameTakenByOther}
		}
		return err
	}
	if !ok {
		again, err := uc.products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if again == nil {
			return domain.NotFoundError{Message: msgProductNotFound}
		}
		return fmt.Errorf("update product %d: conflicto de escritura sin resolver", id)
	}
	return nil
}

// Delete elimina el producto sin condiciones: no tiene hijos dependientes.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFoundError{Message: msgProductNotFound}
	}
	return uc.products.Delete(ctx, id)
}

// checkReferences verifica categoría existente, empresa existente y que la
// categoría pertenezca a la empresa declarada. Devuelve la categoría para
// enriquecer la respuesta.
func (uc *ProductUseCase) checkReferences(ctx context.Context, in dto.ProductPayload) (*entity.Category, error) {
	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ConflictError{Message: msgCategoryMissing}
	}

	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ConflictError{Message: msgCompanyMissing}
	}

	if category.CompanyID != in.CompanyID {
		return nil, domain.ConflictError{Message: msgCategoryNotOwned}
	}
	return category, nil
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CompanyID:    p.CompanyID,
		ImageURL:     p.ImageURL,
		CategoryName: p.CategoryName,
	}
}
