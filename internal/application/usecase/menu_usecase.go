package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/domain"
	"github.com/cartaonline/carta-api/internal/domain/entity"
	"github.com/cartaonline/carta-api/internal/domain/repository"
)

// MenuUseCase compone la carta pública de una empresa: proyección de solo
// lectura sobre empresas, categorías y productos, sin invariantes propios.
type MenuUseCase struct {
	companies repository.CompanyRepository
	menu      repository.MenuRepository
}

// NewMenuUseCase construye el caso de uso con los puertos de lectura.
func NewMenuUseCase(companies repository.CompanyRepository, menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{companies: companies, menu: menu}
}

// GetByCompanyID arma la carta de la empresa con el ID dado.
func (uc *MenuUseCase) GetByCompanyID(ctx context.Context, companyID int64) (*dto.MenuResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.build(ctx, company)
}

// GetByCompanyName arma la carta buscando la empresa por nombre exacto,
// ignorando mayúsculas/minúsculas.
func (uc *MenuUseCase) GetByCompanyName(ctx context.Context, name string) (*dto.MenuResponse, error) {
	company, err := uc.companies.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.build(ctx, company)
}

func (uc *MenuUseCase) build(ctx context.Context, company *entity.Company) (*dto.MenuResponse, error) {
	if company == nil {
		return nil, domain.NotFoundError{Message: msgCompanyNotFound}
	}

	categories, err := uc.menu.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	// El orden alfabético (case-insensitive) es parte del contrato de la carta;
	// se impone aquí para no depender del orden del store.
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	out := &dto.MenuResponse{
		Company:    *companyToResponse(company),
		Categories: make([]dto.MenuCategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		sort.SliceStable(cat.Products, func(i, j int) bool {
			return strings.ToLower(cat.Products[i].Name) < strings.ToLower(cat.Products[j].Name)
		})
		mc := dto.MenuCategoryResponse{
			ID:       cat.ID,
			Name:     cat.Name,
			Products: make([]dto.MenuProductResponse, 0, len(cat.Products)),
		}
		for _, p := range cat.Products {
			mc.Products = append(mc.Products, dto.MenuProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				ImageURL:    p.ImageURL,
			})
		}
		out.Categories = append(out.Categories, mc)
	}
	return out, nil
}
