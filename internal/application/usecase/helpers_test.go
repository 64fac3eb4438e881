package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/application/usecase"
	"github.com/cartaonline/carta-api/internal/testutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newStore() *testutil.Store { return testutil.NewStore() }

func newCompanyUC(s *testutil.Store) *usecase.CompanyUseCase {
	return usecase.NewCompanyUseCase(s.CompanyRepo(), s.CategoryRepo(), s.ProductRepo())
}

func newCategoryUC(s *testutil.Store) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(s.CategoryRepo(), s.CompanyRepo(), s.ProductRepo())
}

func newProductUC(s *testutil.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(s.ProductRepo(), s.CategoryRepo(), s.CompanyRepo())
}

func newMenuUC(s *testutil.Store) *usecase.MenuUseCase {
	return usecase.NewMenuUseCase(s.CompanyRepo(), s.MenuRepo())
}

// Payloads válidos de base para los tests; cada caso ajusta lo que necesita.

func validCompanyPayload() dto.CompanyPayload {
	return dto.CompanyPayload{
		Name:    "Pizza Co",
		Address: "1 Main St",
		Phone:   "123-4567",
		Email:   "a@a.com",
	}
}

func validCategoryPayload(companyID int64) dto.CategoryPayload {
	return dto.CategoryPayload{Name: "Drinks", CompanyID: companyID}
}

func validProductPayload(companyID, categoryID int64) dto.ProductPayload {
	return dto.ProductPayload{
		Name:       "Cola",
		Price:      dec("2.50"),
		CategoryID: categoryID,
		CompanyID:  companyID,
	}
}
