package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cartaonline/carta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	MenuUC     *usecase.MenuUseCase
}

// Router registra las rutas de la API. Fiber no distingue mayúsculas en rutas,
// así que /api/Companies y /api/companies son equivalentes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/Companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	categories := api.Group("/Categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/Products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Carta pública (solo lectura)
	menu := api.Group("/Menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Get("/company/:companyId", menuHandler.ByCompanyID)
	menu.Get("/company-name/:companyName", menuHandler.ByCompanyName)
}
