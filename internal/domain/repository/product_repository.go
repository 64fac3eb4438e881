package repository

import (
	"context"

	"github.com/cartaonline/carta-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve el producto con CategoryName resuelto vía LEFT JOIN
	// (vacío si la categoría no existe).
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByCategoryAndName busca por nombre dentro de la categoría, ignorando
	// mayúsculas/minúsculas (chequeo de unicidad).
	GetByCategoryAndName(ctx context.Context, categoryID int64, name string) (*entity.Product, error)
	// List devuelve productos con CategoryName resuelto. Filtros opcionales:
	// companyID y/o categoryID en cero significan sin filtro.
	List(ctx context.Context, companyID, categoryID int64) ([]*entity.Product, error)
	// Update sobrescribe todos los campos mutables. Devuelve false si la fila ya no existe.
	Update(ctx context.Context, product *entity.Product) (bool, error)
	Delete(ctx context.Context, id int64) error
	// CountByCompany y CountByCategory soportan el bloqueo de borrado de padres.
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
