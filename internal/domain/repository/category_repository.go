package repository

import (
	"context"

	"github.com/cartaonline/carta-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create persiste la categoría y asigna category.ID.
	Create(ctx context.Context, category *entity.Category) error
	// GetByID devuelve la categoría con CompanyName resuelto vía JOIN.
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// GetByCompanyAndName busca por nombre dentro de la empresa, ignorando
	// mayúsculas/minúsculas (chequeo de unicidad).
	GetByCompanyAndName(ctx context.Context, companyID int64, name string) (*entity.Category, error)
	// List devuelve las categorías con CompanyName resuelto. companyID 0 = todas.
	List(ctx context.Context, companyID int64) ([]*entity.Category, error)
	// Update sobrescribe nombre y empresa. Devuelve false si la fila ya no existe.
	Update(ctx context.Context, category *entity.Category) (bool, error)
	Delete(ctx context.Context, id int64) error
	// CountByCompany cuenta las categorías de una empresa (bloqueo de borrado).
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
}
