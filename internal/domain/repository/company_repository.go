package repository

import (
	"context"

	"github.com/cartaonline/carta-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa y asigna company.ID.
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// GetByEmail busca por email ignorando mayúsculas/minúsculas.
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	// GetByName busca por nombre exacto ignorando mayúsculas/minúsculas (carta pública).
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	// Update sobrescribe todos los campos mutables. Devuelve false si la fila ya no existe.
	Update(ctx context.Context, company *entity.Company) (bool, error)
	Delete(ctx context.Context, id int64) error
}
