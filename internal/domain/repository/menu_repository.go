package repository

import (
	"context"

	"github.com/cartaonline/carta-api/internal/domain/entity"
)

// MenuRepository define el puerto de lectura de la carta pública: las categorías
// de una empresa con sus productos anidados. Solo lectura, sin mutaciones.
type MenuRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.MenuCategory, error)
}
