package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ProductFilter criterios de listado (conjunción). Campos vacíos no filtran.
type ProductFilter struct {
	Category     string
	LowStockOnly bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID, Update y Delete devuelven domain.ErrNotFound si el registro no existe.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, ids ...string) error
}
