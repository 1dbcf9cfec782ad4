package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	Delete(ctx context.Context, ids ...string) error
}
