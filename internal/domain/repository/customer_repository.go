package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, ids ...string) error
}
