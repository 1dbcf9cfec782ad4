package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// MovementFilter criterios de listado de movimientos. From/To acotan Timestamp (inclusive).
type MovementFilter struct {
	ProductID string
	From      *time.Time
	To        *time.Time
}

// StockMovementRepository define el puerto de persistencia para movimientos de inventario (DIP).
type StockMovementRepository interface {
	List(ctx context.Context, filter MovementFilter) ([]*entity.StockMovement, error)
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	Create(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error)
	Update(ctx context.Context, movement *entity.StockMovement) (*entity.StockMovement, error)
	Delete(ctx context.Context, ids ...string) error
}
