package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// idealStockFactor el stock objetivo de reposición es 1.5 veces el punto de reorden.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReplenishmentSuggestion sugerencia de pedido para un producto en o bajo su punto de reorden.
type ReplenishmentSuggestion struct {
	Product           *entity.Product
	IdealStock        int
	SuggestedOrderQty int
	EstimatedCost     decimal.Decimal // SuggestedOrderQty * UnitPrice
	Priority          int             // 1 = más urgente
}

// ReplenishmentUseCase arma la lista de reposición a partir de los productos con bajo stock.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products}
}

// GenerateReplenishmentList devuelve los productos con bajo stock ordenados por urgencia:
// primero los agotados, luego mayor déficit relativo al punto de reorden, luego mayor déficit absoluto.
// category vacío considera todo el catálogo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, category string) ([]ReplenishmentSuggestion, error) {
	low, err := uc.products.List(ctx, repository.ProductFilter{Category: category, LowStockOnly: true})
	if err != nil {
		return nil, err
	}
	out := make([]ReplenishmentSuggestion, 0, len(low))
	for _, p := range low {
		ideal := int(decimal.NewFromInt(int64(p.ReorderPoint)).Mul(idealStockFactor).Ceil().IntPart())
		qty := ideal - p.CurrentStock
		if qty < 0 {
			qty = 0
		}
		out = append(out, ReplenishmentSuggestion{
			Product:           p,
			IdealStock:        ideal,
			SuggestedOrderQty: qty,
			EstimatedCost:     p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Product, out[j].Product
		if (a.CurrentStock == 0) != (b.CurrentStock == 0) {
			return a.CurrentStock == 0
		}
		ra, rb := deficitRatio(a), deficitRatio(b)
		if !ra.Equal(rb) {
			return ra.GreaterThan(rb)
		}
		return a.ReorderPoint-a.CurrentStock > b.ReorderPoint-b.CurrentStock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}

// deficitRatio (reorder - stock) / reorder; 0 si el punto de reorden es 0.
func deficitRatio(p *entity.Product) decimal.Decimal {
	if p.ReorderPoint == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.ReorderPoint - p.CurrentStock)).
		Div(decimal.NewFromInt(int64(p.ReorderPoint)))
}
