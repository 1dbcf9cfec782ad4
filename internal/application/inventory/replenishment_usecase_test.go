package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
)

func TestReplenishment_PrioridadYCantidades(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(0)
	for _, p := range []entity.Product{
		{Name: "ok", SKU: "OK", CurrentStock: 50, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(1)},
		{Name: "casi", SKU: "CASI", CurrentStock: 9, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(2)},
		{Name: "mitad", SKU: "MITAD", CurrentStock: 5, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(3)},
		{Name: "agotado", SKU: "AGO", CurrentStock: 0, ReorderPoint: 3, UnitPrice: decimal.NewFromInt(4)},
	} {
		_, err := repo.Create(ctx, &p)
		require.NoError(t, err)
	}

	list, err := inventory.NewReplenishmentUseCase(repo).GenerateReplenishmentList(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "agotado", list[0].Product.Name)
	assert.Equal(t, 5, list[0].IdealStock, "ceil(3 * 1.5)")
	assert.Equal(t, 5, list[0].SuggestedOrderQty)
	assert.True(t, decimal.NewFromInt(20).Equal(list[0].EstimatedCost))

	assert.Equal(t, "mitad", list[1].Product.Name)
	assert.Equal(t, 10, list[1].SuggestedOrderQty)
	assert.Equal(t, "casi", list[2].Product.Name)
	assert.Equal(t, 3, list[2].Priority)
}
