package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-dashboard/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// failingProducts envuelve un repo real y hace fallar Update.
type failingProducts struct {
	repository.ProductRepository
	err error
}

func (f failingProducts) Update(context.Context, *entity.Product) (*entity.Product, error) {
	return nil, f.err
}

// failingMovements hace fallar Create.
type failingMovements struct {
	repository.StockMovementRepository
	err error
}

func (f failingMovements) Create(context.Context, *entity.StockMovement) (*entity.StockMovement, error) {
	return nil, f.err
}

type fixture struct {
	store *memory.Store
	uc    *inventory.AdjustStockUseCase
	prod  *entity.Product
}

func newFixture(t *testing.T, stock int) fixture {
	t.Helper()
	store := memory.NewStore(0)
	p, err := store.Products.Create(context.Background(), &entity.Product{
		Name: "Tornillo", SKU: "TOR-1", CurrentStock: stock, ReorderPoint: 10, UnitPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	return fixture{
		store: store,
		uc:    inventory.NewAdjustStockUseCase(store.Products, store.Movements, nil, nil),
		prod:  p,
	}
}

func (f fixture) movements(t *testing.T) []*entity.StockMovement {
	t.Helper()
	list, err := f.store.Movements.List(context.Background(), repository.MovementFilter{ProductID: f.prod.ID})
	require.NoError(t, err)
	return list
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_NuevoStockEsMaxCeroSuma(t *testing.T) {
	cases := []struct {
		stock, delta, want int
	}{
		{10, 5, 15},
		{10, -3, 7},
		{10, -10, 0},
		{3, -7, 0},
		{0, -1, 0},
		{0, 1, 1},
	}
	for _, tc := range cases {
		f := newFixture(t, tc.stock)
		got, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: tc.delta})
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.CurrentStock, "stock %d delta %d", tc.stock, tc.delta)

		stored, _ := f.store.Products.GetByID(context.Background(), f.prod.ID)
		assert.Equal(t, tc.want, stored.CurrentStock)
	}
}

func TestAdjustStock_CeroSeRechazaSinEscribir(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, inventory.ErrZeroDelta))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.movements(t), "no se escribe ningún movimiento")
}

func TestAdjustStock_UnMovimientoConCantidadAbsoluta(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{
		Product: f.prod, Delta: -4, Reason: inventory.ReasonDamage, Notes: "caja rota", UserID: "u-1",
	})
	require.NoError(t, err)

	movs := f.movements(t)
	require.Len(t, movs, 1)
	m := movs[0]
	assert.Equal(t, 4, m.Quantity)
	assert.Equal(t, entity.MovementTypeAdjustment, m.Type)
	assert.Equal(t, inventory.ReasonDamage, m.Reason)
	assert.Equal(t, "caja rota", m.Notes)
	assert.Equal(t, "u-1", m.UserID)
	assert.False(t, m.Timestamp.IsZero())
}

func TestAdjustStock_MotivoPorDefecto(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: 2})
	require.NoError(t, err)
	assert.Equal(t, inventory.ReasonCountAdjustment, f.movements(t)[0].Reason)
}

func TestAdjustStock_MotivoDesconocido(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: 2, Reason: "Robo"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.movements(t))
}

func TestAdjustStock_NoModificaElProductoDeEntrada(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: 5})
	require.NoError(t, err)
	assert.Equal(t, 10, f.prod.CurrentStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste rápido
// ──────────────────────────────────────────────────────────────────────────────

func TestQuickAdjust_TiposYMotivos(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	up, err := f.uc.QuickAdjust(ctx, f.prod, 1, "u")
	require.NoError(t, err)
	assert.Equal(t, 2, up.CurrentStock)

	down, err := f.uc.QuickAdjust(ctx, up, -1, "u")
	require.NoError(t, err)
	assert.Equal(t, 1, down.CurrentStock)

	movs := f.movements(t)
	require.Len(t, movs, 2)
	byType := map[string]*entity.StockMovement{}
	for _, m := range movs {
		byType[m.Type] = m
	}
	require.Contains(t, byType, entity.MovementTypeIn)
	require.Contains(t, byType, entity.MovementTypeOut)
	assert.Equal(t, inventory.ReasonQuickAdd, byType[entity.MovementTypeIn].Reason)
	assert.Equal(t, inventory.ReasonQuickRemove, byType[entity.MovementTypeOut].Reason)
	assert.Empty(t, byType[entity.MovementTypeOut].Notes)
	assert.Equal(t, 1, byType[entity.MovementTypeOut].Quantity)
}

func TestQuickAdjust_PasoInvalido(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.uc.QuickAdjust(context.Background(), f.prod, 2, "u")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.movements(t))
}

func TestQuickAdjust_EnCeroQuedaEnCero(t *testing.T) {
	f := newFixture(t, 0)
	got, err := f.uc.QuickAdjust(context.Background(), f.prod, -1, "u")
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Len(t, f.movements(t), 1, "el movimiento se registra aunque el stock ya esté en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos parciales
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_FallaMovimiento_ProductoIntacto(t *testing.T) {
	f := newFixture(t, 10)
	boom := errors.New("almacén caído")
	uc := inventory.NewAdjustStockUseCase(f.store.Products, failingMovements{f.store.Movements, boom}, nil, nil)

	_, err := uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, domain.ErrStockDrift))

	stored, _ := f.store.Products.GetByID(context.Background(), f.prod.ID)
	assert.Equal(t, 10, stored.CurrentStock)
}

func TestAdjustStock_FallaProducto_EsDrift(t *testing.T) {
	f := newFixture(t, 10)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	boom := errors.New("timeout")
	uc := inventory.NewAdjustStockUseCase(failingProducts{f.store.Products, boom}, f.store.Movements, nil, m)

	_, err := uc.AdjustStock(context.Background(), inventory.AdjustStockInput{Product: f.prod, Delta: -4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockDrift))
	assert.True(t, errors.Is(err, boom), "conserva la causa")

	var drift *domain.StockDriftError
	require.True(t, errors.As(err, &drift))
	assert.Equal(t, f.prod.ID, drift.ProductID)
	assert.Equal(t, 6, drift.ExpectedStock)
	assert.Equal(t, 10, drift.PreviousStock)

	movs := f.movements(t)
	require.Len(t, movs, 1, "el movimiento quedó persistido")
	assert.Equal(t, movs[0].ID, drift.MovementID)

	expected := `
# HELP stock_drift_total Movements persisted whose product stock write failed afterwards.
# TYPE stock_drift_total counter
stock_drift_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "stock_drift_total"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Variantes por ID
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStockByID(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	got, err := f.uc.AdjustStockByID(ctx, f.prod.ID, inventory.AdjustStockInput{Delta: 5, Reason: inventory.ReasonReturn})
	require.NoError(t, err)
	assert.Equal(t, 15, got.Product.CurrentStock)
	assert.Equal(t, 10, got.PreviousStock)

	_, err = f.uc.AdjustStockByID(ctx, "nope", inventory.AdjustStockInput{Delta: 5})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	quick, err := f.uc.QuickAdjustByID(ctx, f.prod.ID, -1, "u")
	require.NoError(t, err)
	assert.Equal(t, 15, quick.PreviousStock)
	stored, _ := f.store.Products.GetByID(ctx, f.prod.ID)
	assert.Equal(t, 14, stored.CurrentStock)
}
