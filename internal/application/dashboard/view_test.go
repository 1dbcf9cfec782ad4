package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

func product(name, sku, category string, stock, reorder int, price string) *entity.Product {
	return &entity.Product{
		ID: sku, Name: name, SKU: sku, Category: category,
		CurrentStock: stock, ReorderPoint: reorder,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func names(ps []*entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden
// ──────────────────────────────────────────────────────────────────────────────

func TestSortProducts_PrecioNumerico(t *testing.T) {
	ps := []*entity.Product{
		product("a", "A", "", 1, 0, "9.99"),
		product("b", "B", "", 1, 0, "2.50"),
		product("c", "C", "", 1, 0, "100"),
	}

	asc := SortProducts(ps, SortState{Field: FieldUnitPrice, Direction: Asc})
	assert.Equal(t, []string{"b", "a", "c"}, names(asc), "100 no va antes de 2.50")

	desc := SortProducts(ps, SortState{Field: FieldUnitPrice, Direction: Desc})
	assert.Equal(t, []string{"c", "a", "b"}, names(desc))

	assert.Equal(t, []string{"a", "b", "c"}, names(ps), "la entrada no se modifica")
}

func TestSortProducts_TextoSinMayusculas(t *testing.T) {
	ps := []*entity.Product{
		product("zeta", "1", "", 0, 0, "0"),
		product("Alfa", "2", "", 0, 0, "0"),
		product("beta", "3", "", 0, 0, "0"),
	}
	got := SortProducts(ps, SortState{Field: FieldName, Direction: Asc})
	assert.Equal(t, []string{"Alfa", "beta", "zeta"}, names(got))
}

func TestSortProducts_Estable(t *testing.T) {
	ps := []*entity.Product{
		product("x", "1", "", 5, 0, "0"),
		product("y", "2", "", 3, 0, "0"),
		product("z", "3", "", 5, 0, "0"),
	}
	got := SortProducts(ps, SortState{Field: FieldCurrentStock, Direction: Desc})
	assert.Equal(t, []string{"x", "z", "y"}, names(got), "empates conservan el orden de entrada")
}

func TestSortState_Toggle(t *testing.T) {
	s := SortState{Field: FieldUnitPrice, Direction: Asc}

	s = s.Toggle(FieldUnitPrice)
	assert.Equal(t, SortState{Field: FieldUnitPrice, Direction: Desc}, s)

	s = s.Toggle(FieldUnitPrice)
	assert.Equal(t, Asc, s.Direction)

	s = SortState{Field: FieldName, Direction: Desc}.Toggle(FieldSKU)
	assert.Equal(t, SortState{Field: FieldSKU, Direction: Asc}, s, "otra columna arranca ascendente")
}

func TestParseSortField(t *testing.T) {
	f, ok := ParseSortField(" Current_Stock ")
	assert.True(t, ok)
	assert.Equal(t, FieldCurrentStock, f)

	_, ok = ParseSortField("owner")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyFilter_BusquedaNombreOSKU(t *testing.T) {
	ps := []*entity.Product{
		product("ABC Widget", "W-1", "", 10, 1, "1"),
		product("Tuerca", "abc-123", "", 10, 1, "1"),
		product("Otro", "X-9", "", 10, 1, "1"),
	}
	got := ApplyFilter(ps, Filter{Search: "abc"})
	assert.Equal(t, []string{"ABC Widget", "Tuerca"}, names(got))
}

func TestApplyFilter_CategoriaYBajoStock(t *testing.T) {
	ps := []*entity.Product{
		product("a", "1", "Herrajes", 2, 5, "1"),
		product("b", "2", "Herrajes", 9, 5, "1"),
		product("c", "3", "Pinturas", 1, 5, "1"),
	}

	assert.Len(t, ApplyFilter(ps, Filter{Category: AllCategories}), 3)
	assert.Equal(t, []string{"a", "b"}, names(ApplyFilter(ps, Filter{Category: "Herrajes"})))
	assert.Equal(t, []string{"a", "c"}, names(ApplyFilter(ps, Filter{LowStockOnly: true})))
	assert.Equal(t, []string{"a"}, names(ApplyFilter(ps, Filter{Category: "Herrajes", LowStockOnly: true})))
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas y clasificación
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeMetrics(t *testing.T) {
	ps := []*entity.Product{
		product("a", "1", "Pinturas", 10, 2, "2.5"), // 25
		product("b", "2", "herrajes", 2, 3, "5"),    // 10, bajo
		product("c", "3", "", 0, 0, "99"),           // 0, bajo
	}
	m := ComputeMetrics(ps)

	assert.Equal(t, 3, m.TotalProducts)
	assert.Equal(t, 2, m.LowStockCount)
	assert.True(t, decimal.NewFromInt(35).Equal(m.TotalValue), "got %s", m.TotalValue)
	assert.Equal(t, 2, m.CategoryCount)
	assert.Equal(t, []string{"herrajes", "Pinturas"}, m.Categories)
}

func TestComputeMetrics_Vacio(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Zero(t, m.TotalProducts)
	assert.True(t, m.TotalValue.IsZero())
	assert.Zero(t, m.CategoryCount)
}

func TestClassifyStock(t *testing.T) {
	assert.Equal(t, StatusLow, ClassifyStock(5, 10))
	assert.Equal(t, StatusLow, ClassifyStock(10, 10))
	assert.Equal(t, StatusMedium, ClassifyStock(15, 10))
	assert.Equal(t, StatusMedium, ClassifyStock(20, 10))
	assert.Equal(t, StatusHigh, ClassifyStock(25, 10))
	assert.Equal(t, StatusLow, ClassifyStock(0, 0))
}
