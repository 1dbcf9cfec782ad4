// Package dashboard arma la vista de inventario: orden, filtros, métricas y
// clasificación de stock. Las funciones de este archivo son puras.
package dashboard

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// SortField columna ordenable de la tabla.
type SortField string

const (
	FieldName         SortField = "name"
	FieldSKU          SortField = "sku"
	FieldCategory     SortField = "category"
	FieldBarcode      SortField = "barcode"
	FieldCurrentStock SortField = "current_stock"
	FieldReorderPoint SortField = "reorder_point"
	FieldUnitPrice    SortField = "unit_price"
)

// Direction sentido del orden.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortField valida el nombre de una columna.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldName, FieldSKU, FieldCategory, FieldBarcode, FieldCurrentStock, FieldReorderPoint, FieldUnitPrice:
		return f, true
	}
	return "", false
}

func (f SortField) numeric() bool {
	return f == FieldCurrentStock || f == FieldReorderPoint || f == FieldUnitPrice
}

// SortState orden actual de la tabla.
type SortState struct {
	Field     SortField
	Direction Direction
}

// DefaultSort nombre ascendente.
func DefaultSort() SortState {
	return SortState{Field: FieldName, Direction: Asc}
}

// Toggle misma columna invierte el sentido; otra columna arranca ascendente.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

// SortProducts devuelve una copia ordenada (estable). Los campos numéricos se comparan
// como números y los de texto con colación Unicode sin distinguir mayúsculas.
func SortProducts(products []*entity.Product, s SortState) []*entity.Product {
	out := append([]*entity.Product(nil), products...)
	if s.Field == "" {
		s = DefaultSort()
	}
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(col, out[i], out[j], s.Field)
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(col *collate.Collator, a, b *entity.Product, f SortField) int {
	if f.numeric() {
		switch f {
		case FieldCurrentStock:
			return cmpInt(a.CurrentStock, b.CurrentStock)
		case FieldReorderPoint:
			return cmpInt(a.ReorderPoint, b.ReorderPoint)
		default:
			return a.UnitPrice.Cmp(b.UnitPrice)
		}
	}
	return col.CompareString(textField(a, f), textField(b, f))
}

func textField(p *entity.Product, f SortField) string {
	switch f {
	case FieldSKU:
		return p.SKU
	case FieldCategory:
		return p.Category
	case FieldBarcode:
		return p.Barcode
	default:
		return p.Name
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// AllCategories valor de categoría que no filtra.
const AllCategories = "all"

// Filter criterios de la tabla; se combinan con AND.
type Filter struct {
	Search       string // subcadena en nombre o SKU, sin distinguir mayúsculas
	Category     string // "" o "all" no filtra
	LowStockOnly bool
}

// ApplyFilter devuelve los productos que cumplen el filtro, en el mismo orden.
func ApplyFilter(products []*entity.Product, f Filter) []*entity.Product {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(f.Search))
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(folder.String(p.Name), needle) &&
			!strings.Contains(folder.String(p.SKU), needle) {
			continue
		}
		if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
			continue
		}
		if f.LowStockOnly && !p.IsLowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Metrics tarjetas del dashboard.
type Metrics struct {
	TotalProducts int
	LowStockCount int
	TotalValue    decimal.Decimal
	CategoryCount int
	Categories    []string // distintas, no vacías, ordenadas
}

// ComputeMetrics calcula las métricas sobre la lista dada.
func ComputeMetrics(products []*entity.Product) Metrics {
	m := Metrics{TotalProducts: len(products), TotalValue: decimal.Zero}
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.IsLowStock() {
			m.LowStockCount++
		}
		m.TotalValue = m.TotalValue.Add(p.StockValue())
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			m.Categories = append(m.Categories, p.Category)
		}
	}
	col := collate.New(language.Und, collate.IgnoreCase)
	col.SortStrings(m.Categories)
	m.CategoryCount = len(m.Categories)
	return m
}

// StockStatus nivel de stock relativo al punto de reorden.
type StockStatus string

const (
	StatusLow    StockStatus = "low"
	StatusMedium StockStatus = "medium"
	StatusHigh   StockStatus = "high"
)

// ClassifyStock low si current <= reorder, medium si current <= 2*reorder, si no high.
func ClassifyStock(current, reorder int) StockStatus {
	switch {
	case current <= reorder:
		return StatusLow
	case current <= 2*reorder:
		return StatusMedium
	default:
		return StatusHigh
	}
}
