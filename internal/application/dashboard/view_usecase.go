package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// ViewQuery estado pedido por el cliente. Si Toggle no está vacío se aplica sobre Sort.
type ViewQuery struct {
	Filter Filter
	Sort   SortState
	Toggle SortField
}

// QueryFromDTO traduce los parámetros HTTP. Los campos ya vienen validados.
func QueryFromDTO(q dto.DashboardQuery) ViewQuery {
	vq := ViewQuery{
		Filter: Filter{Search: q.Search, Category: q.Category, LowStockOnly: q.LowStock},
		Sort:   DefaultSort(),
	}
	if f, ok := ParseSortField(q.Sort); ok {
		vq.Sort.Field = f
		if q.Dir == string(Desc) {
			vq.Sort.Direction = Desc
		}
	}
	if f, ok := ParseSortField(q.Toggle); ok {
		vq.Toggle = f
	}
	return vq
}

// Item fila de la tabla con su clasificación.
type Item struct {
	Product *entity.Product
	Status  StockStatus
	Value   decimal.Decimal
}

// View vista completa: filas visibles y métricas sobre todo el catálogo.
type View struct {
	Items      []Item
	Total      int // productos cargados
	Shown      int // filas tras el filtro
	Metrics    Metrics
	Sort       SortState
	Filter     Filter
	Categories []string
}

// ViewUseCase arma la vista de inventario a partir del repositorio de productos.
type ViewUseCase struct {
	products repository.ProductRepository
}

// NewViewUseCase construye el caso de uso.
func NewViewUseCase(products repository.ProductRepository) *ViewUseCase {
	return &ViewUseCase{products: products}
}

// Build carga todos los productos, calcula métricas y aplica orden y filtro.
func (uc *ViewUseCase) Build(ctx context.Context, q ViewQuery) (*View, error) {
	all, err := uc.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	sortState := q.Sort
	if sortState.Field == "" {
		sortState = DefaultSort()
	}
	if q.Toggle != "" {
		sortState = sortState.Toggle(q.Toggle)
	}

	// --- Métricas sobre el catálogo completo ---
	metrics := ComputeMetrics(all)

	// --- Orden y filtro ---
	visible := ApplyFilter(SortProducts(all, sortState), q.Filter)
	items := make([]Item, 0, len(visible))
	for _, p := range visible {
		items = append(items, Item{
			Product: p,
			Status:  ClassifyStock(p.CurrentStock, p.ReorderPoint),
			Value:   p.StockValue(),
		})
	}

	return &View{
		Items:      items,
		Total:      len(all),
		Shown:      len(items),
		Metrics:    metrics,
		Sort:       sortState,
		Filter:     q.Filter,
		Categories: metrics.Categories,
	}, nil
}

// ToResponse convierte la vista al DTO HTTP.
func ToResponse(v *View) *dto.DashboardResponse {
	items := make([]dto.DashboardItemDTO, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.DashboardItemDTO{
			ProductResponse: *usecase.ToProductResponse(it.Product),
			Status:          string(it.Status),
			StockValue:      it.Value,
		})
	}
	categories := v.Categories
	if categories == nil {
		categories = []string{}
	}
	return &dto.DashboardResponse{
		Items: items,
		Total: v.Total,
		Shown: v.Shown,
		Metrics: dto.DashboardMetricsDTO{
			TotalProducts: v.Metrics.TotalProducts,
			LowStockCount: v.Metrics.LowStockCount,
			TotalValue:    v.Metrics.TotalValue,
			CategoryCount: v.Metrics.CategoryCount,
		},
		Sort:       dto.SortDTO{Field: string(v.Sort.Field), Direction: string(v.Sort.Direction)},
		Categories: categories,
	}
}
