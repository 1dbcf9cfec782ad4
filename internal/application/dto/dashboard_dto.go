package dto

import "github.com/shopspring/decimal"

// DashboardQuery parámetros de GET /api/dashboard.
type DashboardQuery struct {
	Search   string `query:"search" validate:"omitempty,max=200"`
	Category string `query:"category" validate:"omitempty,max=100"`
	LowStock bool   `query:"low_stock"`
	Sort     string `query:"sort" validate:"omitempty,oneof=name sku category barcode current_stock reorder_point unit_price"`
	Dir      string `query:"dir" validate:"omitempty,oneof=asc desc"`
	Toggle   string `query:"toggle" validate:"omitempty,oneof=name sku category barcode current_stock reorder_point unit_price"`
}

// DashboardItemDTO fila de la tabla de inventario.
type DashboardItemDTO struct {
	ProductResponse
	Status     string          `json:"status"` // low | medium | high
	StockValue decimal.Decimal `json:"stock_value"`
}

// DashboardMetricsDTO tarjetas de métricas (sobre todo el catálogo).
type DashboardMetricsDTO struct {
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	CategoryCount int             `json:"category_count"`
}

// SortDTO orden aplicado.
type SortDTO struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Items      []DashboardItemDTO  `json:"items"`
	Total      int                 `json:"total"`
	Shown      int                 `json:"shown"`
	Metrics    DashboardMetricsDTO `json:"metrics"`
	Sort       SortDTO             `json:"sort"`
	Categories []string            `json:"categories"`
}
