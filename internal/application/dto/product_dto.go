package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode      string          `json:"barcode" validate:"omitempty,max=64"`
	Category     string          `json:"category" validate:"omitempty,max=100"`
	CurrentStock int             `json:"current_stock" validate:"min=0"`
	ReorderPoint int             `json:"reorder_point" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Description  string          `json:"description"`
	Tags         string          `json:"tags"`
}

// UpdateProductRequest actualización parcial; los campos nil no cambian.
// El stock solo cambia mediante ajustes.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU          *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode      *string          `json:"barcode" validate:"omitempty,max=64"`
	Category     *string          `json:"category" validate:"omitempty,max=100"`
	ReorderPoint *int             `json:"reorder_point" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Supplier     *string          `json:"supplier"`
	Description  *string          `json:"description"`
	Tags         *string          `json:"tags"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	ReorderPoint int             `json:"reorder_point"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Description  string          `json:"description"`
	Tags         string          `json:"tags"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
