package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CurrentStock nunca queda negativo después de un ajuste confirmado.
type Product struct {
	ID           string
	Name         string
	SKU          string
	Barcode      string
	Category     string
	CurrentStock int
	ReorderPoint int
	UnitPrice    decimal.Decimal
	Supplier     string // referencia al proveedor
	Description  string
	Tags         string
	Owner        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Normalize deja el producto en un estado completo y válido: cantidades y precio
// negativos se llevan a cero. Se aplica una sola vez al ingresar los datos.
func (p *Product) Normalize() {
	if p.CurrentStock < 0 {
		p.CurrentStock = 0
	}
	if p.ReorderPoint < 0 {
		p.ReorderPoint = 0
	}
	if p.UnitPrice.IsNegative() {
		p.UnitPrice = decimal.Zero
	}
}

// IsLowStock indica si el stock está en o por debajo del punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderPoint
}

// StockValue devuelve CurrentStock * UnitPrice.
func (p *Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
