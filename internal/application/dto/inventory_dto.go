package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body de POST /api/products/:id/adjust (formulario detallado).
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"` // distinto de cero; negativo descuenta
	Reason string `json:"reason" validate:"omitempty,oneof='Count Adjustment' Damage Loss Return Transfer Other"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

// QuickAdjustRequest body de POST /api/products/:id/quick-adjust.
type QuickAdjustRequest struct {
	Step int `json:"step" validate:"required,oneof=1 -1"`
}

// AdjustStockResponse producto resultante del ajuste.
type AdjustStockResponse struct {
	Product       ProductResponse `json:"product"`
	PreviousStock int             `json:"previous_stock"`
	Delta         int             `json:"delta"`
}

// CreateMovementRequest alta manual de un movimiento (corrección administrativa).
type CreateMovementRequest struct {
	ProductID string     `json:"product_id" validate:"required"`
	Type      string     `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int        `json:"quantity" validate:"min=0"`
	Reason    string     `json:"reason" validate:"omitempty,max=100"`
	Notes     string     `json:"notes" validate:"omitempty,max=500"`
	Timestamp *time.Time `json:"timestamp"`
	UserID    string     `json:"user_id"`
}

// UpdateMovementRequest corrección parcial de un movimiento.
type UpdateMovementRequest struct {
	Type      *string    `json:"type" validate:"omitempty,oneof=in out adjustment"`
	Quantity  *int       `json:"quantity" validate:"omitempty,min=0"`
	Reason    *string    `json:"reason" validate:"omitempty,max=100"`
	Notes     *string    `json:"notes" validate:"omitempty,max=500"`
	Timestamp *time.Time `json:"timestamp"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// ReplenishmentSuggestionDTO fila de GET /api/products/replenishment.
type ReplenishmentSuggestionDTO struct {
	Product           ProductResponse `json:"product"`
	IdealStock        int             `json:"ideal_stock"`
	SuggestedOrderQty int             `json:"suggested_order_qty"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Priority          int             `json:"priority"`
}
