package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"` // campo -> regla incumplida
}

// DriftErrorResponse error de divergencia: el movimiento quedó guardado pero el stock no.
type DriftErrorResponse struct {
	ErrorResponse
	ProductID     string `json:"product_id"`
	MovementID    string `json:"movement_id"`
	ExpectedStock int    `json:"expected_stock"`
}

// DeleteRequest borrado por lote.
type DeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
