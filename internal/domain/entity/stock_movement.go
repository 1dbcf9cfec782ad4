package entity

import "time"

// Tipos de movimiento de inventario. La dirección va en el tipo, no en el signo.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste desde el formulario detallado
)

// StockMovement es el registro de auditoría que justifica un cambio de stock.
// Inmutable salvo corrección administrativa.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in, out, adjustment
	Quantity  int    // siempre >= 0
	Reason    string
	Notes     string
	Timestamp time.Time
	UserID    string
	Name      string
	Tags      string
	Owner     string
}

// ValidMovementType indica si t es uno de los tipos conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment:
		return true
	}
	return false
}
