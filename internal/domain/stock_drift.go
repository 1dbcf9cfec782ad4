package domain

import "fmt"

// StockDriftError indica que el movimiento de auditoría quedó persistido pero la
// escritura del stock del producto falló: el historial y el nivel actual divergen.
// No se corrige automáticamente; el llamador debe reportarlo como tal.
type StockDriftError struct {
	ProductID     string
	MovementID    string
	PreviousStock int
	ExpectedStock int
	Err           error
}

func (e *StockDriftError) Error() string {
	return fmt.Sprintf("producto %s: movimiento %s registrado pero el stock no se actualizó a %d: %v",
		e.ProductID, e.MovementID, e.ExpectedStock, e.Err)
}

// Is permite errors.Is(err, ErrStockDrift).
func (e *StockDriftError) Is(target error) bool {
	return target == ErrStockDrift
}

func (e *StockDriftError) Unwrap() error {
	return e.Err
}
