package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrRemote       = errors.New("error del almacén remoto")
	ErrPartialBatch = errors.New("lote aplicado parcialmente")
	ErrStockDrift   = errors.New("movimiento registrado sin actualizar el stock")
)
