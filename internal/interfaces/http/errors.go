package http

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// localError guarda el error original para el log de la petición.
const localError = "request_error"

// requestError error de entrada detectado en el handler (cuerpo, query o validación).
type requestError struct {
	code    string
	message string
	details map[string]string
}

func (e *requestError) Error() string { return e.code + ": " + e.message }

func badRequest(code, message string) error {
	return &requestError{code: code, message: message}
}

// writeError traduce un error de la aplicación a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	c.Locals(localError, err)

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: reqErr.code, Message: reqErr.message, Details: reqErr.details,
		})
	}

	var drift *domain.StockDriftError
	if errors.As(err, &drift) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DriftErrorResponse{
			ErrorResponse: dto.ErrorResponse{
				Code:    "STOCK_DRIFT",
				Message: "el movimiento quedó registrado pero el stock del producto no se actualizó",
			},
			ProductID:     drift.ProductID,
			MovementID:    drift.MovementID,
			ExpectedStock: drift.ExpectedStock,
		})
	}

	status, code := fiber.StatusInternalServerError, "INTERNAL"
	message := "error interno"
	switch {
	case isTimeout(err):
		status, code, message = fiber.StatusGatewayTimeout, "TIMEOUT", "el almacén no respondió a tiempo"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, message = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, code, message = fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		status, code, message = fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, message = fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, code, message = fiber.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, domain.ErrPartialBatch):
		status, code, message = fiber.StatusBadGateway, "PARTIAL_BATCH", publicMessage(err, "algunos registros no se guardaron")
	case errors.Is(err, domain.ErrRemote):
		status, code, message = fiber.StatusBadGateway, "REMOTE_ERROR", publicMessage(err, "el almacén de registros rechazó la operación")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// isTimeout cubre el deadline del contexto y el Timeout del http.Client.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// publicMessage devuelve el texto apto para el cliente; nunca incluye URLs del backend.
func publicMessage(err error, fallback string) string {
	var pm interface{ PublicMessage() string }
	if errors.As(err, &pm) {
		if m := pm.PublicMessage(); m != "" {
			return m
		}
	}
	return fallback
}
