package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
)

// InventoryHandler expone los ajustes de stock (protegido).
type InventoryHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajuste detallado de stock
// @Description  Registra un movimiento tipo adjustment y escribe el nuevo stock (nunca negativo).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "delta distinto de cero, motivo y notas"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.DriftErrorResponse
// @Router       /api/products/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.AdjustStockByID(c.UserContext(), c.Params("id"), inventory.AdjustStockInput{
		Delta:  in.Delta,
		Reason: in.Reason,
		Notes:  in.Notes,
		UserID: GetUserID(c),
		Mode:   inventory.ModeDetailed,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{
		Product:       *usecase.ToProductResponse(res.Product),
		PreviousStock: res.PreviousStock,
		Delta:         in.Delta,
	})
}

// QuickAdjust godoc
// @Summary      Ajuste rápido (+1 / -1)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.QuickAdjustRequest  true  "step: 1 o -1"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quick-adjust [post]
func (h *InventoryHandler) QuickAdjust(c *fiber.Ctx) error {
	var in dto.QuickAdjustRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.QuickAdjustByID(c.UserContext(), c.Params("id"), in.Step, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{
		Product:       *usecase.ToProductResponse(res.Product),
		PreviousStock: res.PreviousStock,
		Delta:         in.Step,
	})
}
