package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// InventoryHandler maneja ajustes de stock y el libro de auditoría.
type InventoryHandler struct {
	adjust *inventory.AdjustStockUseCase
	ledger *inventory.LedgerUseCase
	log    *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustStockUseCase, ledger *inventory.LedgerUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, ledger: ledger, log: log}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  change_amount negativo = salida (venta). Registra la fila del libro en la misma transacción.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        companyId    path  int  true  "ID de la empresa"
// @Param        inventoryId  path  int  true  "ID de la fila de inventario"
// @Param        body  body  dto.AdjustStockRequest  true  "change_amount, reason, changed_by"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/inventory/{inventoryId}/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	inventoryID, ok := parseIDParam(c, "inventoryId")
	if !ok {
		return invalidID(c, "inventoryId")
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.adjust.AdjustStock(c.UserContext(), GetCompanyID(c), inventoryID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Ledger godoc
// @Summary      Libro de auditoría de un inventario
// @Tags         inventory
// @Produce      json
// @Param        companyId    path  int  true  "ID de la empresa"
// @Param        inventoryId  path  int  true  "ID de la fila de inventario"
// @Success      200  {object}  dto.InventoryLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/inventory/{inventoryId}/ledger [get]
func (h *InventoryHandler) Ledger(c *fiber.Ctx) error {
	inventoryID, ok := parseIDParam(c, "inventoryId")
	if !ok {
		return invalidID(c, "inventoryId")
	}
	out, err := h.ledger.InventoryLedger(c.UserContext(), GetCompanyID(c), inventoryID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !out.Consistent {
		h.log.Warn().
			Str("request_id", GetRequestID(c)).
			Int64("inventory_id", inventoryID).
			Str("issue", out.Issue).
			Msg("libro de inventario inconsistente")
	}
	return c.JSON(out)
}
