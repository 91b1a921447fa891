package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// AlertHandler expone el motor de alertas de stock bajo.
type AlertHandler struct {
	uc      *inventory.LowStockAlertsUseCase
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.LowStockAlertsUseCase, m *metrics.Metrics, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, metrics: m, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Inventarios en o bajo el umbral con ventas en los últimos 30 días, con días estimados hasta el quiebre y proveedor sugerido.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse  "empresa sin productos"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStockAlerts(c.UserContext(), GetCompanyID(c))
	if err != nil {
		h.metrics.AlertSweep(0, err)
		return respondError(c, h.log, err)
	}
	h.metrics.AlertSweep(out.TotalAlerts, nil)
	return c.JSON(out)
}
