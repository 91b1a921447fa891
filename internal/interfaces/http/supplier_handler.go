package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// SupplierHandler maneja proveedores y su vínculo con productos.
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LinkProduct godoc
// @Summary      Vincular proveedor con producto
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        companyId   path  int  true  "ID de la empresa"
// @Param        supplierId  path  int  true  "ID del proveedor"
// @Param        body  body  dto.LinkSupplierProductRequest  true  "product_id, cost_price, lead_time_days"
// @Success      201   {object}  dto.SupplierProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/suppliers/{supplierId}/products [post]
func (h *SupplierHandler) LinkProduct(c *fiber.Ctx) error {
	supplierID, ok := parseIDParam(c, "supplierId")
	if !ok {
		return invalidID(c, "supplierId")
	}
	var in dto.LinkSupplierProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.LinkProduct(c.UserContext(), GetCompanyID(c), supplierID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
