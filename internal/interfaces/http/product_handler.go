package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// ProductHandler maneja altas y consultas de productos, y los componentes de kits.
type ProductHandler struct {
	create  *inventory.CreateProductUseCase
	bundles *inventory.BundleUseCase
	uc      *usecase.ProductUseCase
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(
	create *inventory.CreateProductUseCase,
	bundles *inventory.BundleUseCase,
	uc *usecase.ProductUseCase,
	m *metrics.Metrics,
	log *logger.Logger,
) *ProductHandler {
	return &ProductHandler{create: create, bundles: bundles, uc: uc, metrics: m, log: log}
}

// Create godoc
// @Summary      Crear producto con su inventario inicial
// @Description  Crea producto, inventario en la bodega indicada y la fila inicial del libro en una sola transacción.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        body  body  dto.CreateProductRequest  true  "name, sku, price, warehouse_id, initial_quantity"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.create.CreateProduct(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.metrics.ProductCreated()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{Message: "Product created", ProductID: id})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/v1/companies/{companyId}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddBundleComponent godoc
// @Summary      Agregar componente a un kit
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        productId  path  int  true  "ID del producto kit"
// @Param        body  body  dto.AddBundleComponentRequest  true  "child_product_id, quantity_required"
// @Success      201   {object}  dto.BundleComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/products/{productId}/bundle-components [post]
func (h *ProductHandler) AddBundleComponent(c *fiber.Ctx) error {
	parentID, ok := parseIDParam(c, "productId")
	if !ok {
		return invalidID(c, "productId")
	}
	var in dto.AddBundleComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.bundles.AddBundleComponent(c.UserContext(), GetCompanyID(c), parentID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{companyId}/products/{productId} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return invalidID(c, "productId")
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}
