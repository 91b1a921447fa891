package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	appinv "github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/inventory-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	app   *fiber.App
	store *memory.Store
}

// newTestAPI arma la API completa sobre el store en memoria.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.New()
	repos := store.Repositories()
	log := logger.Nop()

	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.Metrics(metrics.New("test")))
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:      usecase.NewCompanyUseCase(repos.Companies),
		WarehouseUC:    usecase.NewWarehouseUseCase(repos.Warehouses, repos.Companies),
		ProductUC:      usecase.NewProductUseCase(repos.Products),
		SupplierUC:     usecase.NewSupplierUseCase(repos.Suppliers, repos.Companies, repos.Products),
		CreateProduct:  appinv.NewCreateProductUseCase(store),
		AdjustStock:    appinv.NewAdjustStockUseCase(store),
		Ledger:         appinv.NewLedgerUseCase(store),
		Bundles:        appinv.NewBundleUseCase(store),
		LowStockAlerts: appinv.NewLowStockAlertsUseCase(store, inventory.NewThresholdPolicy(20, nil, nil)),
		Logger:         log,
	})
	return &testAPI{app: app, store: store}
}

// do ejecuta la petición y decodifica el cuerpo JSON en out (si no es nil).
func (a *testAPI) do(t *testing.T, method, path string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (a *testAPI) createCompany(t *testing.T, name string) int64 {
	t.Helper()
	var out dto.CompanyResponse
	resp := a.do(t, http.MethodPost, "/api/v1/companies", dto.CreateCompanyRequest{Name: name}, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out.ID
}

func (a *testAPI) createWarehouse(t *testing.T, companyID int64, name string) int64 {
	t.Helper()
	var out dto.WarehouseResponse
	path := fmt.Sprintf("/api/v1/companies/%d/warehouses", companyID)
	resp := a.do(t, http.MethodPost, path, dto.CreateWarehouseRequest{Name: name}, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out.ID
}

func (a *testAPI) createProduct(t *testing.T, companyID, warehouseID int64, sku string, qty int) int64 {
	t.Helper()
	var out dto.CreateProductResponse
	path := fmt.Sprintf("/api/v1/companies/%d/products", companyID)
	body := map[string]any{"name": "Producto " + sku, "sku": sku, "price": "10.00", "warehouse_id": warehouseID, "initial_quantity": qty}
	resp := a.do(t, http.MethodPost, path, body, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out.ProductID
}

func (a *testAPI) inventoryID(t *testing.T, companyID, productID int64) int64 {
	t.Helper()
	rows, err := a.store.Repositories().Inventory.ListByCompanyWithWarehouse(context.Background(), companyID)
	require.NoError(t, err)
	for _, r := range rows {
		if r.ProductID == productID {
			return r.ID
		}
	}
	t.Fatalf("sin inventario para producto %d", productID)
	return 0
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas y alcance por empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_CrearYObtener(t *testing.T) {
	api := newTestAPI(t)
	id := api.createCompany(t, "Acme")

	var out dto.CompanyResponse
	resp := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d", id), nil, &out)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme", out.Name)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "toda respuesta lleva X-Request-ID")
}

func TestCompany_NombreDuplicadoDevuelve409(t *testing.T) {
	api := newTestAPI(t)
	api.createCompany(t, "Acme")

	resp := api.do(t, http.MethodPost, "/api/v1/companies", dto.CreateCompanyRequest{Name: "Acme"}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCompanyScope_EmpresaInexistenteDevuelve404(t *testing.T) {
	api := newTestAPI(t)

	var out dto.ErrorResponse
	resp := api.do(t, http.MethodGet, "/api/v1/companies/999/products", nil, &out)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestCompanyScope_IDInvalidoDevuelve400(t *testing.T) {
	api := newTestAPI(t)

	var out dto.ErrorResponse
	resp := api.do(t, http.MethodGet, "/api/v1/companies/abc/warehouses", nil, &out)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", out.Code)
}

func TestRequestID_ReutilizaElDelCliente(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_Devuelve201ConProductID(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")

	var out dto.CreateProductResponse
	body := map[string]any{"name": "Widget", "sku": "W-1", "price": "19.99", "warehouse_id": warehouseID, "initial_quantity": 50}
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products", companyID), body, &out)

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Product created", out.Message)
	assert.Positive(t, out.ProductID)

	var list dto.ProductListResponse
	api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/products", companyID), nil, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "W-1", list.Items[0].SKU)

	var got dto.ProductResponse
	resp = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/products/%d", companyID, out.ProductID), nil, &got)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Widget", got.Name)
}

func TestProducto_DeOtraEmpresaDevuelve404(t *testing.T) {
	api := newTestAPI(t)
	companyA := api.createCompany(t, "Acme")
	companyB := api.createCompany(t, "Globex")
	warehouseA := api.createWarehouse(t, companyA, "Central")
	productID := api.createProduct(t, companyA, warehouseA, "W-1", 1)

	resp := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/products/%d", companyB, productID), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/warehouses/%d", companyB, warehouseA), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateProduct_SKUDuplicadoDevuelve409(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")
	api.createProduct(t, companyID, warehouseID, "DUP", 1)

	var out dto.ErrorResponse
	body := map[string]any{"name": "Otro", "sku": "DUP", "price": "1.00", "warehouse_id": warehouseID}
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products", companyID), body, &out)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", out.Code)
}

func TestCreateProduct_BodegaDeOtraEmpresaDevuelve404(t *testing.T) {
	api := newTestAPI(t)
	companyA := api.createCompany(t, "Acme")
	companyB := api.createCompany(t, "Globex")
	warehouseB := api.createWarehouse(t, companyB, "Norte")

	body := map[string]any{"name": "Widget", "sku": "W-1", "price": "1.00", "warehouse_id": warehouseB}
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products", companyA), body, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateProduct_CuerpoInvalidoDevuelve400(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products", companyID), bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListProducts_FalloDeAlmacenamientoDevuelve500SinDetalle(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	api.store.FailNext("products.list", errors.New("disco lleno"))

	var out dto.ErrorResponse
	resp := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/products", companyID), nil, &out)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", out.Code)
	assert.NotContains(t, out.Message, "disco lleno")
}

// ──────────────────────────────────────────────────────────────────────────────
// Kits
// ──────────────────────────────────────────────────────────────────────────────

func TestAddBundleComponent_CicloDevuelve409(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")
	a := api.createProduct(t, companyID, warehouseID, "A", 0)
	b := api.createProduct(t, companyID, warehouseID, "B", 0)

	var edge dto.BundleComponentResponse
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products/%d/bundle-components", companyID, a),
		dto.AddBundleComponentRequest{ChildProductID: b, QuantityRequired: 2}, &edge)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 2, edge.QuantityRequired)

	var out dto.ErrorResponse
	resp = api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/products/%d/bundle-components", companyID, b),
		dto.AddBundleComponentRequest{ChildProductID: a, QuantityRequired: 1}, &out)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "BUNDLE_CYCLE", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_StockInsuficienteDevuelve409(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")
	productID := api.createProduct(t, companyID, warehouseID, "W-1", 3)
	invID := api.inventoryID(t, companyID, productID)

	var out dto.ErrorResponse
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/inventory/%d/adjustments", companyID, invID),
		dto.AdjustStockRequest{ChangeAmount: -5}, &out)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

func TestAdjustYLedger_LibroConsistente(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")
	productID := api.createProduct(t, companyID, warehouseID, "W-1", 10)
	invID := api.inventoryID(t, companyID, productID)

	var inv dto.InventoryResponse
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/inventory/%d/adjustments", companyID, invID),
		dto.AdjustStockRequest{ChangeAmount: -4, Reason: "sale"}, &inv)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 6, inv.Quantity)

	var ledger dto.InventoryLedgerResponse
	resp = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/inventory/%d/ledger", companyID, invID), nil, &ledger)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, ledger.Consistent)
	require.Len(t, ledger.Logs, 2, "fila inicial + ajuste")
	assert.Equal(t, 10, ledger.Logs[1].PreviousQty)
	assert.Equal(t, 6, ledger.Logs[1].NewQty)
}

func TestLedger_InventarioDeOtraEmpresaDevuelve404(t *testing.T) {
	api := newTestAPI(t)
	companyA := api.createCompany(t, "Acme")
	companyB := api.createCompany(t, "Globex")
	warehouseA := api.createWarehouse(t, companyA, "Central")
	productID := api.createProduct(t, companyA, warehouseA, "W-1", 1)
	invID := api.inventoryID(t, companyA, productID)

	resp := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/inventory/%d/ledger", companyB, invID), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_EmpresaSinProductosDevuelve404(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")

	resp := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/alerts/low-stock", companyID), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLowStock_AlertaConProveedorSugerido(t *testing.T) {
	api := newTestAPI(t)
	companyID := api.createCompany(t, "Acme")
	warehouseID := api.createWarehouse(t, companyID, "Central")
	lowID := api.createProduct(t, companyID, warehouseID, "LOW", 12)
	api.createProduct(t, companyID, warehouseID, "OK", 100)
	invID := api.inventoryID(t, companyID, lowID)

	api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/inventory/%d/adjustments", companyID, invID),
		dto.AdjustStockRequest{ChangeAmount: -2}, nil)

	var supplier dto.SupplierResponse
	resp := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/suppliers", companyID),
		dto.CreateSupplierRequest{Name: "Proveedor", ContactEmail: "compras@proveedor.test"}, &supplier)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/companies/%d/suppliers/%d/products", companyID, supplier.ID),
		dto.LinkSupplierProductRequest{ProductID: lowID}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.LowStockAlertsResponse
	resp = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d/alerts/low-stock", companyID), nil, &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 1, out.TotalAlerts)
	alert := out.Alerts[0]
	assert.Equal(t, lowID, alert.ProductID)
	assert.Equal(t, 10, alert.CurrentStock)
	assert.Equal(t, 20, alert.Threshold)
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, 150, *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier)
	assert.Equal(t, "compras@proveedor.test", alert.Supplier.ContactEmail)
}
