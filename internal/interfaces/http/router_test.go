package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/report"
	apphttp "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// brokenUpdates hace fallar la escritura del producto para provocar la divergencia.
type brokenUpdates struct {
	*memory.ProductRepository
}

func (b brokenUpdates) Update(context.Context, *entity.Product) (*entity.Product, error) {
	return nil, errors.New("conexión perdida")
}

func buildAPI(t *testing.T, products repository.ProductRepository, store *memory.Store) *fiber.App {
	t.Helper()
	view := dashboard.NewViewUseCase(products)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(products),
		MovementUC:    usecase.NewMovementUseCase(store.Movements),
		SupplierUC:    usecase.NewSupplierUseCase(store.Suppliers),
		CustomerUC:    usecase.NewCustomerUseCase(store.Customers),
		UserUC:        usecase.NewUserUseCase(store.Users),
		AdjustStock:   inventory.NewAdjustStockUseCase(products, store.Movements, nil, nil),
		Replenishment: inventory.NewReplenishmentUseCase(products),
		DashboardView: view,
		DashboardReport: dashboard.NewReportUseCase(view, map[string]dashboard.ReportRenderer{
			dashboard.FormatPDF:  report.NewPDFRenderer(""),
			dashboard.FormatXLSX: report.NewXLSXRenderer(),
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func seededAPI(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore(0)
	require.NoError(t, memory.Seed(context.Background(), store))
	return buildAPI(t, store.Products, store), store
}

func productBySKU(t *testing.T, store *memory.Store, sku string) *entity.Product {
	t.Helper()
	all, err := store.Products.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	for _, p := range all {
		if p.SKU == sku {
			return p
		}
	}
	t.Fatalf("producto %s no sembrado", sku)
	return nil
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_FiltroBajoStock(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard?low_stock=true&sort=current_stock", apphttp.RoleOperator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.DashboardResponse](t, resp)

	assert.Equal(t, 4, body.Total)
	assert.Equal(t, 2, body.Shown)
	assert.Equal(t, 4, body.Metrics.TotalProducts, "métricas sobre todo el catálogo")
	assert.Equal(t, 2, body.Metrics.LowStockCount)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "GUA-NIT", body.Items[0].SKU)
	for _, it := range body.Items {
		assert.Equal(t, "low", it.Status)
	}
}

func TestDashboard_SortInvalido(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard?sort=owner", apphttp.RoleOperator, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Details, "sort")
}

func TestDashboard_SinToken(t *testing.T) {
	app, _ := seededAPI(t)
	resp := call(t, app, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard_ReporteXLSX(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard/report.xlsx?category=Herramientas", apphttp.RoleOperator, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.NewXLSXRenderer().ContentType(), resp.Header.Get("Content-Type"))
	assert.Regexp(t, `attachment; filename="inventario_\d{8}_\d{4}\.xlsx"`, resp.Header.Get("Content-Disposition"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_NoBajaDeCeroYRegistraMovimiento(t *testing.T) {
	app, store := seededAPI(t)
	p := productBySKU(t, store, "TAL-650")

	resp := call(t, app, http.MethodPost, "/api/products/"+p.ID+"/adjust", apphttp.RoleOperator,
		dto.AdjustStockRequest{Delta: -100, Reason: "Damage", Notes: "caída"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.AdjustStockResponse](t, resp)

	assert.Equal(t, 0, body.Product.CurrentStock)
	assert.Equal(t, 4, body.PreviousStock)
	assert.Equal(t, -100, body.Delta)

	movs, err := store.Movements.List(context.Background(), repository.MovementFilter{ProductID: p.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 100, movs[0].Quantity)
	assert.Equal(t, entity.MovementTypeAdjustment, movs[0].Type)
	assert.Equal(t, testUserID, movs[0].UserID, "el usuario sale del token")
}

func TestAdjust_DeltaCeroRechazado(t *testing.T) {
	app, store := seededAPI(t)
	p := productBySKU(t, store, "TAL-650")

	resp := call(t, app, http.MethodPost, "/api/products/"+p.ID+"/adjust", apphttp.RoleOperator,
		dto.AdjustStockRequest{Delta: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Details, "delta")

	movs, _ := store.Movements.List(context.Background(), repository.MovementFilter{})
	assert.Empty(t, movs)
}

func TestQuickAdjust(t *testing.T) {
	app, store := seededAPI(t)
	p := productBySKU(t, store, "CIN-005")

	resp := call(t, app, http.MethodPost, "/api/products/"+p.ID+"/quick-adjust", apphttp.RoleOperator,
		dto.QuickAdjustRequest{Step: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 19, decode[dto.AdjustStockResponse](t, resp).Product.CurrentStock)

	resp = call(t, app, http.MethodPost, "/api/products/"+p.ID+"/quick-adjust", apphttp.RoleOperator,
		dto.QuickAdjustRequest{Step: 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	app, _ := seededAPI(t)
	resp := call(t, app, http.MethodPost, "/api/products/nope/adjust", apphttp.RoleOperator,
		dto.AdjustStockRequest{Delta: 3})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdjust_DivergenciaDevuelveStockDrift(t *testing.T) {
	store := memory.NewStore(0)
	require.NoError(t, memory.Seed(context.Background(), store))
	app := buildAPI(t, brokenUpdates{store.Products}, store)
	p := productBySKU(t, store, "TOR-014")

	resp := call(t, app, http.MethodPost, "/api/products/"+p.ID+"/adjust", apphttp.RoleOperator,
		dto.AdjustStockRequest{Delta: 5})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.DriftErrorResponse](t, resp)

	assert.Equal(t, "STOCK_DRIFT", body.Code)
	assert.Equal(t, p.ID, body.ProductID)
	assert.NotEmpty(t, body.MovementID)
	assert.Equal(t, 125, body.ExpectedStock)

	stored, err := store.Products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, stored.CurrentStock, "el stock no cambió")
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD y permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearYLeer(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodPost, "/api/products", apphttp.RoleOperator, map[string]any{
		"name": "Lija 120", "sku": "LIJ-120", "category": "Abrasivos",
		"current_stock": 30, "reorder_point": 10, "unit_price": "0.80",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/products/"+created.ID, apphttp.RoleOperator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "LIJ-120", got.SKU)
	assert.Equal(t, "0.8", got.UnitPrice.String())
}

func TestProducts_Reposicion(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodGet, "/api/products/replenishment", apphttp.RoleOperator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Total          int                              `json:"total"`
		Replenishments []dto.ReplenishmentSuggestionDTO `json:"replenishments"`
	}](t, resp)

	require.Equal(t, 2, body.Total)
	assert.Equal(t, "GUA-NIT", body.Replenishments[0].Product.SKU, "agotados primero")
	assert.Equal(t, 1, body.Replenishments[0].Priority)
}

func TestMovements_CorreccionSoloAdmin(t *testing.T) {
	app, store := seededAPI(t)
	p := productBySKU(t, store, "TAL-650")

	resp := call(t, app, http.MethodPost, "/api/products/"+p.ID+"/quick-adjust", apphttp.RoleOperator,
		dto.QuickAdjustRequest{Step: -1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movs, _ := store.Movements.List(context.Background(), repository.MovementFilter{})
	require.Len(t, movs, 1)

	resp = call(t, app, http.MethodDelete, "/api/movements/"+movs[0].ID, apphttp.RoleOperator, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/movements/"+movs[0].ID, apphttp.RoleAdmin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMovements_RangoInvalido(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodGet, "/api/movements?from=ayer", apphttp.RoleOperator, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/movements?from=2026-02-01&to=2026-01-01", apphttp.RoleOperator, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rango invertido")
}

func TestSuppliers_EmailInvalido(t *testing.T) {
	app, _ := seededAPI(t)

	resp := call(t, app, http.MethodPost, "/api/suppliers", apphttp.RoleOperator, map[string]any{
		"name": "Otro", "email": "no-es-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "debe ser un email válido", body.Details["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores del almacén remoto
// ──────────────────────────────────────────────────────────────────────────────

// remoteAPI monta la API con productos servidos por un almacén remoto falso.
func remoteAPI(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := recordstore.NewClient(recordstore.Options{BaseURL: srv.URL, Timeout: timeout})
	require.NoError(t, err)
	return buildAPI(t, recordstore.NewProductStore(client), memory.NewStore(0))
}

func TestRemoto_TimeoutDevuelve504(t *testing.T) {
	app := remoteAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	for _, path := range []string{"/api/dashboard", "/api/products/p-1"} {
		resp := call(t, app, http.MethodGet, path, apphttp.RoleOperator, nil)
		assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode, path)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "TIMEOUT", body.Code, path)
	}
}

func TestRemoto_MensajeNoExponeURL(t *testing.T) {
	app := remoteAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream caído"))
	}, time.Second)

	resp := call(t, app, http.MethodGet, "/api/products/p-1", apphttp.RoleOperator, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "REMOTE_ERROR", body.Code)
	assert.NotContains(t, body.Message, "http://")
	assert.False(t, strings.Contains(body.Message, "/tables/"), "no debe filtrar la ruta del backend: %s", body.Message)
}

func TestRemoto_LoteParcialListaFallos(t *testing.T) {
	app := remoteAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"results":[{"success":false,"message":"sku requerido"}]}`))
	}, time.Second)

	resp := call(t, app, http.MethodPost, "/api/products", apphttp.RoleOperator, map[string]any{
		"name": "Lija", "sku": "LJ-1", "unit_price": "1.5",
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "PARTIAL_BATCH", body.Code)
	assert.Contains(t, body.Message, "sku requerido")
	assert.NotContains(t, body.Message, "http://")
}
