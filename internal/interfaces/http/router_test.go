package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cafe/internal/application/dto"
	"github.com/jhoicas/inventario-cafe/internal/application/inventory"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
	"github.com/jhoicas/inventario-cafe/internal/domain/entity"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/inventario-cafe/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	app   *fiber.App
	stock *memory.StockRepository
	movs  *memory.InventoryMovementRepository
}

func newTestApp(t *testing.T, inv entity.Inventory, prices entity.Prices) testApp {
	t.Helper()
	stock := memory.NewSeededStockRepository(inv, prices)
	movs := memory.NewInventoryMovementRepository()
	uc := inventory.NewInventoryUseCase(stock, movs, nil)
	reportUC := report.NewReportUseCase(uc, pdf.NewMarotoReportGenerator("Inventario"), xmlexport.NewEtreeExporter(), 50)

	app := fiber.New(fiber.Config{Views: httpRouter.NewViews()})
	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:  uc,
		ReportUC:     reportUC,
		Title:        "Inventario de Café",
		HistoryLines: 200,
	})
	return testApp{app: app, stock: stock, movs: movs}
}

func (a testApp) do(t *testing.T, req *nethttp.Request) *nethttp.Response {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a testApp) inventory(t *testing.T) entity.Inventory {
	t.Helper()
	inv, _, err := a.stock.Load(context.Background())
	require.NoError(t, err)
	return inv
}

func postForm(path string, form url.Values) *nethttp.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func sendJSON(method, path, body string) *nethttp.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func readBody(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

var tenCastillo = entity.Inventory{{10, 0, 0}, {0, 0, 0}, {0, 0, 0}}

// ──────────────────────────────────────────────────────────────────────────────
// Páginas HTML
// ──────────────────────────────────────────────────────────────────────────────

func TestIndex_RenderizaTablero(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(100, 200, 300))

	resp := a.do(t, httptest.NewRequest(fiber.MethodGet, "/", nil))
	body := readBody(t, resp)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	for _, s := range []string{"Sevilla", "Tuluá", "Caicedonia", "Castillo", "Caturra", "Borbón", "Sin movimientos registrados"} {
		assert.Contains(t, body, s)
	}
}

func TestIndex_EstadoAusente_500(t *testing.T) {
	uc := inventory.NewInventoryUseCase(memory.NewStockRepository(), memory.NewInventoryMovementRepository(), nil)
	app := fiber.New(fiber.Config{Views: httpRouter.NewViews()})
	httpRouter.Router(app, httpRouter.RouterDeps{InventoryUC: uc, HistoryLines: 200})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestMoverInventario_RedirigeYAplica(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, postForm("/mover-inventario", url.Values{
		"origen": {"0"}, "destino": {"1"}, "cafe": {"0"}, "cantidad": {"3"},
	}))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, entity.Inventory{{7, 0, 0}, {3, 0, 0}, {0, 0, 0}}, a.inventory(t))
	assert.Equal(t, 1, a.movs.Len())
}

func TestMoverInventario_StockInsuficiente_RedirigeSinCambios(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, postForm("/mover-inventario", url.Values{
		"origen": {"0"}, "destino": {"1"}, "cafe": {"0"}, "cantidad": {"11"},
	}))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, tenCastillo, a.inventory(t))
	assert.Equal(t, 0, a.movs.Len())
}

func TestMoverInventario_CantidadNoNumerica_400(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, postForm("/mover-inventario", url.Values{
		"origen": {"0"}, "destino": {"1"}, "cafe": {"0"}, "cantidad": {"tres"},
	}))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, a.movs.Len())
}

func TestActualizarPrecios_Redirige(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, postForm("/actualizar-precios", url.Values{
		"precio_castillo": {"100"}, "precio_caturra": {"200"}, "precio_borbon": {"300"},
	}))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	_, prices, err := a.stock.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, prices[2].Equal(decimal.NewFromInt(300)))
}

func TestActualizarPrecios_CampoFaltante_400(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, postForm("/actualizar-precios", url.Values{
		"precio_castillo": {"100"}, "precio_caturra": {"200"},
	}))

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FORM", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// API JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestAPIEstado_Valorizacion(t *testing.T) {
	a := newTestApp(t, entity.Inventory{{1, 2, 1}, {0, 1, 0}, {3, 0, 2}}, entity.NewPrices(100, 200, 300))

	resp := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/estado", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var state dto.DashboardDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.True(t, state.WarehouseValue[0].Equal(decimal.NewFromInt(800)))
	assert.True(t, state.WarehouseValue[1].Equal(decimal.NewFromInt(200)))
	assert.True(t, state.WarehouseValue[2].Equal(decimal.NewFromInt(900)))
	assert.True(t, state.TotalValue.Equal(decimal.NewFromInt(1900)))
}

func TestAPITraslados_Codigos(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"exitoso", `{"origen":0,"destino":1,"cafe":0,"cantidad":3}`, fiber.StatusCreated, ""},
		{"cantidad cero", `{"origen":0,"destino":1,"cafe":0,"cantidad":0}`, fiber.StatusBadRequest, "VALIDATION"},
		{"insuficiente", `{"origen":0,"destino":1,"cafe":0,"cantidad":11}`, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"json inválido", `{"origen":`, fiber.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

			resp := a.do(t, sendJSON(fiber.MethodPost, "/api/traslados", tt.body))
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.code == "" {
				var out dto.TransferResult
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.Contains(t, out.Message, "3 sacos de Castillo desde Sevilla a Tuluá")
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestAPIPrecios_RequiereLosTres(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(1, 1, 1))

	resp := a.do(t, sendJSON(fiber.MethodPut, "/api/precios", `{"precio_castillo":100,"precio_caturra":200}`))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = a.do(t, sendJSON(fiber.MethodPut, "/api/precios", `{"precio_castillo":100,"precio_caturra":200.5,"precio_borbon":300}`))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, prices, err := a.stock.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, prices[1].Equal(decimal.RequireFromString("200.5")))
}

func TestAPIHistorial_Limite(t *testing.T) {
	a := newTestApp(t, entity.Inventory{{100, 0, 0}, {0, 0, 0}, {0, 0, 0}}, entity.NewPrices(1, 1, 1))
	for i := 0; i < 5; i++ {
		resp := a.do(t, sendJSON(fiber.MethodPost, "/api/traslados", `{"origen":0,"destino":2,"cafe":0,"cantidad":1}`))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := a.do(t, httptest.NewRequest(fiber.MethodGet, "/api/historial?limit=2", nil))
	var out dto.HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
	assert.Len(t, out.Lines, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReporte_Formatos(t *testing.T) {
	a := newTestApp(t, tenCastillo, entity.NewPrices(100, 200, 300))

	resp := a.do(t, httptest.NewRequest(fiber.MethodGet, "/reporte.xml", nil))
	body := readBody(t, resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, body, "<inventario")

	resp = a.do(t, httptest.NewRequest(fiber.MethodGet, "/reporte.pdf", nil))
	body = readBody(t, resp)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "%PDF"))

	resp = a.do(t, httptest.NewRequest(fiber.MethodGet, "/reporte.csv", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
