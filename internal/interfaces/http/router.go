package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cafe/internal/application/inventory"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC  *inventory.InventoryUseCase
	ReportUC     *report.ReportUseCase
	Title        string
	HistoryLines int
}

// Router registra las rutas: formularios HTML en la raíz y API JSON bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	pages := NewInventoryHandler(deps.InventoryUC, deps.Title, deps.HistoryLines)
	app.Get("/", pages.Index)
	app.Post("/actualizar-precios", pages.UpdatePrices)
	app.Post("/mover-inventario", pages.TransferStock)

	if deps.ReportUC != nil {
		reports := NewReportHandler(deps.ReportUC)
		app.Get("/reporte.:format", reports.Download)
	}

	api := app.Group("/api")
	apiHandler := NewAPIHandler(deps.InventoryUC, deps.HistoryLines)
	api.Get("/estado", apiHandler.GetState)
	api.Put("/precios", apiHandler.UpdatePrices)
	api.Post("/traslados", apiHandler.TransferStock)
	api.Get("/historial", apiHandler.GetHistory)
}
