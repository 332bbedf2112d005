package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/inventario-cafe/docs"
	"github.com/jhoicas/inventario-cafe/internal/application/inventory"
	"github.com/jhoicas/inventario-cafe/internal/application/report"
	infrapdf "github.com/jhoicas/inventario-cafe/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-cafe/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/inventario-cafe/internal/interfaces/http"
	"github.com/jhoicas/inventario-cafe/pkg/config"
	"github.com/jhoicas/inventario-cafe/pkg/logger"
)

const (
	swaggerFile = "./docs/swagger.json"
	title       = "Inventario de Café"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.close()

	inventoryUC := inventory.NewInventoryUseCase(store.stock, store.movements, log)
	reportUC := report.NewReportUseCase(
		inventoryUC,
		infrapdf.NewMarotoReportGenerator(title),
		xmlexport.NewEtreeExporter(),
		cfg.Storage.HistoryLines,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViews(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    title + " API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:  inventoryUC,
		ReportUC:     reportUC,
		Title:        title,
		HistoryLines: cfg.Storage.HistoryLines,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
