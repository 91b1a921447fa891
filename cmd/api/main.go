package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	domaininv "github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-alerts-api/pkg/config"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
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
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos    inventory.Repositories
		txRunner inventory.TxRunner
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := memory.New()
		repos = store.Repositories()
		txRunner = store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.DB.MigrateOnStart {
			if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = postgres.NewRepositories(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	companyUC := usecase.NewCompanyUseCase(repos.Companies)
	warehouseUC := usecase.NewWarehouseUseCase(repos.Warehouses, repos.Companies)
	productUC := usecase.NewProductUseCase(repos.Products)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers, repos.Companies, repos.Products)

	policy := domaininv.NewThresholdPolicy(cfg.Alerts.DefaultThreshold, cfg.Alerts.CategoryThresholds, domaininv.NoCategory)
	createProductUC := inventory.NewCreateProductUseCase(txRunner)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner)
	ledgerUC := inventory.NewLedgerUseCase(txRunner)
	bundleUC := inventory.NewBundleUseCase(txRunner)
	alertsUC := inventory.NewLowStockAlertsUseCase(txRunner, policy)

	m := metrics.New("inventory_alerts")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Metrics(m))

	// Swagger UI en http://localhost:<port>/docs, solo si el archivo existe.
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Inventory Alerts API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.SwaggerPath).Msg("swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		WarehouseUC:    warehouseUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		CreateProduct:  createProductUC,
		AdjustStock:    adjustStockUC,
		Ledger:         ledgerUC,
		Bundles:        bundleUC,
		LowStockAlerts: alertsUC,
		Logger:         log,
		Metrics:        m,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
