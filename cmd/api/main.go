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

	"github.com/jhoicas/stockbridge-api/docs"
	appanalytics "github.com/jhoicas/stockbridge-api/internal/application/analytics"
	"github.com/jhoicas/stockbridge-api/internal/application/auth"
	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/application/scanner"
	"github.com/jhoicas/stockbridge-api/internal/application/transfer"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/camera"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stockbridge-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/xmldoc"
	httpRouter "github.com/jhoicas/stockbridge-api/internal/interfaces/http"
	"github.com/jhoicas/stockbridge-api/pkg/config"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// backend repositorios de un origen de datos (memoria o PostgreSQL).
type backend struct {
	catalog   repository.CatalogRepository
	locations repository.LocationRepository
	operators repository.OperatorRepository
	orders    repository.TransferOrderRepository
	ledger    repository.TransactionRepository
	tx        orders.TxRunner
	close     func()
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.Catalog.Backend == config.BackendPostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB, postgres.PoolOptions{})
		if err != nil {
			return nil, err
		}
		return &backend{
			catalog:   postgres.NewCatalogRepository(pool),
			locations: postgres.NewLocationRepository(pool),
			operators: postgres.NewOperatorRepository(pool),
			orders:    postgres.NewTransferOrderRepository(pool),
			ledger:    postgres.NewTransactionRepository(pool),
			tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}

	operators, err := memory.SeedOperators(cfg.Operator.DefaultPIN)
	if err != nil {
		return nil, err
	}
	orderRepo := memory.NewTransferOrderRepository(memory.SeedOrders())
	txRepo := memory.NewTransactionRepository(memory.SeedTransactions())
	log.Warn().Msg("catálogo en memoria: los cambios se pierden al reiniciar")
	return &backend{
		catalog:   memory.NewCatalogRepository(memory.SeedProducts()),
		locations: memory.NewLocationRepository(memory.SeedLocations()),
		operators: memory.NewOperatorRepository(operators),
		orders:    orderRepo,
		ledger:    txRepo,
		tx:        memory.NewTxRunner(orderRepo, txRepo),
		close:     func() {},
	}, nil
}

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
		Str("catalog", cfg.Catalog.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("catalog", cfg.Catalog.Backend).Msg("abrir backend de catálogo")
	}
	defer be.close()

	devices := make([]entity.Device, 0, len(cfg.Scanner.Devices))
	for _, d := range cfg.Scanner.Devices {
		devices = append(devices, entity.Device{ID: d.ID, Label: d.Label})
	}
	hub := camera.NewHub(devices...)

	resolver := catalog.NewResolver(be.catalog)
	catalogUC := catalog.NewUseCase(be.catalog, be.locations)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	ordersUC := orders.NewUseCase(be.orders, be.catalog, be.tx, pdfGenerator, xmldoc.NewManifestBuilder(), log)

	// Sin TRANSFER_RECORD_ORDERS el envío solo confirma y vacía el carrito.
	var recorder transfer.OrderRecorder
	if cfg.Transfer.RecordOrders {
		recorder = ordersUC
	}
	transferUC := transfer.NewUseCase(be.catalog, be.locations, resolver, recorder, log)
	scannerUC := scanner.NewUseCase(hub, resolver, log)

	ledgerUC := ledger.NewUseCase(be.ledger, log,
		infrapdf.NewLedgerExporter(),
		spreadsheet.NewLedgerExporter(),
		xmldoc.NewLedgerExporter(),
	)
	dashboardUC := appanalytics.NewDashboardUseCase(be.catalog, be.orders, be.ledger)
	authUC := auth.NewAuthUseCase(be.operators, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.Content(cfg.App.SwaggerFile),
		Path:        "docs",
		Title:       "StockBridge API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:    cfg.App.Name,
		CatalogBackend: cfg.Catalog.Backend,
		CatalogUC:      catalogUC,
		Resolver:       resolver,
		TransferUC:     transferUC,
		ScannerUC:      scannerUC,
		DeviceRelay:    hub,
		OrdersUC:       ordersUC,
		LedgerUC:       ledgerUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
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

	// Libera los escaneos abiertos antes de cerrar conexiones.
	scannerUC.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
