package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockbridge-api/internal/application/analytics"
	"github.com/jhoicas/stockbridge-api/internal/application/auth"
	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/application/scanner"
	"github.com/jhoicas/stockbridge-api/internal/application/transfer"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName    string
	CatalogBackend string
	CatalogUC      *catalog.UseCase
	Resolver       *catalog.Resolver
	TransferUC     *transfer.UseCase
	ScannerUC      *scanner.UseCase
	DeviceRelay    DeviceRelay
	OrdersUC       *orders.UseCase
	LedgerUC       *ledger.UseCase
	DashboardUC    *appanalytics.DashboardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API. Todas las rutas /api atribuyen la petición a un
// operador (anónimo sin token); ninguna exige rol.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Catalog: deps.CatalogBackend})
	})

	scannerHandler := NewScannerHandler(deps.ScannerUC, deps.DeviceRelay, deps.Log)
	app.Get("/ws/scanner", UpgradeOnly, scannerHandler.Stream())

	api := app.Group("/api", OperatorMiddleware(deps.JWTSecret))

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/token", authHandler.Token)

	locationHandler := NewLocationHandler(deps.CatalogUC)
	api.Get("/locations", locationHandler.List)

	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Resolver)
	api.Get("/catalog/products", catalogHandler.ListProducts)
	api.Get("/catalog/barcodes/:barcode", catalogHandler.ResolveBarcode)

	inventoryHandler := NewInventoryHandler(deps.CatalogUC)
	api.Get("/inventory", inventoryHandler.List)

	// Traslados
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Open)
	transfers.Get("/:id", transferHandler.Get)
	transfers.Delete("/:id", transferHandler.Close)
	transfers.Get("/:id/products", transferHandler.ListProducts)
	transfers.Put("/:id/store", transferHandler.SelectStore)
	transfers.Put("/:id/destination", transferHandler.SelectDestination)
	transfers.Post("/:id/lines", transferHandler.AddLine)
	transfers.Put("/:id/lines/:productId", transferHandler.SetQuantity)
	transfers.Delete("/:id/lines/:productId", transferHandler.RemoveLine)
	transfers.Post("/:id/submit", transferHandler.Submit)

	// Escáner
	sc := api.Group("/scanner")
	sc.Get("/devices", scannerHandler.Devices)
	sc.Post("/devices", scannerHandler.RegisterDevice)
	sc.Post("/devices/:id/decode", scannerHandler.Decode)
	sc.Post("/start", scannerHandler.Start)
	sc.Post("/stop", scannerHandler.Stop)
	sc.Post("/reset", scannerHandler.Reset)
	sc.Get("/status", scannerHandler.Status)

	// Tablero de órdenes
	orderHandler := NewOrderHandler(deps.OrdersUC)
	api.Get("/orders", orderHandler.List)
	api.Get("/orders/:id", orderHandler.Get)
	api.Get("/orders/:id/slip.pdf", orderHandler.Slip)
	api.Get("/orders/:id/manifest.xml", orderHandler.Manifest)

	// Libro de trazabilidad
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Get("/ledger", ledgerHandler.List)
	api.Get("/ledger/export", ledgerHandler.Export)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
