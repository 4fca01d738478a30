package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-traceability/internal/handler"
	"go-traceability/internal/middleware"
	"go-traceability/internal/model"
	"go-traceability/internal/repository"
	"go-traceability/internal/service"
	"go-traceability/internal/ws"
	"go-traceability/pkg/config"
	"go-traceability/pkg/database"
	"go-traceability/pkg/qr"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{}, &model.Factory{}, &model.Product{}, &model.Batch{},
		&model.ProductCode{}, &model.FirstLevelCode{}, &model.SecondLevelCode{},
		&model.ShipperCode{}, &model.ShipperProduct{}, &model.Stock{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	codec := qr.NewCodec(cfg.QRBaseURL)

	productRepo := repository.NewProductRepo(db)
	factoryRepo := repository.NewFactoryRepo(db)
	batchRepo := repository.NewBatchRepo(db)
	codeRepo := repository.NewCodeRepo(db)
	shipperRepo := repository.NewShipperRepo(db)
	stockRepo := repository.NewStockRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, factoryRepo, batchRepo)
	codeService := service.NewCodeService(productRepo, batchRepo, codeRepo, shipperRepo, codec, wsHub, cfg.ShipperBatchPick)
	stockService := service.NewStockService(stockRepo, factoryRepo, productRepo, batchRepo, wsHub)
	reportService := service.NewReportService(codeRepo, batchRepo, factoryRepo, stockRepo)
	dashService := service.NewDashboardService(productRepo, batchRepo, factoryRepo)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	codeHandler := handler.NewCodeHandler(codeService)
	scanHandler := handler.NewScanHandler(codeService)
	stockHandler := handler.NewStockHandler(stockService)
	reportHandler := handler.NewReportHandler(reportService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Traceability Pro v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// External scanners land here without authentication
	app.Get("/scan", scanHandler.ScanPage)
	api.Post("/scan/parse", scanHandler.ParseQR)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/recent-batches", dashHandler.GetRecentBatches)

	// Catalog (creation restricted to admins)
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/products", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateProduct)
	protected.Get("/products/:id/batches", catalogHandler.GetBatchesByProduct)
	protected.Get("/factories", catalogHandler.GetFactories)
	protected.Post("/factories", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateFactory)
	protected.Get("/batches", catalogHandler.GetBatches)
	protected.Post("/batches", catalogHandler.CreateBatch)

	// Code generation and listing
	protected.Get("/codes/product", codeHandler.GetProductCodes)
	protected.Post("/codes/product", codeHandler.GenerateProductCodes)
	protected.Get("/codes/first-level", codeHandler.GetFirstLevelCodes)
	protected.Post("/codes/first-level", codeHandler.GenerateFirstLevelCodes)
	protected.Get("/codes/second-level", codeHandler.GetSecondLevelCodes)
	protected.Post("/codes/second-level", codeHandler.GenerateSecondLevelCodes)
	protected.Get("/codes/shipper", codeHandler.GetShipperCodes)
	protected.Post("/codes/shipper", codeHandler.GenerateShipperCode)
	protected.Get("/codes/shipper/:id", codeHandler.GetShipperCode)
	protected.Get("/codes/:type/:id/qr", codeHandler.ShowQR)

	// Stock
	protected.Post("/stock", stockHandler.UpsertStock)
	protected.Get("/stock/report", stockHandler.GetStockReport)
	protected.Get("/stock/factory/:id", stockHandler.GetFactoryStock)
	protected.Get("/stock/batch/:id", stockHandler.GetBatchStockTotal)

	// Excel exports
	protected.Get("/export/product-code/:id", reportHandler.ExportProductCode)
	protected.Get("/export/batch-stock/:id", reportHandler.ExportBatchStock)
	protected.Get("/export/batches", reportHandler.ExportAllBatches)
	protected.Get("/export/factory-stock/:id", reportHandler.ExportFactoryStock)
	protected.Get("/export/stock", reportHandler.ExportAllStock)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:     "admin@example.com",
		FirstName: "Master",
		LastName:  "Administrator",
		Role:      model.RoleAdmin,
		IsActive:  true,
	}
	admin.CreatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin@example.com / admin123")
}
