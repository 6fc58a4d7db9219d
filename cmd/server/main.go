package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accountingapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/accounting"
	catalogapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/catalog"
	identityapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/identity"
	inventoryapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/inventory"
	reportapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/report"
	salesapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/sales"
	workforceapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/workforce"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/auth"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/cache"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/config"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/logger"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/persistence"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/interfaces/http/handler"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/interfaces/http/middleware"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/interfaces/http/router"
)

//	@title			Metribooks API
//	@version		1.0
//	@description	Bookkeeping API for small businesses: catalog, inventory, sales, expenses and ZRA turnover tax.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Metribooks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Report snapshot cache (Redis). When disabled or unreachable the
	// report service recomputes on every request.
	var snapshotCache *cache.RedisSnapshotCache
	if cfg.Report.CacheEnabled {
		snapshotCache, err = cache.NewRedisSnapshotCache(cfg.Redis, log)
		if err != nil {
			log.Warn("Report cache unavailable, falling back to uncached reports", zap.Error(err))
			snapshotCache = nil
		} else {
			defer func() {
				if err := snapshotCache.Close(); err != nil {
					log.Error("Error closing report cache", zap.Error(err))
				}
			}()
			log.Info("Report snapshot cache connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	stockLevelRepo := persistence.NewGormStockLevelRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	stockAlertRepo := persistence.NewGormStockAlertRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	workerRepo := persistence.NewGormWorkerRepository(db.DB)
	workRecordRepo := persistence.NewGormWorkRecordRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRecordRepository(db.DB)
	taxRepo := persistence.NewGormTurnoverTaxRepository(db.DB)
	summaryRepo := persistence.NewGormFinancialSummaryRepository(db.DB)

	// Transaction scope for write cascades. Passing the snapshot cache as
	// invalidator keeps cached reports consistent with committed writes.
	var invalidator reportapp.Invalidator
	if snapshotCache != nil {
		invalidator = snapshotCache
	}
	scope := persistence.NewGormTransactionScope(db.DB, invalidator)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	}, log)
	itemService := catalogapp.NewItemService(itemRepo)
	stockService := inventoryapp.NewStockService(itemRepo, stockLevelRepo, stockMovementRepo, stockAlertRepo, scope)
	saleService := salesapp.NewSaleService(saleRepo, itemRepo, scope)
	workerService := workforceapp.NewWorkerService(workerRepo)
	workRecordService := workforceapp.NewWorkRecordService(workRecordRepo, workerRepo, itemRepo, scope)
	expenseService := accountingapp.NewExpenseService(expenseRepo, scope)
	assetService := accountingapp.NewAssetService(assetRepo, scope)
	incomeService := accountingapp.NewIncomeService(incomeRepo)
	taxService := accountingapp.NewTaxService(taxRepo)
	summaryService := accountingapp.NewSummaryService(summaryRepo, scope)

	var reportCache reportapp.SnapshotCache
	if snapshotCache != nil {
		reportCache = snapshotCache
	}
	reportService := reportapp.NewReportService(
		saleRepo, expenseRepo, incomeRepo, taxRepo,
		itemRepo, stockLevelRepo, stockMovementRepo,
		reportCache, cfg.Report.CacheTTL,
	)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	stockHandler := handler.NewStockHandler(stockService)
	saleHandler := handler.NewSaleHandler(saleService)
	workforceHandler := handler.NewWorkforceHandler(workerService, workRecordService)
	accountingHandler := handler.NewAccountingHandler(expenseService, assetService, incomeService, taxService, summaryService)
	reportHandler := handler.NewReportHandler(reportService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Auth domain. Register, login and refresh stay public; the JWT
	// middleware skips them by path.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/me", authHandler.UpdateProfile)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Catalog domain
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/items", itemHandler.Create)
	catalogRoutes.GET("/items", itemHandler.List)
	catalogRoutes.GET("/items/:id", itemHandler.GetByID)
	catalogRoutes.PUT("/items/:id", itemHandler.Update)
	catalogRoutes.POST("/items/:id/activate", itemHandler.Activate)
	catalogRoutes.POST("/items/:id/deactivate", itemHandler.Deactivate)

	// Inventory domain
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/stock", stockHandler.ListStock)
	inventoryRoutes.GET("/stock/:item_id", stockHandler.GetStock)
	inventoryRoutes.PUT("/stock/:item_id/reorder-level", stockHandler.SetReorderLevel)
	inventoryRoutes.GET("/stock/:item_id/movements", stockHandler.ListMovements)
	inventoryRoutes.POST("/movements", stockHandler.RecordMovement)
	inventoryRoutes.POST("/adjustments", stockHandler.AdjustStock)
	inventoryRoutes.GET("/alerts", stockHandler.ListAlerts)
	inventoryRoutes.POST("/alerts/:id/acknowledge", stockHandler.AcknowledgeAlert)

	// Sales domain
	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.POST("", saleHandler.Record)
	salesRoutes.GET("", saleHandler.List)
	salesRoutes.GET("/summary/daily", saleHandler.DailySummary)
	salesRoutes.GET("/:id", saleHandler.GetByID)
	salesRoutes.POST("/:id/cancel", saleHandler.Cancel)

	// Workforce domain
	workforceRoutes := router.NewDomainGroup("workforce", "/workforce")
	workforceRoutes.POST("/workers", workforceHandler.CreateWorker)
	workforceRoutes.GET("/workers", workforceHandler.ListWorkers)
	workforceRoutes.GET("/workers/:id", workforceHandler.GetWorker)
	workforceRoutes.PUT("/workers/:id", workforceHandler.UpdateWorker)
	workforceRoutes.POST("/workers/:id/activate", workforceHandler.ActivateWorker)
	workforceRoutes.POST("/workers/:id/deactivate", workforceHandler.DeactivateWorker)
	workforceRoutes.POST("/records", workforceHandler.CreateWorkRecord)
	workforceRoutes.GET("/records", workforceHandler.ListWorkRecords)
	workforceRoutes.GET("/records/:id", workforceHandler.GetWorkRecord)
	workforceRoutes.POST("/records/:id/mark-paid", workforceHandler.MarkWorkRecordPaid)
	workforceRoutes.POST("/records/:id/mark-unpaid", workforceHandler.MarkWorkRecordUnpaid)
	workforceRoutes.DELETE("/records/:id", workforceHandler.DeleteWorkRecord)

	// Accounting domain
	accountingRoutes := router.NewDomainGroup("accounting", "/accounting")
	accountingRoutes.POST("/expenses", accountingHandler.CreateExpense)
	accountingRoutes.GET("/expenses", accountingHandler.ListExpenses)
	accountingRoutes.GET("/expenses/:id", accountingHandler.GetExpense)
	accountingRoutes.PUT("/expenses/:id", accountingHandler.UpdateExpense)
	accountingRoutes.DELETE("/expenses/:id", accountingHandler.DeleteExpense)
	accountingRoutes.POST("/expenses/:id/mark-paid", accountingHandler.MarkExpensePaid)
	accountingRoutes.POST("/expenses/:id/mark-pending", accountingHandler.MarkExpensePending)
	accountingRoutes.POST("/assets", accountingHandler.CreateAsset)
	accountingRoutes.GET("/assets", accountingHandler.ListAssets)
	accountingRoutes.GET("/assets/:id", accountingHandler.GetAsset)
	accountingRoutes.PUT("/assets/:id", accountingHandler.UpdateAsset)
	accountingRoutes.POST("/assets/:id/dispose", accountingHandler.DisposeAsset)
	accountingRoutes.GET("/income", accountingHandler.ListIncome)
	accountingRoutes.GET("/income/monthly", accountingHandler.GetMonthlyIncome)
	accountingRoutes.GET("/tax/:year", accountingHandler.GetTaxYear)
	accountingRoutes.GET("/tax/:year/:month", accountingHandler.GetTaxMonth)
	accountingRoutes.GET("/summary", accountingHandler.GetSummary)
	accountingRoutes.GET("/summary/months", accountingHandler.ListSummaryMonths)
	accountingRoutes.GET("/summary/period", accountingHandler.GetPeriodSummary)
	accountingRoutes.POST("/summary/recompute", accountingHandler.RecomputeSummary)

	// Report domain
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/profit-loss", reportHandler.ProfitLoss)
	reportRoutes.GET("/sales", reportHandler.Sales)
	reportRoutes.GET("/expenses", reportHandler.Expenses)
	reportRoutes.GET("/tax", reportHandler.Tax)
	reportRoutes.GET("/inventory", reportHandler.Inventory)

	r.Register(authRoutes).
		Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(salesRoutes).
		Register(workforceRoutes).
		Register(accountingRoutes).
		Register(reportRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
