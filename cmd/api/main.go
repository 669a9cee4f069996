package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/config"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/handler"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/middleware"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/repository/postgres"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/service"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	organizationRepo := postgres.NewOrganizationRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	inventoryItemRepo := postgres.NewInventoryItemRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	// Initialize services
	taxConfig := service.DefaultTaxConfig()
	statementService := service.NewStatementService(dealRepo, invoiceRepo, expenseRepo, purchaseRepo, taxConfig)
	revenueService := service.NewRevenueService(dealRepo, invoiceRepo)
	cashFlowService := service.NewCashFlowService(organizationRepo, dealRepo, expenseRepo, purchaseRepo)
	inventoryService := service.NewInventoryService(inventoryItemRepo, productRepo)
	payrollService := service.NewPayrollService(employeeRepo, expenseRepo)
	recordService := service.NewRecordService(organizationRepo, dealRepo, invoiceRepo, expenseRepo, purchaseRepo, employeeRepo)

	// Initialize handlers
	reportHandler := handler.NewReportHandler(statementService, revenueService, cashFlowService, inventoryService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	recordsHandler := handler.NewRecordsHandler(recordService)

	// Payroll commit guard
	payrollGuard := middleware.NewPayrollGuardWithConfig(cfg.PayrollCommitsPerMinute, cfg.PayrollCommitBurst)
	defer payrollGuard.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e,
		middleware.OrganizationScope(organizationRepo),
		middleware.PayrollCommitMiddleware(payrollGuard),
		reportHandler, payrollHandler, recordsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
