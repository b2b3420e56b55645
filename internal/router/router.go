package router

import (
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/config"
	"github.com/Jhanky/Energy4Cero-sub001/internal/handler"
	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/middleware"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"
	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dianCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	costCenterRepo := repository.NewCostCenterRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	clientSvc := service.NewClientService(clientRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	costCenterSvc := service.NewCostCenterService(costCenterRepo)
	catalogSvc := service.NewCatalogService(catalogRepo, rdb)
	quotationSvc := service.NewQuotationService(quotationRepo, clientRepo, catalogSvc, dispatcher)
	invoicingSvc := service.NewInvoicingService(invoiceRepo, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	costCentersH := handler.NewCostCentersHandler(costCenterSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	quotationsH := handler.NewQuotationsHandler(quotationSvc)
	invoicesH := handler.NewInvoicesHandler(invoicingSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, dianCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: admin, commercial, viewer — declared per-endpoint
		anyRole := middleware.RequireRole("admin", "commercial", "viewer")
		writers := middleware.RequireRole("admin", "commercial")
		adminOnly := middleware.RequireRole("admin")

		// Quotations — commercial team writes, everyone authenticated reads
		v1.GET("/quotations", anyRole, quotationsH.List)
		v1.GET("/quotations/statuses", anyRole, quotationsH.ListStatuses)
		v1.GET("/quotations/:id", anyRole, quotationsH.Get)
		v1.GET("/quotations/:id/invoice", anyRole, invoicesH.GetByQuotation)
		quotes := v1.Group("/quotations", writers)
		{
			quotes.POST("", quotationsH.Create)
			quotes.POST("/recalculate", quotationsH.Recalculate)
			quotes.PUT("/:id", quotationsH.Update)
			quotes.PATCH("/:id/status", quotationsH.ChangeStatus)
			quotes.POST("/:id/send", quotationsH.Send)
		}
		v1.DELETE("/quotations/:id", adminOnly, quotationsH.Delete)

		v1.GET("/invoices/:id/pdf", anyRole, invoicesH.DownloadPDF)
		v1.POST("/invoices/:id/retry", adminOnly, invoicesH.Retry)

		// Clients — commercial team writes, everyone authenticated reads
		v1.GET("/clients", anyRole, clientsH.List)
		v1.GET("/clients/:id", anyRole, clientsH.Get)
		clients := v1.Group("/clients", writers)
		{
			clients.POST("", clientsH.Create)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", clientsH.Delete)
		}

		// Equipment catalogs — admin writes, everyone authenticated reads
		v1.GET("/panels", anyRole, catalogH.ListPanels)
		v1.GET("/panels/:id", anyRole, catalogH.GetPanel)
		v1.GET("/inverters", anyRole, catalogH.ListInverters)
		v1.GET("/inverters/:id", anyRole, catalogH.GetInverter)
		v1.GET("/batteries", anyRole, catalogH.ListBatteries)
		v1.GET("/batteries/:id", anyRole, catalogH.GetBattery)
		panels := v1.Group("/panels", adminOnly)
		{
			panels.POST("", catalogH.CreatePanel)
			panels.PUT("/:id", catalogH.UpdatePanel)
			panels.DELETE("/:id", catalogH.DeletePanel)
		}
		inverters := v1.Group("/inverters", adminOnly)
		{
			inverters.POST("", catalogH.CreateInverter)
			inverters.PUT("/:id", catalogH.UpdateInverter)
			inverters.DELETE("/:id", catalogH.DeleteInverter)
		}
		batteries := v1.Group("/batteries", adminOnly)
		{
			batteries.POST("", catalogH.CreateBattery)
			batteries.PUT("/:id", catalogH.UpdateBattery)
			batteries.DELETE("/:id", catalogH.DeleteBattery)
		}

		// Suppliers and cost centers — admin only
		suppliers := v1.Group("/suppliers", adminOnly)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}
		costCenters := v1.Group("/cost-centers", adminOnly)
		{
			costCenters.POST("", costCentersH.Create)
			costCenters.GET("", costCentersH.List)
			costCenters.GET("/:id", costCentersH.Get)
			costCenters.PUT("/:id", costCentersH.Update)
			costCenters.DELETE("/:id", costCentersH.Delete)
		}

		// User administration — admin only
		users := v1.Group("/users", adminOnly)
		{
			users.POST("", authH.CreateUser)
			users.GET("", authH.ListUsers)
			users.PUT("/:id", authH.UpdateUser)
			users.DELETE("/:id", authH.DeactivateUser)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
