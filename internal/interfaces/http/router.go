package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/auth"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldmarketing"
	"github.com/jhoicas/fieldforce-api/internal/application/fieldsales"
	"github.com/jhoicas/fieldforce-api/internal/application/report"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// tokenStore combina alta (logout) y consulta (middleware) de tokens revocados.
// Lo implementa *redis.TokenBlacklist; nil deshabilita la revocación.
type tokenStore interface {
	tokenBlacklister
	tokenRevoker
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	TerritoryUC *usecase.TerritoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	VisitUC     *fieldmarketing.VisitUseCase
	OrderUC     *fieldsales.OrderUseCase
	CampaignUC  *usecase.CampaignUseCase
	DashboardUC *report.DashboardUseCase
	OrderPDFUC  *report.OrderPDFUseCase
	Modules     *usecase.ModuleService

	JWTSecret string

	// Blacklist y LoginLimiter son opcionales: nil cuando Redis no está
	// configurado (sin revocación de tokens ni rate limit de login).
	Blacklist    tokenStore
	LoginLimiter loginLimiter

	HealthChecks map[string]HealthChecker
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.HealthChecks)
	app.Get("/health", healthHandler.Live)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Ready)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Blacklist)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", LoginRateLimit(deps.LoginLimiter), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Blacklist))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	adminRoles := RequireRole(entity.RoleSuperAdmin, entity.RoleCompanyAdmin)
	managerRoles := RequireRole(entity.RoleSuperAdmin, entity.RoleCompanyAdmin, entity.RoleAreaManager)
	superAdminOnly := RequireRole(entity.RoleSuperAdmin)

	// Companies (lectura propia para todos; alcance global solo super_admin)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", superAdminOnly, companyHandler.List)
	companies.Post("/", superAdminOnly, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", adminRoles, companyHandler.Update)
	companies.Delete("/:id", superAdminOnly, companyHandler.Delete)
	companies.Get("/:id/modules", companyHandler.ListModules)
	companies.Put("/:id/modules", superAdminOnly, companyHandler.SetModule)

	// Users (administración de la empresa)
	users := protected.Group("/users", adminRoles)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Territories (lectura para todos, escritura para admins)
	territories := protected.Group("/territories")
	territoryHandler := NewTerritoryHandler(deps.TerritoryUC)
	territories.Get("/", territoryHandler.List)
	territories.Get("/:id", territoryHandler.GetByID)
	territories.Post("/", adminRoles, territoryHandler.Create)
	territories.Put("/:id", adminRoles, territoryHandler.Update)
	territories.Delete("/:id", adminRoles, territoryHandler.Delete)

	// Customers (los agentes crean y actualizan puntos de venta en campo)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", managerRoles, customerHandler.Delete)

	// Products (módulo field_sales; escritura para admins)
	products := protected.Group("/products", RequireModule(entity.ModuleFieldSales, deps.Modules))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminRoles, productHandler.Create)
	products.Put("/:id", adminRoles, productHandler.Update)
	products.Delete("/:id", adminRoles, productHandler.Delete)

	// Visits (módulo field_marketing; la visibilidad por agente la aplica el use case)
	visits := protected.Group("/visits", RequireModule(entity.ModuleFieldMarketing, deps.Modules))
	visitHandler := NewVisitHandler(deps.VisitUC)
	visits.Post("/", visitHandler.Schedule)
	visits.Get("/", visitHandler.List)
	visits.Get("/:id", visitHandler.GetByID)
	visits.Post("/:id/check-in", visitHandler.CheckIn)
	visits.Post("/:id/check-out", visitHandler.CheckOut)
	visits.Post("/:id/cancel", visitHandler.Cancel)

	// Orders (módulo field_sales; confirmar/entregar requiere supervisión)
	orders := protected.Group("/orders", RequireModule(entity.ModuleFieldSales, deps.Modules))
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/confirm", managerRoles, orderHandler.Confirm)
	orders.Post("/:id/deliver", managerRoles, orderHandler.Deliver)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Get("/:id/pdf", RequireModule(entity.ModuleReporting, deps.Modules), orderHandler.DownloadPDF)

	// Campaigns (módulo promotions; escritura para admins y area managers)
	campaigns := protected.Group("/campaigns", RequireModule(entity.ModulePromotions, deps.Modules))
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.GetByID)
	campaigns.Post("/", managerRoles, campaignHandler.Create)
	campaigns.Put("/:id", managerRoles, campaignHandler.Update)
	campaigns.Delete("/:id", managerRoles, campaignHandler.Delete)
	campaigns.Post("/:id/activate", managerRoles, campaignHandler.Activate)
	campaigns.Post("/:id/complete", managerRoles, campaignHandler.Complete)
	campaigns.Post("/:id/cancel", managerRoles, campaignHandler.Cancel)

	// Reports (módulo reporting)
	reports := protected.Group("/reports", RequireModule(entity.ModuleReporting, deps.Modules))
	reportHandler := NewReportHandler(deps.DashboardUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
