package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/udyog-sutra-api/internal/application/auth"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	SupplierUC *usecase.SupplierUseCase
	SettingsUC *usecase.SettingsUseCase
	ProductUC  *usecase.ProductUseCase
	HealthUC   *usecase.HealthUseCase
	Metrics    *observability.Metrics
	Log        *logger.Logger
	Service    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	app.Use(RequestLogger(log.Component("http"), deps.Metrics))

	// Salud y métricas (público)
	healthHandler := NewHealthHandler(deps.HealthUC, deps.Service, log)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	api.Get("/db-test", healthHandler.DBTest)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log, deps.Metrics)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC, log.Component("auth")))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC, log, deps.Metrics)
	users.Post("/", userHandler.Create)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Get("/user/:ownerId", userHandler.ListByOwner)
	users.Get("/:key", userHandler.Get)
	users.Put("/:key", userHandler.Update)
	users.Delete("/:key", userHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, log, deps.Metrics)
	customers.Post("/", customerHandler.Create)
	customers.Post("/createNewCustomer", customerHandler.Create)
	customers.Get("/user/:ownerId", customerHandler.ListByOwner)
	customers.Get("/:key", customerHandler.Get)
	customers.Put("/:key", customerHandler.Update)
	customers.Delete("/:key", customerHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, log, deps.Metrics)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Post("/createNewSupplier", supplierHandler.Create)
	suppliers.Get("/", RequireRole(entity.RoleAdmin), supplierHandler.List)
	suppliers.Get("/user/:ownerId", supplierHandler.ListByOwner)
	suppliers.Get("/:key", supplierHandler.Get)
	suppliers.Put("/:key", supplierHandler.Update)
	suppliers.Delete("/:key", supplierHandler.Delete)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC, log)
	settings.Get("/:userId", settingsHandler.Get)
	settings.Put("/:userId", settingsHandler.Update)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log, deps.Metrics)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
