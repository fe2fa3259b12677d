package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellr/ventas-api/internal/application/auth"
	"github.com/jcastellr/ventas-api/internal/application/sales"
	"github.com/jcastellr/ventas-api/internal/application/usecase"
	"github.com/jcastellr/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	Engine     *sales.Engine
	ReceiptUC  *sales.ReceiptPDFUseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleUser)

	// Customers (protegido; lectura por id abierta a usuarios)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", adminOnly, customerHandler.Create)
	customers.Get("/", adminOnly, customerHandler.List)
	customers.Get("/:id", anyRole, customerHandler.GetByID)
	customers.Put("/:id", adminOnly, customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Deactivate)

	// Products (protegido; catálogo legible por usuarios)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)

	// Sales (protegido, solo admin)
	salesGroup := protected.Group("/sales", adminOnly)
	saleHandler := NewSaleHandler(deps.Engine, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/customer/:name", saleHandler.ListByCustomerName)
	salesGroup.Get("/product/:name", saleHandler.ListByProductName)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Get("/:id", saleHandler.GetByID)
}
