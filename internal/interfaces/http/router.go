package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	LedgerUC       *inventory.LedgerUseCase
	RequestUC      *procurement.RequestUseCase
	OrderUC        *procurement.OrderUseCase
	TenantUC       *usecase.TenantUseCase
	UserUC         *usecase.UserUseCase
	PaymentUC      *usecase.PaymentUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.NotificationUC, deps.TenantUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-request", authHandler.RequestPasswordReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequirePolicy(policy.ActionProductWrite), productHandler.Create)
	products.Get("/", RequirePolicy(policy.ActionProductRead), productHandler.List)
	products.Get("/:id", RequirePolicy(policy.ActionProductRead), productHandler.GetByID)
	products.Put("/:id", RequirePolicy(policy.ActionProductWrite), productHandler.Update)
	products.Delete("/:id", RequirePolicy(policy.ActionProductWrite), productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequirePolicy(policy.ActionSupplierWrite), supplierHandler.Create)
	suppliers.Get("/", RequirePolicy(policy.ActionSupplierRead), supplierHandler.List)
	suppliers.Get("/:id", RequirePolicy(policy.ActionSupplierRead), supplierHandler.GetByID)
	suppliers.Put("/:id", RequirePolicy(policy.ActionSupplierWrite), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePolicy(policy.ActionSupplierWrite), supplierHandler.Delete)

	// Inventory ledger
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	inv.Post("/transactions", RequirePolicy(policy.ActionInventoryRegister), inventoryHandler.RegisterTransaction)
	inv.Get("/products/:id/history", RequirePolicy(policy.ActionInventoryHistory), inventoryHandler.GetProductHistory)

	// Purchase requests
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/", RequirePolicy(policy.ActionRequestCreate), requestHandler.Create)
	requests.Get("/", RequirePolicy(policy.ActionRequestRead), requestHandler.List)
	requests.Get("/:id", RequirePolicy(policy.ActionRequestRead), requestHandler.GetByID)
	requests.Put("/:id/status", RequirePolicy(policy.ActionRequestDecide), requestHandler.UpdateStatus)
	requests.Delete("/:id", RequirePolicy(policy.ActionRequestDelete), requestHandler.Delete)

	// Purchase orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/generate", RequirePolicy(policy.ActionOrderCreate), orderHandler.Generate)
	orders.Get("/", RequirePolicy(policy.ActionOrderRead), orderHandler.List)
	orders.Get("/:id", RequirePolicy(policy.ActionOrderRead), orderHandler.GetByID)
	orders.Get("/:id/pdf", RequirePolicy(policy.ActionOrderRead), orderHandler.PDF)
	orders.Post("/:id/receive", RequirePolicy(policy.ActionOrderReceive), orderHandler.Receive)
	orders.Put("/:id", RequirePolicy(policy.ActionOrderUpdate), orderHandler.Update)
	orders.Delete("/:id", RequirePolicy(policy.ActionOrderDelete), orderHandler.Delete)

	// Tenants
	tenants := protected.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", RequirePolicy(policy.ActionTenantManage), tenantHandler.Create)
	tenants.Get("/", RequirePolicy(policy.ActionTenantManage), tenantHandler.List)
	tenants.Get("/:id", RequirePolicy(policy.ActionTenantRead), tenantHandler.GetByID)
	tenants.Put("/:id", RequirePolicy(policy.ActionTenantManage), tenantHandler.Update)
	tenants.Delete("/:id", RequirePolicy(policy.ActionTenantManage), tenantHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequirePolicy(policy.ActionUserManage), userHandler.Create)
	users.Get("/", RequirePolicy(policy.ActionUserManage), userHandler.List)
	users.Get("/:id", RequirePolicy(policy.ActionUserManage), userHandler.GetByID)
	users.Put("/:id", RequirePolicy(policy.ActionUserManage), userHandler.Update)
	users.Delete("/:id", RequirePolicy(policy.ActionUserManage), userHandler.Delete)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", RequirePolicy(policy.ActionPaymentCreate), paymentHandler.Create)
	payments.Get("/", paymentHandler.List) // ADMIN todos, COMPANY propios
	payments.Put("/:id/verify", RequirePolicy(policy.ActionPaymentVerify), paymentHandler.Verify)
	payments.Delete("/:id", RequirePolicy(policy.ActionPaymentCancel), paymentHandler.Cancel)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", RequirePolicy(policy.ActionNotificationList), notificationHandler.List)
	notifications.Put("/:id", RequirePolicy(policy.ActionNotificationResolve), notificationHandler.Resolve)
}
