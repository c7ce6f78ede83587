package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaquiaro29/aqualife-api/internal/application/billing"
	"github.com/Jaquiaro29/aqualife-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC     *billing.InvoiceUseCase
	CustomerUC    *billing.CustomerUseCase
	OrderUC       *orders.OrderUseCase
	PriceConfigUC *orders.PriceConfigUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Todas las rutas requieren Bearer Token; las de administración exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Pedidos
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", RequireRole(RoleAdmin), orderHandler.UpdateStatus)
	ordersGroup.Put("/:id/payment", orderHandler.RegisterPayment)

	// Facturación (solo admin)
	invoices := api.Group("/invoices", RequireRole(RoleAdmin))
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/external", invoiceHandler.CreateExternal)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)
	invoices.Patch("/:id", invoiceHandler.Update)

	// Clientes (solo admin)
	customers := api.Group("/customers", RequireRole(RoleAdmin))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Configuración de precios
	configGroup := api.Group("/config")
	configHandler := NewConfigHandler(deps.PriceConfigUC)
	configGroup.Get("/price", configHandler.GetPrice)
	configGroup.Get("/price/history", RequireRole(RoleAdmin), configHandler.PriceHistory)
	configGroup.Put("/price", RequireRole(RoleAdmin), configHandler.UpdatePrice)
}
