package orders

import (
	"cafeqr_server/api/middleware"
	"cafeqr_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	// Intentionally open: customers place orders via table QR code without
	// logging in, and waiters move tabs around without an admin session.
	// Same param name as the table routes; chi rejects mixed keys at the
	// same position.
	r.Get("/tables/{id}/orders", orm.ListActiveOrders)
	r.Post("/tables/{id}/orders", orm.CreateOrder)
	r.Post("/tables/transfer", orm.TransferOrders)

	// Settlement touches money and is admin-only.
	r.Group(func(r chi.Router) {
		r.Use(orm.mw.AdminAuthMiddleware)
		r.Get("/orders/{id}/total", orm.GetOrderTotal)
		r.Put("/orders/{id}/close", orm.CloseOrder)
	})
}
