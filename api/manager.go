package api

import (
	"cafeqr_server/api/auth"
	"cafeqr_server/api/catalog"
	"cafeqr_server/api/health"
	"cafeqr_server/api/middleware"
	"cafeqr_server/api/orders"
	"cafeqr_server/api/reports"
	"cafeqr_server/api/tables"
	"cafeqr_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes    *auth.AuthRoutesManager
	catalogRoutes *catalog.CatalogRoutesManager
	tableRoutes   *tables.TableRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	reportRoutes  *reports.ReportRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		authRoutes:    auth.NewAuthRoutesManager(logger, sm.AuthService),
		catalogRoutes: catalog.NewCatalogRoutesManager(logger, sm.CatalogService, mw),
		tableRoutes:   tables.NewTableRoutesManager(logger, sm.TableService, mw),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		reportRoutes:  reports.NewReportRoutesManager(logger, sm.ReportService, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.catalogRoutes.RegisterRoutes(r)
	rm.tableRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.reportRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
