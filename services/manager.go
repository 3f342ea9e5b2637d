package services

import (
	"cafeqr_server/database"
	"cafeqr_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	CatalogService *CatalogService
	TableService   *TableService
	OrderService   *OrderService
	ReportService  *ReportService
	HealthService  *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store *database.Store) *ServiceManager {
	return &ServiceManager{
		AuthService:    NewAuthService(cfg, logger),
		CatalogService: NewCatalogService(logger, store),
		TableService:   NewTableService(logger, store),
		OrderService:   NewOrderService(logger, store),
		ReportService:  NewReportService(logger, store),
		HealthService:  NewHealthService(logger, store),
	}
}
