package reports

import (
	"cafeqr_server/api/middleware"
	"cafeqr_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReportRoutesManager struct {
	logger        *gecho.Logger
	reportService *services.ReportService
	mw            *middleware.Middleware
}

func NewReportRoutesManager(
	logger *gecho.Logger,
	reportService *services.ReportService,
	mw *middleware.Middleware,
) *ReportRoutesManager {
	return &ReportRoutesManager{
		logger:        logger,
		reportService: reportService,
		mw:            mw,
	}
}

func (rrm *ReportRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(rrm.mw.AdminAuthMiddleware)
		r.Get("/reports/payments", rrm.GetPaymentReport)
	})
}
