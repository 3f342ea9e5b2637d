package tables

import (
	"cafeqr_server/api/middleware"
	"cafeqr_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type TableRoutesManager struct {
	logger       *gecho.Logger
	tableService *services.TableService
	mw           *middleware.Middleware
}

func NewTableRoutesManager(
	logger *gecho.Logger,
	tableService *services.TableService,
	mw *middleware.Middleware,
) *TableRoutesManager {
	return &TableRoutesManager{
		logger:       logger,
		tableService: tableService,
		mw:           mw,
	}
}

func (trm *TableRoutesManager) RegisterRoutes(r chi.Router) {
	// The floor plan is public: the waiter view and the QR landing page both
	// read it without logging in.
	r.Get("/tables", trm.ListTables)

	r.Group(func(r chi.Router) {
		r.Use(trm.mw.AdminAuthMiddleware)
		r.Post("/tables", trm.CreateTable)
		r.Put("/tables/{id}", trm.UpdateTable)
		r.Delete("/tables/{id}", trm.DeleteTable)
	})
}
