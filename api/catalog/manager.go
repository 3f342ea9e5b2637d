package catalog

import (
	"cafeqr_server/api/middleware"
	"cafeqr_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (crm *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	// Public reads: the QR menu and the raw catalog listings.
	r.Get("/menu", crm.GetMenu)
	r.Get("/categories", crm.ListCategories)
	r.Get("/products", crm.ListProducts)

	// Catalog mutation is admin-only.
	r.Group(func(r chi.Router) {
		r.Use(crm.mw.AdminAuthMiddleware)
		r.Post("/categories", crm.CreateCategory)
		r.Put("/categories/{id}", crm.UpdateCategory)
		r.Delete("/categories/{id}", crm.DeleteCategory)
		r.Post("/products", crm.CreateProduct)
		r.Put("/products/{id}", crm.UpdateProduct)
		r.Delete("/products/{id}", crm.DeleteProduct)
	})
}
