package catalog

import (
	"cafeqr_server/handling"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListProducts handles GET /products with an optional ?category_id filter.
func (crm *CatalogRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	var categoryId *uuid.UUID
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Invalid category_id filter"), gecho.Send())
			return
		}
		categoryId = &id
	}

	products, err := crm.catalogService.ListProducts(categoryId)
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to list products")
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		handling.RespondBadBody(w, crm.logger, err)
		return
	}

	product, err := crm.catalogService.CreateProduct(body)
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to create product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		handling.RespondBadBody(w, crm.logger, err)
		return
	}

	product, err := crm.catalogService.UpdateProduct(id, body)
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to update product")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := crm.catalogService.DeleteProduct(id); err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to delete product")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
