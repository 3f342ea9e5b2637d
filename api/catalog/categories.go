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

func (crm *CatalogRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.catalogService.ListCategories()
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to list categories")
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateCategoryRequest](r)
	if err != nil {
		handling.RespondBadBody(w, crm.logger, err)
		return
	}

	category, err := crm.catalogService.CreateCategory(body)
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to create category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCategoryRequest](r)
	if err != nil {
		handling.RespondBadBody(w, crm.logger, err)
		return
	}

	category, err := crm.catalogService.UpdateCategory(id, body)
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to update category")
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (crm *CatalogRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	if err := crm.catalogService.DeleteCategory(id); err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to delete category")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}
