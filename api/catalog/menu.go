package catalog

import (
	"cafeqr_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetMenu handles GET /menu: the public, read-only menu for QR customers.
func (crm *CatalogRoutesManager) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := crm.catalogService.ListMenu()
	if err != nil {
		handling.RespondError(w, crm.logger, err, "Failed to build menu")
		return
	}

	gecho.Success(w,
		gecho.WithData(menu),
		gecho.Send(),
	)
}
