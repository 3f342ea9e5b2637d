package tables

import (
	"cafeqr_server/handling"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (trm *TableRoutesManager) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := trm.tableService.ListTables()
	if err != nil {
		handling.RespondError(w, trm.logger, err, "Failed to list tables")
		return
	}

	gecho.Success(w,
		gecho.WithData(tables),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) CreateTable(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateTableRequest](r)
	if err != nil {
		handling.RespondBadBody(w, trm.logger, err)
		return
	}

	table, err := trm.tableService.CreateTable(body)
	if err != nil {
		handling.RespondError(w, trm.logger, err, "Failed to create table")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table created"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateTableRequest](r)
	if err != nil {
		handling.RespondBadBody(w, trm.logger, err)
		return
	}

	table, err := trm.tableService.UpdateTable(id, body)
	if err != nil {
		handling.RespondError(w, trm.logger, err, "Failed to update table")
		return
	}

	gecho.Success(w,
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	if err := trm.tableService.DeleteTable(id); err != nil {
		handling.RespondError(w, trm.logger, err, "Failed to delete table")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table deleted"),
		gecho.Send(),
	)
}
