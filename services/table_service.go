package services

import (
	"cafeqr_server/database"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"sort"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// TableService manages the physical table registry. Occupancy on a table is
// derived from order state; the ledger recomputes it after every operation
// that creates, transfers or closes an order.
type TableService struct {
	logger *gecho.Logger
	store  *database.Store
	now    func() time.Time
}

func NewTableService(logger *gecho.Logger, store *database.Store) *TableService {
	return &TableService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// ListTables returns tables sorted by section, then name.
func (ts *TableService) ListTables() ([]structs.Table, error) {
	var tables []structs.Table

	err := ts.store.View(func(doc *structs.Document) error {
		tables = append([]structs.Table{}, doc.Tables...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tables, func(i, j int) bool {
		if tables[i].Section != tables[j].Section {
			return tables[i].Section < tables[j].Section
		}
		return tables[i].Name < tables[j].Name
	})
	return tables, nil
}

func (ts *TableService) CreateTable(req *structs.CreateTableRequest) (*structs.Table, error) {
	if req == nil || req.Name == "" {
		return nil, lib.Validationf("table name is required")
	}

	section := req.Section
	if section == "" {
		section = structs.SectionIndoor
	}

	table := structs.Table{
		Id:         uuid.New(),
		Name:       req.Name,
		Section:    section,
		IsOccupied: false,
		CreatedAt:  ts.now(),
	}

	err := ts.store.Update(func(doc *structs.Document) error {
		doc.Tables = append(doc.Tables, table)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ts.logger.Debug("Table created", gecho.Field("table_id", table.Id), gecho.Field("name", table.Name))
	return &table, nil
}

func (ts *TableService) UpdateTable(id uuid.UUID, req *structs.UpdateTableRequest) (*structs.Table, error) {
	var updated structs.Table

	err := ts.store.Update(func(doc *structs.Document) error {
		for i := range doc.Tables {
			if doc.Tables[i].Id != id {
				continue
			}
			if req.Name != nil {
				doc.Tables[i].Name = *req.Name
			}
			if req.Section != nil {
				doc.Tables[i].Section = *req.Section
			}
			if req.IsOccupied != nil {
				doc.Tables[i].IsOccupied = *req.IsOccupied
			}
			updated = doc.Tables[i]
			return nil
		}
		return lib.NotFoundf("table %s does not exist", id)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTable removes the table and cascades to every order referencing it,
// regardless of status, plus those orders' items. A destructive delete with
// no archival. Payments already recorded for those orders are retained.
func (ts *TableService) DeleteTable(id uuid.UUID) error {
	err := ts.store.Update(func(doc *structs.Document) error {
		tables := doc.Tables[:0]
		for _, t := range doc.Tables {
			if t.Id != id {
				tables = append(tables, t)
			}
		}
		doc.Tables = tables

		deletedOrders := map[uuid.UUID]bool{}
		orders := doc.Orders[:0]
		for _, o := range doc.Orders {
			if o.TableId == id {
				deletedOrders[o.Id] = true
				continue
			}
			orders = append(orders, o)
		}
		doc.Orders = orders

		items := doc.OrderItems[:0]
		for _, oi := range doc.OrderItems {
			if !deletedOrders[oi.OrderId] {
				items = append(items, oi)
			}
		}
		doc.OrderItems = items
		return nil
	})
	if err != nil {
		return err
	}

	ts.logger.Info("Table deleted with its orders", gecho.Field("table_id", id))
	return nil
}
