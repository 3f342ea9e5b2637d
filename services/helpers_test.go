package services

import (
	"cafeqr_server/database"
	"cafeqr_server/structs"
	"path/filepath"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.NewStore(filepath.Join(t.TempDir(), "data.json"), gecho.NewDefaultLogger())
	require.NoError(t, err)
	return store
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

func seedCategory(t *testing.T, store *database.Store, name string, sortOrder int) structs.Category {
	t.Helper()
	category := structs.Category{
		Id:        uuid.New(),
		Name:      name,
		Icon:      "🍽️",
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Update(func(doc *structs.Document) error {
		doc.Categories = append(doc.Categories, category)
		return nil
	}))
	return category
}

func seedProduct(t *testing.T, store *database.Store, categoryId uuid.UUID, name string, price float64) structs.Product {
	t.Helper()
	product := structs.Product{
		Id:          uuid.New(),
		CategoryId:  categoryId,
		Name:        name,
		Price:       price,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Update(func(doc *structs.Document) error {
		doc.Products = append(doc.Products, product)
		return nil
	}))
	return product
}

func seedTable(t *testing.T, store *database.Store, name string, section structs.TableSection) structs.Table {
	t.Helper()
	table := structs.Table{
		Id:        uuid.New(),
		Name:      name,
		Section:   section,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Update(func(doc *structs.Document) error {
		doc.Tables = append(doc.Tables, table)
		return nil
	}))
	return table
}

func seedPayment(t *testing.T, store *database.Store, tableId uuid.UUID, method structs.PaymentMethod, amount float64, createdAt time.Time) structs.Payment {
	t.Helper()
	payment := structs.Payment{
		Id:         uuid.New(),
		OrderId:    uuid.New(),
		TableId:    tableId,
		Method:     method,
		Amount:     amount,
		OrderTotal: amount,
		CreatedAt:  createdAt,
	}
	require.NoError(t, store.Update(func(doc *structs.Document) error {
		doc.Payments = append(doc.Payments, payment)
		return nil
	}))
	return payment
}

func getTable(t *testing.T, store *database.Store, id uuid.UUID) structs.Table {
	t.Helper()
	var table structs.Table
	found := false
	require.NoError(t, store.View(func(doc *structs.Document) error {
		for _, tbl := range doc.Tables {
			if tbl.Id == id {
				table = tbl
				found = true
			}
		}
		return nil
	}))
	require.True(t, found, "table %s not found", id)
	return table
}
