package services

import (
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDefaults(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	category, err := svc.CreateCategory(&structs.CreateCategoryRequest{Name: "Drinks", SortOrder: 3})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.Id)
	assert.Equal(t, "🍽️", category.Icon, "missing icon falls back to the default")
	assert.Equal(t, 3, category.SortOrder)
	assert.False(t, category.CreatedAt.IsZero())

	_, err = svc.CreateCategory(&structs.CreateCategoryRequest{})
	require.Error(t, err)
	assert.True(t, lib.IsValidation(err))
}

func TestListCategoriesSortedStably(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	seedCategory(t, store, "Desserts", 2)
	seedCategory(t, store, "Food", 1)
	seedCategory(t, store, "Drinks", 1)

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Food", categories[0].Name, "ties keep insertion order")
	assert.Equal(t, "Drinks", categories[1].Name)
	assert.Equal(t, "Desserts", categories[2].Name)
}

func TestUpdateCategoryPartial(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)
	category := seedCategory(t, store, "Drinks", 1)

	newName := "Beverages"
	updated, err := svc.UpdateCategory(category.Id, &structs.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, category.Icon, updated.Icon, "omitted fields stay untouched")
	assert.Equal(t, 1, updated.SortOrder)

	_, err = svc.UpdateCategory(uuid.New(), &structs.UpdateCategoryRequest{Name: &newName})
	require.Error(t, err)
	assert.True(t, lib.IsNotFound(err))
}

func TestDeleteCategoryCascadesToItsProductsOnly(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	drinks := seedCategory(t, store, "Drinks", 1)
	food := seedCategory(t, store, "Food", 2)
	seedProduct(t, store, drinks.Id, "Latte", 75)
	seedProduct(t, store, drinks.Id, "Tea", 25)
	burger := seedProduct(t, store, food.Id, "Burger", 180)

	require.NoError(t, svc.DeleteCategory(drinks.Id))

	require.NoError(t, store.View(func(doc *structs.Document) error {
		require.Len(t, doc.Categories, 1)
		assert.Equal(t, food.Id, doc.Categories[0].Id)
		require.Len(t, doc.Products, 1)
		assert.Equal(t, burger.Id, doc.Products[0].Id)
		return nil
	}))

	err := svc.DeleteCategory(drinks.Id)
	require.Error(t, err)
	assert.True(t, lib.IsNotFound(err))
}

func TestListProductsFilterByCategory(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	drinks := seedCategory(t, store, "Drinks", 1)
	food := seedCategory(t, store, "Food", 2)
	seedProduct(t, store, drinks.Id, "Latte", 75)
	seedProduct(t, store, food.Id, "Burger", 180)

	all, err := svc.ListProducts(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListProducts(&drinks.Id)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Latte", filtered[0].Name)

	unknown := uuid.New()
	none, err := svc.ListProducts(&unknown)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateProductDefaultsToAvailable(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)
	drinks := seedCategory(t, store, "Drinks", 1)

	product, err := svc.CreateProduct(&structs.CreateProductRequest{
		CategoryId: drinks.Id,
		Name:       "Latte",
		Price:      75,
	})
	require.NoError(t, err)
	assert.True(t, product.IsAvailable)

	unavailable := false
	product, err = svc.CreateProduct(&structs.CreateProductRequest{
		CategoryId:  drinks.Id,
		Name:        "Seasonal Special",
		Price:       90,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, product.IsAvailable)

	_, err = svc.CreateProduct(&structs.CreateProductRequest{Name: "orphan"})
	require.Error(t, err)
	assert.True(t, lib.IsValidation(err))
}

func TestUpdateProductUnknownId(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	price := 50.0
	_, err := svc.UpdateProduct(uuid.New(), &structs.UpdateProductRequest{Price: &price})
	require.Error(t, err)
	assert.True(t, lib.IsNotFound(err))
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)
	drinks := seedCategory(t, store, "Drinks", 1)
	latte := seedProduct(t, store, drinks.Id, "Latte", 75)

	require.NoError(t, svc.DeleteProduct(latte.Id))
	require.NoError(t, svc.DeleteProduct(latte.Id), "deleting an unknown product is a no-op")
	require.NoError(t, svc.DeleteProduct(uuid.New()))
}

func TestListMenuGroupsAvailableProducts(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(testLogger(), store)

	food := seedCategory(t, store, "Food", 2)
	drinks := seedCategory(t, store, "Drinks", 1)
	empty := seedCategory(t, store, "Coming Soon", 3)

	seedProduct(t, store, drinks.Id, "Latte", 75)
	hidden := seedProduct(t, store, drinks.Id, "Winter Punch", 60)
	seedProduct(t, store, food.Id, "Burger", 180)

	catalogSvc := NewCatalogService(testLogger(), store)
	off := false
	_, err := catalogSvc.UpdateProduct(hidden.Id, &structs.UpdateProductRequest{IsAvailable: &off})
	require.NoError(t, err)

	menu, err := svc.ListMenu()
	require.NoError(t, err)
	require.Len(t, menu, 3)

	assert.Equal(t, "Drinks", menu[0].Name)
	require.Len(t, menu[0].Products, 1, "unavailable products are filtered out")
	assert.Equal(t, "Latte", menu[0].Products[0].Name)

	assert.Equal(t, "Food", menu[1].Name)
	assert.Len(t, menu[1].Products, 1)

	assert.Equal(t, empty.Id, menu[2].Id)
	assert.Equal(t, "Coming Soon", menu[2].Name)
	assert.NotNil(t, menu[2].Products)
	assert.Empty(t, menu[2].Products, "empty categories stay on the menu")
}
