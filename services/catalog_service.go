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

// CatalogService manages the reference data the ledger prices against:
// categories and the products grouped under them.
type CatalogService struct {
	logger *gecho.Logger
	store  *database.Store
	now    func() time.Time
}

func NewCatalogService(logger *gecho.Logger, store *database.Store) *CatalogService {
	return &CatalogService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// MenuCategory is a category with its available products, as served to
// QR-code customers.
type MenuCategory struct {
	structs.Category
	Products []structs.Product `json:"products"`
}

func (cs *CatalogService) ListCategories() ([]structs.Category, error) {
	var categories []structs.Category

	err := cs.store.View(func(doc *structs.Document) error {
		categories = append([]structs.Category{}, doc.Categories...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortBySortOrder(categories, func(c structs.Category) int { return c.SortOrder })
	return categories, nil
}

func (cs *CatalogService) CreateCategory(req *structs.CreateCategoryRequest) (*structs.Category, error) {
	if req == nil || req.Name == "" {
		return nil, lib.Validationf("category name is required")
	}

	icon := req.Icon
	if icon == "" {
		icon = "🍽️"
	}

	category := structs.Category{
		Id:        uuid.New(),
		Name:      req.Name,
		Icon:      icon,
		SortOrder: req.SortOrder,
		CreatedAt: cs.now(),
	}

	err := cs.store.Update(func(doc *structs.Document) error {
		doc.Categories = append(doc.Categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cs.logger.Debug("Category created", gecho.Field("category_id", category.Id), gecho.Field("name", category.Name))
	return &category, nil
}

func (cs *CatalogService) UpdateCategory(id uuid.UUID, req *structs.UpdateCategoryRequest) (*structs.Category, error) {
	var updated structs.Category

	err := cs.store.Update(func(doc *structs.Document) error {
		for i := range doc.Categories {
			if doc.Categories[i].Id != id {
				continue
			}
			if req.Name != nil {
				doc.Categories[i].Name = *req.Name
			}
			if req.Icon != nil {
				doc.Categories[i].Icon = *req.Icon
			}
			if req.SortOrder != nil {
				doc.Categories[i].SortOrder = *req.SortOrder
			}
			updated = doc.Categories[i]
			return nil
		}
		return lib.NotFoundf("category %s does not exist", id)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCategory removes the category and cascades the delete to every
// product referencing it, in the same save cycle.
func (cs *CatalogService) DeleteCategory(id uuid.UUID) error {
	err := cs.store.Update(func(doc *structs.Document) error {
		found := false
		categories := doc.Categories[:0]
		for _, c := range doc.Categories {
			if c.Id == id {
				found = true
				continue
			}
			categories = append(categories, c)
		}
		if !found {
			return lib.NotFoundf("category %s does not exist", id)
		}
		doc.Categories = categories

		products := doc.Products[:0]
		for _, p := range doc.Products {
			if p.CategoryId != id {
				products = append(products, p)
			}
		}
		doc.Products = products
		return nil
	})
	if err != nil {
		return err
	}

	cs.logger.Info("Category deleted with its products", gecho.Field("category_id", id))
	return nil
}

// ListProducts returns products sorted by sort_order, optionally filtered to
// one category.
func (cs *CatalogService) ListProducts(categoryId *uuid.UUID) ([]structs.Product, error) {
	products := []structs.Product{}

	err := cs.store.View(func(doc *structs.Document) error {
		for _, p := range doc.Products {
			if categoryId != nil && p.CategoryId != *categoryId {
				continue
			}
			products = append(products, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortBySortOrder(products, func(p structs.Product) int { return p.SortOrder })
	return products, nil
}

func (cs *CatalogService) CreateProduct(req *structs.CreateProductRequest) (*structs.Product, error) {
	if req == nil || req.Name == "" || req.CategoryId == uuid.Nil {
		return nil, lib.Validationf("category and product name are required")
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	product := structs.Product{
		Id:          uuid.New(),
		CategoryId:  req.CategoryId,
		Name:        req.Name,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Price:       req.Price,
		ImageUrl:    req.ImageUrl,
		IsAvailable: isAvailable,
		SortOrder:   req.SortOrder,
		CreatedAt:   cs.now(),
	}

	err := cs.store.Update(func(doc *structs.Document) error {
		doc.Products = append(doc.Products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cs.logger.Debug("Product created", gecho.Field("product_id", product.Id), gecho.Field("name", product.Name))
	return &product, nil
}

func (cs *CatalogService) UpdateProduct(id uuid.UUID, req *structs.UpdateProductRequest) (*structs.Product, error) {
	var updated structs.Product

	err := cs.store.Update(func(doc *structs.Document) error {
		for i := range doc.Products {
			if doc.Products[i].Id != id {
				continue
			}
			p := &doc.Products[i]
			if req.CategoryId != nil {
				p.CategoryId = *req.CategoryId
			}
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
			if req.Ingredients != nil {
				p.Ingredients = *req.Ingredients
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.ImageUrl != nil {
				p.ImageUrl = *req.ImageUrl
			}
			if req.IsAvailable != nil {
				p.IsAvailable = *req.IsAvailable
			}
			if req.SortOrder != nil {
				p.SortOrder = *req.SortOrder
			}
			updated = *p
			return nil
		}
		return lib.NotFoundf("product %s does not exist", id)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteProduct filters the product out. Deleting an unknown id is a no-op;
// historical order items referencing it resolve to the "Unknown" sentinel.
func (cs *CatalogService) DeleteProduct(id uuid.UUID) error {
	return cs.store.Update(func(doc *structs.Document) error {
		products := doc.Products[:0]
		for _, p := range doc.Products {
			if p.Id != id {
				products = append(products, p)
			}
		}
		doc.Products = products
		return nil
	})
}

// ListMenu returns every category in sort order, each carrying only its
// available products. Categories are never hidden, only their products
// filtered, so an empty category shows up with an empty product list.
func (cs *CatalogService) ListMenu() ([]MenuCategory, error) {
	menu := []MenuCategory{}

	err := cs.store.View(func(doc *structs.Document) error {
		categories := append([]structs.Category{}, doc.Categories...)
		sortBySortOrder(categories, func(c structs.Category) int { return c.SortOrder })

		available := []structs.Product{}
		for _, p := range doc.Products {
			if p.IsAvailable {
				available = append(available, p)
			}
		}
		sortBySortOrder(available, func(p structs.Product) int { return p.SortOrder })

		for _, cat := range categories {
			entry := MenuCategory{Category: cat, Products: []structs.Product{}}
			for _, p := range available {
				if p.CategoryId == cat.Id {
					entry.Products = append(entry.Products, p)
				}
			}
			menu = append(menu, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return menu, nil
}

// sortBySortOrder sorts stably so records sharing a sort_order keep their
// insertion order.
func sortBySortOrder[T any](items []T, key func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
