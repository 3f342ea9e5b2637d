// Command seed overwrites the document store with a sample café dataset:
// four menu categories, a product range and a floor of indoor and garden
// tables. Meant for demos and local development.
package main

import (
	"cafeqr_server/config"
	"cafeqr_server/database"
	"cafeqr_server/structs"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type seedProduct struct {
	category    int
	name        string
	description string
	ingredients string
	price       float64
}

func main() {
	_ = godotenv.Load()

	cfg := config.GetConfig()
	logger := config.InitializeLogger()

	store, err := database.NewStore(cfg.Store.Path, logger)
	if err != nil {
		logger.Fatal("Failed to open document store", gecho.Field("error", err))
	}

	now := time.Now()

	categories := []structs.Category{
		{Id: uuid.New(), Name: "Food", Icon: "🍔", SortOrder: 1, CreatedAt: now},
		{Id: uuid.New(), Name: "Hot Drinks", Icon: "☕", SortOrder: 2, CreatedAt: now},
		{Id: uuid.New(), Name: "Cold Drinks", Icon: "🥤", SortOrder: 3, CreatedAt: now},
		{Id: uuid.New(), Name: "Desserts", Icon: "🍰", SortOrder: 4, CreatedAt: now},
	}

	seedProducts := []seedProduct{
		{0, "Classic Burger", "Beef burger with house sauce and fresh vegetables", "Beef patty, lettuce, tomato, onion, house sauce, sesame bun", 180},
		{0, "Chicken Wrap", "Grilled chicken wrap with fresh vegetables", "Chicken breast, flatbread, lettuce, tomato, ranch sauce", 150},
		{0, "Grilled Cheese Toast", "Loaded toast with melted cheese", "Cheddar, cured sausage, tomato, greens, toast bread", 90},
		{0, "Caesar Salad", "Crunchy croutons and parmesan shavings", "Lettuce, croutons, parmesan, caesar dressing, chicken", 120},
		{0, "French Fries", "Crispy fries with house seasoning", "Potatoes, salt, house spice mix", 60},
		{1, "Turkish Coffee", "Traditional pot-brewed coffee", "Ground coffee, water", 50},
		{1, "Latte", "Espresso with steamed milk", "Espresso, milk, milk foam", 75},
		{1, "Americano", "Espresso topped with hot water", "Espresso, hot water", 65},
		{1, "Tea", "Freshly brewed black tea", "Black tea", 25},
		{1, "Hot Chocolate", "With whipped cream", "Chocolate, milk, whipped cream", 70},
		{2, "Cola", "330ml can", "", 40},
		{2, "Orange Soda", "330ml can", "", 40},
		{2, "Lemon Soda", "330ml can", "", 40},
		{2, "Sparkling Water", "Plain or flavored", "", 30},
		{2, "Ayran", "Fresh yogurt drink", "Yogurt, water, salt", 25},
		{3, "Cheesecake", "New York style", "Cream cheese, biscuit base, vanilla", 90},
		{3, "Brownie", "Served warm with ice cream", "Chocolate, flour, eggs, butter", 85},
		{3, "Tiramisu", "The Italian classic", "Mascarpone, espresso, ladyfingers, cocoa", 95},
	}

	products := make([]structs.Product, 0, len(seedProducts))
	for i, sp := range seedProducts {
		products = append(products, structs.Product{
			Id:          uuid.New(),
			CategoryId:  categories[sp.category].Id,
			Name:        sp.name,
			Description: sp.description,
			Ingredients: sp.ingredients,
			Price:       sp.price,
			IsAvailable: true,
			SortOrder:   i,
			CreatedAt:   now,
		})
	}

	tables := []structs.Table{}
	for i := 1; i <= 5; i++ {
		tables = append(tables, structs.Table{
			Id:        uuid.New(),
			Name:      fmt.Sprintf("Table %d", i),
			Section:   structs.SectionIndoor,
			CreatedAt: now,
		})
	}
	for i := 1; i <= 4; i++ {
		tables = append(tables, structs.Table{
			Id:        uuid.New(),
			Name:      fmt.Sprintf("Garden %d", i),
			Section:   structs.SectionGarden,
			CreatedAt: now,
		})
	}

	err = store.Update(func(doc *structs.Document) error {
		*doc = *structs.NewDocument()
		doc.Categories = categories
		doc.Products = products
		doc.Tables = tables
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to seed document store", gecho.Field("error", err))
	}

	logger.Info("Seeded document store",
		gecho.Field("path", cfg.Store.Path),
		gecho.Field("categories", len(categories)),
		gecho.Field("products", len(products)),
		gecho.Field("tables", len(tables)),
	)
}
