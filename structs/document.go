package structs

import (
	"time"

	"github.com/google/uuid"
)

type TableSection string

const (
	SectionIndoor TableSection = "indoor"
	SectionGarden TableSection = "garden"
)

type OrderStatus string

const (
	OrderStatusActive OrderStatus = "active"
	OrderStatusClosed OrderStatus = "closed"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

type Category struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	Id          uuid.UUID `json:"id"`
	CategoryId  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Price       float64   `json:"price"`
	ImageUrl    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Table struct {
	Id        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Section   TableSection `json:"section"`
	// Derived from order state: true iff the table has at least one active order.
	IsOccupied bool      `json:"is_occupied"`
	CreatedAt  time.Time `json:"created_at"`
}

type Order struct {
	Id        uuid.UUID   `json:"id"`
	TableId   uuid.UUID   `json:"table_id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	ClosedAt  *time.Time  `json:"closed_at,omitempty"`
}

type OrderItem struct {
	Id        uuid.UUID `json:"id"`
	OrderId   uuid.UUID `json:"order_id"`
	ProductId uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// Payment is an append-only settlement record. A split settlement produces one
// row per payment, each stamped with the full computed order total as a
// cross-check field (order_total is not that payment's share).
type Payment struct {
	Id         uuid.UUID     `json:"id"`
	OrderId    uuid.UUID     `json:"order_id"`
	TableId    uuid.UUID     `json:"table_id"`
	Method     PaymentMethod `json:"method"`
	Amount     float64       `json:"amount"`
	OrderTotal float64       `json:"order_total"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Document is the entire persisted dataset. It is loaded and saved whole;
// there are no partial reads or writes.
type Document struct {
	Categories []Category  `json:"categories"`
	Products   []Product   `json:"products"`
	Tables     []Table     `json:"tables"`
	Orders     []Order     `json:"orders"`
	OrderItems []OrderItem `json:"orderItems"`
	Payments   []Payment   `json:"payments"`
}

// NewDocument returns an empty document with every collection present.
func NewDocument() *Document {
	return &Document{
		Categories: []Category{},
		Products:   []Product{},
		Tables:     []Table{},
		Orders:     []Order{},
		OrderItems: []OrderItem{},
		Payments:   []Payment{},
	}
}
