package structs

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Icon      string `json:"icon" validate:"omitempty,max=16"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon      *string `json:"icon,omitempty" validate:"omitempty,max=16"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}

type CreateProductRequest struct {
	CategoryId  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"omitempty,max=1000"`
	Ingredients string    `json:"ingredients" validate:"omitempty,max=1000"`
	Price       float64   `json:"price" validate:"gte=0"`
	ImageUrl    string    `json:"image_url" validate:"omitempty,max=500"`
	IsAvailable *bool     `json:"is_available,omitempty"`
	SortOrder   int       `json:"sort_order" validate:"gte=0"`
}

type UpdateProductRequest struct {
	CategoryId  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Ingredients *string    `json:"ingredients,omitempty" validate:"omitempty,max=1000"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageUrl    *string    `json:"image_url,omitempty" validate:"omitempty,max=500"`
	IsAvailable *bool      `json:"is_available,omitempty"`
	SortOrder   *int       `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}

type CreateTableRequest struct {
	Name    string       `json:"name" validate:"required,min=1,max=100"`
	Section TableSection `json:"section" validate:"omitempty,oneof=indoor garden"`
}

type UpdateTableRequest struct {
	Name    *string       `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Section *TableSection `json:"section,omitempty" validate:"omitempty,oneof=indoor garden"`
	// Manual occupancy override kept for the admin floor view; ledger
	// operations recompute it afterwards.
	IsOccupied *bool `json:"is_occupied,omitempty"`
}

type OrderItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	// Zero means unspecified and defaults to 1. Other values pass through.
	Quantity int    `json:"quantity"`
	Note     string `json:"note" validate:"omitempty,max=500"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type TransferOrdersRequest struct {
	FromTableId uuid.UUID `json:"from_table_id" validate:"required"`
	ToTableId   uuid.UUID `json:"to_table_id" validate:"required"`
}

type PaymentRequest struct {
	Method PaymentMethod `json:"method" validate:"required,oneof=cash card"`
	Amount float64       `json:"amount" validate:"gte=0"`
}

type CloseOrderRequest struct {
	Payments []PaymentRequest `json:"payments" validate:"required,min=1,dive"`
}
