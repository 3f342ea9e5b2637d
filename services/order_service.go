package services

import (
	"cafeqr_server/database"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService is the ledger: it keeps tables, active orders, order items and
// payments mutually consistent. Every mutation runs inside a single store
// Update cycle.
type OrderService struct {
	logger *gecho.Logger
	store  *database.Store
	now    func() time.Time
}

func NewOrderService(logger *gecho.Logger, store *database.Store) *OrderService {
	return &OrderService{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// OrderItemView is an order item resolved against the live catalog. Items
// whose product has been deleted resolve to the "Unknown" sentinel with price
// zero rather than being dropped.
type OrderItemView struct {
	structs.OrderItem
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

type OrderView struct {
	structs.Order
	Items []OrderItemView `json:"items"`
}

type OrderTotalResult struct {
	OrderId uuid.UUID       `json:"order_id"`
	Items   []OrderItemView `json:"items"`
	Total   float64         `json:"total"`
}

type TransferResult struct {
	Transferred int `json:"transferred"`
}

// ListActiveOrders returns every active order on the table with its items
// resolved against current product names and prices.
func (os *OrderService) ListActiveOrders(tableId uuid.UUID) ([]OrderView, error) {
	result := []OrderView{}

	err := os.store.View(func(doc *structs.Document) error {
		for _, order := range doc.Orders {
			if order.TableId != tableId || order.Status != structs.OrderStatusActive {
				continue
			}
			result = append(result, OrderView{
				Order: order,
				Items: resolveOrderItems(doc, order.Id),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CreateOrder opens a new active order on the table with one item per request
// entry and marks the table occupied.
func (os *OrderService) CreateOrder(tableId uuid.UUID, req *structs.CreateOrderRequest) (uuid.UUID, error) {
	if req == nil || len(req.Items) == 0 {
		return uuid.Nil, lib.Validationf("order items are required")
	}

	orderId := uuid.New()
	now := os.now()

	err := os.store.Update(func(doc *structs.Document) error {
		if findTable(doc, tableId) == nil {
			return lib.NotFoundf("table %s does not exist", tableId)
		}

		doc.Orders = append(doc.Orders, structs.Order{
			Id:        orderId,
			TableId:   tableId,
			Status:    structs.OrderStatusActive,
			CreatedAt: now,
		})

		for _, item := range req.Items {
			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}
			doc.OrderItems = append(doc.OrderItems, structs.OrderItem{
				Id:        uuid.New(),
				OrderId:   orderId,
				ProductId: item.ProductId,
				Quantity:  quantity,
				Note:      item.Note,
				CreatedAt: now,
			})
		}

		setTableOccupied(doc, tableId, true)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	os.logger.Debug("Order created",
		gecho.Field("order_id", orderId),
		gecho.Field("table_id", tableId),
		gecho.Field("items", len(req.Items)),
	)
	return orderId, nil
}

// TransferOrders re-points every active order from the source table to the
// destination in place: same order identities, same items. The source is
// marked unoccupied unconditionally, valid only because the precondition
// guarantees all of its active orders were just moved. A future partial
// transfer would break this shortcut.
func (os *OrderService) TransferOrders(req *structs.TransferOrdersRequest) (*TransferResult, error) {
	if req == nil || req.FromTableId == uuid.Nil || req.ToTableId == uuid.Nil {
		return nil, lib.Validationf("source and destination tables are required")
	}

	result := &TransferResult{}

	err := os.store.Update(func(doc *structs.Document) error {
		moved := 0
		for i := range doc.Orders {
			if doc.Orders[i].TableId == req.FromTableId && doc.Orders[i].Status == structs.OrderStatusActive {
				doc.Orders[i].TableId = req.ToTableId
				moved++
			}
		}
		if moved == 0 {
			return lib.NotFoundf("no active orders on source table")
		}

		setTableOccupied(doc, req.FromTableId, false)
		setTableOccupied(doc, req.ToTableId, true)

		result.Transferred = moved
		return nil
	})
	if err != nil {
		return nil, err
	}

	os.logger.Info("Orders transferred",
		gecho.Field("from_table_id", req.FromTableId),
		gecho.Field("to_table_id", req.ToTableId),
		gecho.Field("count", result.Transferred),
	)
	return result, nil
}

// OrderTotal resolves the order's items against live catalog prices and
// returns the per-item breakdown and the rounded sum.
func (os *OrderService) OrderTotal(orderId uuid.UUID) (*OrderTotalResult, error) {
	result := &OrderTotalResult{OrderId: orderId}

	err := os.store.View(func(doc *structs.Document) error {
		if findOrder(doc, orderId) == nil {
			return lib.NotFoundf("order %s does not exist", orderId)
		}
		result.Items = resolveOrderItems(doc, orderId)
		result.Total = sumItems(result.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CloseOrder settles an order against one or more payments. The order total
// is computed from live item and price resolution, never from caller-supplied
// amounts, and every payment row is stamped with that same total. Closing is
// terminal: a second close fails without touching the payment collection.
func (os *OrderService) CloseOrder(orderId uuid.UUID, req *structs.CloseOrderRequest) error {
	if req == nil || len(req.Payments) == 0 {
		return lib.Validationf("payment information is required")
	}

	now := os.now()

	err := os.store.Update(func(doc *structs.Document) error {
		order := findOrder(doc, orderId)
		if order == nil {
			return lib.NotFoundf("order %s does not exist", orderId)
		}
		if order.Status == structs.OrderStatusClosed {
			return lib.Validationf("order is already closed")
		}

		orderTotal := sumItems(resolveOrderItems(doc, orderId))

		closedAt := now
		order.Status = structs.OrderStatusClosed
		order.ClosedAt = &closedAt

		for _, pay := range req.Payments {
			doc.Payments = append(doc.Payments, structs.Payment{
				Id:         uuid.New(),
				OrderId:    orderId,
				TableId:    order.TableId,
				Method:     pay.Method,
				Amount:     pay.Amount,
				OrderTotal: orderTotal,
				CreatedAt:  now,
			})
		}

		// Clear occupancy only when no other active order remains.
		remaining := false
		for _, o := range doc.Orders {
			if o.TableId == order.TableId && o.Status == structs.OrderStatusActive {
				remaining = true
				break
			}
		}
		if !remaining {
			setTableOccupied(doc, order.TableId, false)
		}

		return nil
	})
	if err != nil {
		return err
	}

	os.logger.Info("Order closed",
		gecho.Field("order_id", orderId),
		gecho.Field("payments", len(req.Payments)),
	)
	return nil
}

func resolveOrderItems(doc *structs.Document, orderId uuid.UUID) []OrderItemView {
	items := []OrderItemView{}
	for _, item := range doc.OrderItems {
		if item.OrderId != orderId {
			continue
		}
		view := OrderItemView{
			OrderItem:    item,
			ProductName:  "Unknown",
			ProductPrice: 0,
		}
		for i := range doc.Products {
			if doc.Products[i].Id == item.ProductId {
				view.ProductName = doc.Products[i].Name
				view.ProductPrice = doc.Products[i].Price
				break
			}
		}
		items = append(items, view)
	}
	return items
}

func sumItems(items []OrderItemView) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.ProductPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}

func findOrder(doc *structs.Document, id uuid.UUID) *structs.Order {
	for i := range doc.Orders {
		if doc.Orders[i].Id == id {
			return &doc.Orders[i]
		}
	}
	return nil
}

func findTable(doc *structs.Document, id uuid.UUID) *structs.Table {
	for i := range doc.Tables {
		if doc.Tables[i].Id == id {
			return &doc.Tables[i]
		}
	}
	return nil
}

func setTableOccupied(doc *structs.Document, tableId uuid.UUID, occupied bool) {
	if table := findTable(doc, tableId); table != nil {
		table.IsOccupied = occupied
	}
}
