package orders

import (
	"cafeqr_server/handling"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) ListActiveOrders(w http.ResponseWriter, r *http.Request) {
	tableId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	orders, err := orm.orderService.ListActiveOrders(tableId)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Failed to list active orders")
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	tableId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		handling.RespondBadBody(w, orm.logger, err)
		return
	}

	orderId, err := orm.orderService.CreateOrder(tableId, body)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Failed to create order")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(map[string]any{"orderId": orderId}),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) TransferOrders(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TransferOrdersRequest](r)
	if err != nil {
		handling.RespondBadBody(w, orm.logger, err)
		return
	}

	result, err := orm.orderService.TransferOrders(body)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Failed to transfer orders")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Orders transferred"),
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) GetOrderTotal(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	total, err := orm.orderService.OrderTotal(orderId)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Failed to compute order total")
		return
	}

	gecho.Success(w,
		gecho.WithData(total),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) CloseOrder(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CloseOrderRequest](r)
	if err != nil {
		handling.RespondBadBody(w, orm.logger, err)
		return
	}

	if err := orm.orderService.CloseOrder(orderId, body); err != nil {
		handling.RespondError(w, orm.logger, err, "Failed to close order")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order closed and payment recorded"),
		gecho.Send(),
	)
}
