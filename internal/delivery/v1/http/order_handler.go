package http

import (
	"net/http"

	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ, атомарно списывая остатки по всем позициям
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Корзина и данные покупателя"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := validateCustomerFields(&req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), toCreateOrderReq(&req))
	if err != nil {
		o.logger.Warnf("create order failed: %v", err)
		WriteError(w, err)
		return
	}

	o.logger.Infof("order %s created, total %d", order.ID, order.TotalAmount)
	WriteSuccess(w, http.StatusCreated, toOrderResponse(order, nil))
}

// listOrders
//
//	@Summary		Список заказов
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		OrderResponse
//	@Router			/admin/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("list orders failed: %v", err)
		WriteError(w, err)
		return
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order, nil))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// getOrder
//
//	@Summary		Заказ с позициями
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID заказа (UUID)"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/admin/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Debugf("get order %s failed: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(result.Order, result.Items))
}

// updateOrderStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Допускаются только переходы вперёд по жизненному циклу заказа
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"ID заказа (UUID)"
//	@Param			request	body		UpdateOrderStatusRequest	true	"Новый статус"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/admin/orders/{id} [put]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseOrderID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.SetOrderStatus(r.Context(), usecase.NewSetOrderStatusReq(id, req.Status))
	if err != nil {
		o.logger.Warnf("update status of order %s failed: %v", id, err)
		WriteError(w, err)
		return
	}

	o.logger.Infof("order %s status changed to %s", order.ID, order.Status)
	WriteSuccess(w, http.StatusOK, toOrderResponse(order, nil))
}

func validateCustomerFields(req *CreateOrderRequest) error {
	required := []struct {
		value string
		field string
	}{
		{req.CustomerName, "Customer name"},
		{req.CustomerEmail, "Customer email"},
		{req.CustomerPhone, "Customer phone"},
		{req.DeliveryAddress, "Delivery address"},
		{req.DeliveryCity, "Delivery city"},
	}

	for _, f := range required {
		if f.value == "" {
			return e.Validationf("%s is required", f.field)
		}
	}

	return nil
}

func parseOrderID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", e.ErrOrderNotFound
	}
	return id, nil
}
