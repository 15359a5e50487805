package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	TrackingRef string `json:"tracking_ref"`
}

type orderLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	UserID      int64               `json:"user_id"`
	Lines       []orderLineResponse `json:"lines"`
	Subtotal    int64               `json:"subtotal"`
	Shipping    int64               `json:"shipping"`
	Tax         int64               `json:"tax"`
	Total       int64               `json:"total"`
	Status      string              `json:"status"`
	TrackingRef string              `json:"tracking_ref,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newOrderResponse(order *domain.Order) *orderResponse {
	lines := make([]orderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &orderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Lines:       lines,
		Subtotal:    order.Subtotal,
		Shipping:    order.Shipping,
		Tax:         order.Tax,
		Total:       order.Total,
		Status:      string(order.Status),
		TrackingRef: order.TrackingRef,
		CreatedAt:   order.CreatedAt,
	}
}

func newOrderListResponse(orders []domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *newOrderResponse(&orders[i]))
	}
	return result
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Превращает корзину в заказ с фиксацией цен, очищает корзину
//	@Tags			orders
//	@Produce		json
//	@Success		201	{object}	orderResponse
//	@Failure		422	{object}	ErrorResponse	"Пустая корзина или недоступные товары"
//	@Router			/orders [post]
func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	order, err := h.orderUsecase.Checkout(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Warnf("checkout failed for user %d: %s", claims.UserID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(order))
}

// listOrders
//
//	@Summary	Заказы текущего пользователя
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		orderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	orders, err := h.orderUsecase.ListOrders(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Warnf("list orders failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderListResponse(orders))
}

// getOrder
//
//	@Summary		Заказ по ID
//	@Description	Возвращает заказ только его владельцу
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		string	true	"ID заказа"
//	@Success		200		{object}	orderResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{orderID} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderUsecase.GetOrder(r.Context(), claims.UserID, orderID)
	if err != nil {
		h.logger.Warnf("get order failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}

// listAllOrders
//
//	@Summary	Все заказы (администратор)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		orderResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/orders [get]
func (h *OrderHandler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.ListAllOrders(r.Context())
	if err != nil {
		h.logger.Warnf("list all orders failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderListResponse(orders))
}

// updateStatus
//
//	@Summary		Смена статуса заказа (администратор)
//	@Description	Статус движется только вперёд на один шаг
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string				true	"ID заказа"
//	@Param			body	body		updateStatusRequest	true	"Новый статус"
//	@Success		200		{object}	orderResponse
//	@Failure		409		{object}	ErrorResponse	"Недопустимый переход"
//	@Router			/admin/orders/{orderID}/status [patch]
func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderUsecase.UpdateOrderStatus(r.Context(),
		usecase.NewUpdateOrderStatusReq(orderID, domain.OrderStatus(req.Status), req.TrackingRef))
	if err != nil {
		h.logger.Warnf("update order status failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}
