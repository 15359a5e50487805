package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type cartLineResponse struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int64  `json:"quantity"`
	LineTotal    int64  `json:"line_total"`
	Available    bool   `json:"available"`
}

type cartResponse struct {
	UserID    int64              `json:"user_id"`
	Lines     []cartLineResponse `json:"lines"`
	Subtotal  int64              `json:"subtotal"`
	Shipping  int64              `json:"shipping"`
	Tax       int64              `json:"tax"`
	Total     int64              `json:"total"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func newCartResponse(res *usecase.CartRes) *cartResponse {
	lines := make([]cartLineResponse, 0, len(res.Lines))
	for _, line := range res.Lines {
		lines = append(lines, cartLineResponse{
			ProductID:    line.ProductID,
			Name:         line.Name,
			CategoryName: line.CategoryName,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
			LineTotal:    line.LineTotal,
			Available:    line.Available,
		})
	}

	return &cartResponse{
		UserID:    res.UserID,
		Lines:     lines,
		Subtotal:  res.Totals.Subtotal,
		Shipping:  res.Totals.Shipping,
		Tax:       res.Totals.Tax,
		Total:     res.Totals.Total,
		UpdatedAt: res.UpdatedAt,
	}
}

// getCart
//
//	@Summary		Корзина текущего пользователя
//	@Description	Возвращает строки корзины с актуальными ценами и итогами
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	cartResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	res, err := h.cartUsecase.GetCart(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Warnf("get cart failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление того же товара увеличивает количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		addItemRequest	true	"Товар и количество"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар недоступен"
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.cartUsecase.AddItem(r.Context(), usecase.NewAddItemReq(claims.UserID, req.ProductID, req.Quantity))
	if err != nil {
		h.logger.Warnf("add item failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// setQuantity
//
//	@Summary		Установка количества товара
//	@Description	Задаёт точное количество, ноль удаляет строку из корзины
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int					true	"ID товара"
//	@Param			body		body		setQuantityRequest	true	"Количество"
//	@Success		200			{object}	cartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/items/{productID} [put]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.cartUsecase.SetQuantity(r.Context(), usecase.NewSetQuantityReq(claims.UserID, productID, req.Quantity))
	if err != nil {
		h.logger.Warnf("set quantity failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

// removeItem
//
//	@Summary		Удаление товара из корзины
//	@Description	Удаление отсутствующей строки не считается ошибкой
//	@Tags			cart
//	@Produce		json
//	@Param			productID	path		int	true	"ID товара"
//	@Success		200			{object}	cartResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/cart/items/{productID} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	res, err := h.cartUsecase.RemoveItem(r.Context(), claims.UserID, productID)
	if err != nil {
		h.logger.Warnf("remove item failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(res))
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
