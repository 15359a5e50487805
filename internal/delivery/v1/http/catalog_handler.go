package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type upsertProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Featured    bool   `json:"featured"`
}

type productResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Featured     bool   `json:"featured"`
	IsArchived   bool   `json:"is_archived"`
}

func newProductResponse(info *usecase.ProductInfo) productResponse {
	return productResponse{
		ID:           info.ID,
		Name:         info.Name,
		CategoryName: info.CategoryName,
		Price:        info.Price,
		Description:  info.Description,
		ImageURL:     info.ImageURL,
		Featured:     info.Featured,
		IsArchived:   info.IsArchived,
	}
}

func newProductListResponse(infos []usecase.ProductInfo) []productResponse {
	result := make([]productResponse, 0, len(infos))
	for i := range infos {
		result = append(result, newProductResponse(&infos[i]))
	}
	return result
}

// listProducts
//
//	@Summary	Каталог активных товаров
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	productResponse
//	@Router		/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListProducts(r.Context())
	if err != nil {
		h.logger.Warnf("list products failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductListResponse(products))
}

// getProduct
//
//	@Summary	Товар по ID
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	productResponse
//	@Failure	404			{object}	ErrorResponse	"Товар недоступен"
//	@Router		/products/{productID} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	info, err := h.catalogUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Warnf("get product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(info))
}

// upsertProduct
//
//	@Summary		Создание или обновление товара (администратор)
//	@Description	Товар идентифицируется по имени, категория создаётся при необходимости
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			body	body		upsertProductRequest	true	"Данные товара, цена строкой в рублях"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/admin/products [post]
func (h *CatalogHandler) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var req upsertProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("invalid price %q: %s", req.Price, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.UpsertProduct(r.Context(), &usecase.UpsertProductReq{
		Name:         req.Name,
		CategoryName: req.Category,
		Price:        priceCents,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
	})
	if err != nil {
		h.logger.Warnf("upsert product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"id":    product.ID,
		"name":  product.Name,
		"price": product.Price,
	})
}

// archiveProduct
//
//	@Summary		Архивирование товара (администратор)
//	@Description	Товар исчезает из каталога, но остаётся в истории заказов
//	@Tags			admin
//	@Produce		json
//	@Param			productID	path		int	true	"ID товара"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/products/{productID} [delete]
func (h *CatalogHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	if err := h.catalogUsecase.ArchiveProduct(r.Context(), productID); err != nil {
		h.logger.Warnf("archive product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"archived": productID})
}

// listAllProducts
//
//	@Summary	Все товары, включая архивные (администратор)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		productResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/products [get]
func (h *CatalogHandler) listAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListAllProducts(r.Context())
	if err != nil {
		h.logger.Warnf("list all products failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductListResponse(products))
}

// statistics
//
//	@Summary	Сводная статистика магазина (администратор)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/statistics [get]
func (h *CatalogHandler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalogUsecase.Statistics(r.Context())
	if err != nil {
		h.logger.Warnf("statistics failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":      stats.Products,
		"users":         stats.Users,
		"orders":        stats.Orders,
		"revenue_cents": stats.RevenueCents,
	})
}
