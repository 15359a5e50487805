package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину.
type AddItemReq struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// SetQuantityReq — запрос на установку точного количества товара в корзине.
// Количество меньше либо равное нулю означает удаление строки.
type SetQuantityReq struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// CartLineView — строка корзины, дополненная актуальными данными каталога
// на момент чтения. Снимок в заказе формируется отдельно при оформлении.
type CartLineView struct {
	ProductID    int64
	Name         string
	CategoryName string
	UnitPrice    int64
	Quantity     int64
	LineTotal    int64
	Available    bool
}

// Totals — итоги корзины в копейках. Каждое поле хранится независимо,
// total всегда равен сумме остальных трёх.
type Totals struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Total    int64
}

// CartRes — корзина с разрешёнными строками и итогами для отображения.
type CartRes struct {
	UserID    int64
	Lines     []CartLineView
	Totals    Totals
	UpdatedAt time.Time
}

// ORDER USECASE

// UpdateOrderStatusReq — административный запрос на смену статуса заказа.
type UpdateOrderStatusReq struct {
	OrderID     string
	Status      domain.OrderStatus
	TrackingRef string
}

// AUTH USECASE

// RegisterReq — запрос на регистрацию пользователя.
type RegisterReq struct {
	Email    string
	Password string
}

// LoginReq — запрос на вход.
type LoginReq struct {
	Email    string
	Password string
}

// AuthRes — результат регистрации или входа.
type AuthRes struct {
	UserID  int64
	Email   string
	IsAdmin bool
	Token   string
}

// TokenClaims — данные, извлечённые из проверенного токена сессии.
type TokenClaims struct {
	UserID  int64
	IsAdmin bool
}

// UserInfo — данные пользователя для административного списка.
// Хэш пароля за пределы usecase-слоя не выходит.
type UserInfo struct {
	ID        int64
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}

// CATALOG USECASE

// UpsertProductReq — административный запрос на создание или обновление товара.
type UpsertProductReq struct {
	Name         string
	CategoryName string
	Price        int64
	Description  string
	ImageURL     string
	Featured     bool
}

// GetProductsReq запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	CategoryName string
	Price        int64
	Description  string
	ImageURL     string
	Featured     bool
	IsArchived   bool
}

// StatisticsRes — сводка для административной панели.
type StatisticsRes struct {
	Products     int64
	Users        int64
	Orders       int64
	RevenueCents int64
}

// REPOSITORIES

type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// MAPPERS

func NewAddItemReq(userID, productID, quantity int64) *AddItemReq {
	return &AddItemReq{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewSetQuantityReq(userID, productID, quantity int64) *SetQuantityReq {
	return &SetQuantityReq{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewUpdateOrderStatusReq(orderID string, status domain.OrderStatus, trackingRef string) *UpdateOrderStatusReq {
	return &UpdateOrderStatusReq{
		OrderID:     orderID,
		Status:      status,
		TrackingRef: trackingRef,
	}
}

func NewRegisterReq(email, password string) *RegisterReq {
	return &RegisterReq{Email: email, Password: password}
}

func NewLoginReq(email, password string) *LoginReq {
	return &LoginReq{Email: email, Password: password}
}
