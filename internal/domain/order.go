package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// nextStatus задаёт строгую последовательность статусов.
// Переходы назад и через шаг запрещены, delivered — терминальный статус.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderPending:   OrderConfirmed,
	OrderConfirmed: OrderShipped,
	OrderShipped:   OrderDelivered,
}

// Valid сообщает, является ли строка известным статусом заказа.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered:
		return true
	default:
		return false
	}
}

// CanTransitionTo разрешает только следующий по порядку статус.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return nextStatus[s] == next
}

// Order — неизменяемый снимок корзины на момент оформления.
// Строки и денежные поля фиксируются при создании и больше не пересчитываются;
// изменяться могут только статус и трек-номер, и только администратором.
type Order struct {
	ID          string // UUID, внешняя ссылка на заказ
	UserID      int64
	Lines       []OrderLine
	Subtotal    int64 // все суммы — в копейках, хранятся независимо
	Shipping    int64
	Tax         int64
	Total       int64
	Status      OrderStatus
	TrackingRef string
	CreatedAt   time.Time
}

// OrderLine — строка заказа со снимком названия и цены товара на момент покупки.
// Последующие правки или архивация товара этот снимок не затрагивают.
type OrderLine struct {
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int64
}
