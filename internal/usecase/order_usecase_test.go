package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uc          *OrderUseCase
	cartRepo    *mockCartRepo
	orderRepo   *mockOrderRepo
	productRepo *mockProductRepo
	outboxRepo  *mockOutboxRepo
}

func newOrderFixture(products ...domain.Product) *orderFixture {
	cartRepo := newMockCartRepo()
	orderRepo := newMockOrderRepo()
	productRepo := newMockProductRepo(products...)
	outboxRepo := &mockOutboxRepo{}

	uc := NewOrderUC(orderRepo, cartRepo, productRepo, outboxRepo, &mockDB{}, testPricing(), nopLogger{})
	return &orderFixture{
		uc:          uc,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
	}
}

func (f *orderFixture) fillCart(t *testing.T, userID int64, lines map[int64]int64) {
	t.Helper()
	ctx := context.Background()
	cartID, err := f.cartRepo.EnsureCart(ctx, userID)
	require.NoError(t, err)
	for productID, quantity := range lines {
		require.NoError(t, f.cartRepo.IncrementLine(ctx, cartID, productID, quantity))
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	// Корзины вообще нет
	_, err := f.uc.Checkout(ctx, 7)
	assert.ErrorIs(t, err, e.ErrEmptyCart)

	// Корзина есть, но пустая
	_, err = f.cartRepo.EnsureCart(ctx, 7)
	require.NoError(t, err)
	_, err = f.uc.Checkout(ctx, 7)
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	f := newOrderFixture(
		domain.Product{ID: 1, Name: "Чайник", Price: 500},
		domain.Product{ID: 2, Name: "Кружка", Price: 300},
	)
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 2, 2: 5}) // 1000 + 1500 = 2500

	order, err := f.uc.Checkout(ctx, 7)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(7), order.UserID)
	assert.Equal(t, domain.OrderConfirmed, order.Status)
	assert.Equal(t, int64(2500), order.Subtotal)
	assert.Equal(t, int64(999), order.Shipping)
	assert.Equal(t, int64(200), order.Tax)
	assert.Equal(t, int64(3699), order.Total)
	require.Len(t, order.Lines, 2)

	// Корзина очищена, запись осталась
	cart, err := f.cartRepo.GetCart(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	// Событие order_created записано в outbox в той же транзакции
	require.Len(t, f.outboxRepo.events, 1)
	event := f.outboxRepo.events[0]
	assert.Equal(t, OrderCreated, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)

	var payload struct {
		OrderID string `json:"order_id"`
		Total   int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, order.ID, payload.OrderID)
	assert.Equal(t, order.Total, payload.Total)
}

func TestCheckout_SnapshotSurvivesPriceChange(t *testing.T) {
	f := newOrderFixture(domain.Product{ID: 1, Name: "Чайник", Price: 500})
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 1})

	order, err := f.uc.Checkout(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(500), order.Lines[0].UnitPrice)

	// Цена и название меняются после оформления
	f.productRepo.products[1] = domain.Product{ID: 1, Name: "Чайник Pro", Price: 900}

	stored, err := f.uc.GetOrder(ctx, 7, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Чайник", stored.Lines[0].Name)
	assert.Equal(t, int64(500), stored.Lines[0].UnitPrice)
	assert.Equal(t, int64(500), stored.Subtotal)
}

func TestCheckout_UnavailableProductAborts(t *testing.T) {
	f := newOrderFixture(
		domain.Product{ID: 1, Name: "Чайник", Price: 500},
		domain.Product{ID: 2, Name: "Архивный", Price: 300, IsArchived: true},
	)
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 1, 2: 1})

	_, err := f.uc.Checkout(ctx, 7)
	assert.ErrorIs(t, err, e.ErrInvalidCartState)

	// Ничего не зафиксировано: корзина цела, заказов и событий нет
	cart, err := f.cartRepo.GetCart(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Empty(t, f.outboxRepo.events)
	assert.Empty(t, f.orderRepo.orders)
}

func TestGetOrder_OwnerOnly(t *testing.T) {
	f := newOrderFixture(domain.Product{ID: 1, Name: "Чайник", Price: 500})
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 1})

	order, err := f.uc.Checkout(ctx, 7)
	require.NoError(t, err)

	_, err = f.uc.GetOrder(ctx, 8, order.ID)
	assert.ErrorIs(t, err, e.ErrOrderNotFound, "чужой заказ неотличим от несуществующего")

	_, err = f.uc.GetOrder(ctx, 7, "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestUpdateOrderStatus_ForwardOnly(t *testing.T) {
	f := newOrderFixture(domain.Product{ID: 1, Name: "Чайник", Price: 500})
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 1})

	order, err := f.uc.Checkout(ctx, 7)
	require.NoError(t, err)

	// confirmed -> shipped с трек-номером
	updated, err := f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderShipped, "TRACK-1"))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, updated.Status)
	assert.Equal(t, "TRACK-1", updated.TrackingRef)

	// Назад нельзя
	_, err = f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderConfirmed, ""))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)

	// Через шаг нельзя: shipped -> shipped тоже отклоняется
	_, err = f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderShipped, ""))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)

	// shipped -> delivered, терминальный статус
	updated, err = f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderDelivered, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, updated.Status)
	assert.Equal(t, "TRACK-1", updated.TrackingRef, "пустой трек-номер не затирает сохранённый")

	_, err = f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderDelivered, ""))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	_, err := f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq("any", domain.OrderStatus("cancelled"), ""))
	assert.ErrorIs(t, err, e.ErrInvalidArgument)
}

func TestUpdateOrderStatus_LostRace(t *testing.T) {
	f := newOrderFixture(domain.Product{ID: 1, Name: "Чайник", Price: 500})
	ctx := context.Background()
	f.fillCart(t, 7, map[int64]int64{1: 1})

	order, err := f.uc.Checkout(ctx, 7)
	require.NoError(t, err)

	// Второй администратор успевает перевести статус между чтением и обновлением
	f.orderRepo.beforeUpdate = func() {
		f.orderRepo.orders[order.ID].Status = domain.OrderShipped
	}

	_, err = f.uc.UpdateOrderStatus(ctx, NewUpdateOrderStatusReq(order.ID, domain.OrderShipped, ""))
	assert.ErrorIs(t, err, e.ErrConflict)
}
