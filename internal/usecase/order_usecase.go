package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase оформляет заказы и управляет их статусами.
type OrderUseCase struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	pricing     *cfg.PricingCfg
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	pricing *cfg.PricingCfg,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		pricing:     pricing,
		logger:      logger,
	}
}

// orderCreatedPayload — payload события order_created для outbox.
type orderCreatedPayload struct {
	OrderID   string `json:"order_id"`
	UserID    int64  `json:"user_id"`
	Total     int64  `json:"total"`
	Lines     int    `json:"lines"`
	CreatedAt int64  `json:"created_at"`
}

// Checkout превращает корзину в неизменяемый заказ в одной транзакции:
// чтение корзины с блокировкой строки, повторная проверка каждого товара,
// снимок названий и цен, запись заказа и outbox-события, очистка корзины.
// Либо выполняются все шаги, либо ни одного; конкурентные мутации корзины
// ждут снятия блокировки и попадают уже в следующую корзину.
func (o *OrderUseCase) Checkout(ctx context.Context, userID int64) (*domain.Order, error) {
	const op = "OrderUseCase.Checkout"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	cart, err := o.cartRepo.GetCartForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			err = e.ErrEmptyCart
		}
		return nil, e.Wrap(op, err)
	}

	if cart.IsEmpty() {
		err = e.ErrEmptyCart
		return nil, e.Wrap(op, err)
	}

	ids := make([]int64, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}

	products, err := o.productRepo.GetProductsForCheckout(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	productByID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Повторная проверка каждой строки: недоступный товар отменяет оформление
	// целиком с указанием виновного товара, строки молча не выбрасываются.
	orderLines := make([]domain.OrderLine, 0, len(cart.Lines))
	var subtotal int64
	for _, line := range cart.Lines {
		product, ok := productByID[line.ProductID]
		if !ok || !product.Available() {
			err = e.Wrap(fmt.Sprintf("product %d", line.ProductID), e.ErrInvalidCartState)
			return nil, e.Wrap(op, err)
		}

		orderLines = append(orderLines, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * line.Quantity
	}

	// Итоги считаются по зафиксированным в снимке ценам, не повторным чтением каталога
	totals := CalcTotals(subtotal, o.pricing)

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Lines:     orderLines,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    domain.OrderConfirmed,
		CreatedAt: time.Now(),
	}

	if err = o.orderRepo.Create(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(orderCreatedPayload{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		Lines:     len(order.Lines),
		CreatedAt: order.CreatedAt.UnixNano(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderCreated, order.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Корзина очищается, но сама запись остаётся за пользователем
	if err = o.cartRepo.ClearLines(ctx, cart.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// GetOrder возвращает заказ владельца. Чужой заказ неотличим от несуществующего.
func (o *OrderUseCase) GetOrder(ctx context.Context, userID int64, orderID string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.UserID != userID {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	return order, nil
}

func (o *OrderUseCase) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderUseCase) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListAllOrders"

	orders, err := o.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// UpdateOrderStatus переводит заказ строго на следующий статус цепочки
// pending -> confirmed -> shipped -> delivered. Обратные переходы и переходы
// через шаг отклоняются. Обновление защищено условием на текущий статус:
// проигранная гонка двух администраторов возвращает ErrConflict.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	if !req.Status.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidArgument)
	}

	order, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !order.Status.CanTransitionTo(req.Status) {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	rows, err := o.orderRepo.UpdateStatus(ctx, req.OrderID, order.Status, req.Status, req.TrackingRef)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if rows == 0 {
		return nil, e.Wrap(op, e.ErrConflict)
	}

	updated, err := o.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}
