package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Строки и денежные поля заказа после создания не изменяются;
// обновляются только статус и трек-номер.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create сохраняет заказ со снимками строк внутри транзакции оформления.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (id, user_id, subtotal, shipping, tax, total, status, tracking_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	if _, err := tx.Exec(ctx, orderQuery,
		order.ID, order.UserID, order.Subtotal, order.Shipping, order.Tax, order.Total,
		order.Status, order.TrackingRef, order.CreatedAt,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, product_id, name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5);
	`

	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, lineQuery,
			order.ID, line.ProductID, line.Name, line.UnitPrice, line.Quantity,
		); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// GetByID возвращает заказ со строками.
func (o *OrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT id, user_id, subtotal, shipping, tax, total, status, tracking_ref, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := o.pool.QueryRow(ctx, query, orderID).Scan(
		&order.ID, &order.UserID, &order.Subtotal, &order.Shipping, &order.Tax, &order.Total,
		&order.Status, &order.TrackingRef, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lines, err := o.getLines(ctx, []string{order.ID})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Lines = lines[order.ID]

	return &order, nil
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, subtotal, shipping, tax, total, status, tracking_ref, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return o.listOrders(ctx, query, userID)
}

// ListAll возвращает все заказы (админка), новые первыми.
func (o *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, subtotal, shipping, tax, total, status, tracking_ref, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	return o.listOrders(ctx, query)
}

// UpdateStatus переводит заказ из ожидаемого статуса в новый.
// Условие на текущий статус делает обновление оптимистичным:
// ноль затронутых строк означает проигранную гонку.
func (o *OrderRepo) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, trackingRef string) (int64, error) {
	query := `
		UPDATE orders
		SET status = $3,
		    tracking_ref = COALESCE(NULLIF($4, ''), tracking_ref)
		WHERE id = $1 AND status = $2
	`

	result, err := o.pool.Exec(ctx, query, orderID, from, to, trackingRef)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected(), nil
}

func (o *OrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := o.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// Revenue возвращает суммарную выручку по всем заказам в копейках.
func (o *OrderRepo) Revenue(ctx context.Context) (int64, error) {
	var revenue int64
	if err := o.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders`).Scan(&revenue); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return revenue, nil
}

func (o *OrderRepo) listOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.Subtotal, &order.Shipping, &order.Tax, &order.Total,
			&order.Status, &order.TrackingRef, &order.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	linesByOrder, err := o.getLines(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	for i := range orders {
		orders[i].Lines = linesByOrder[orders[i].ID]
	}

	return orders, nil
}

// getLines возвращает строки заказов, сгруппированные по заказу.
func (o *OrderRepo) getLines(ctx context.Context, orderIDs []string) (map[string][]domain.OrderLine, error) {
	query := `
		SELECT order_id, product_id, name, unit_price, quantity
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY product_id
	`

	rows, err := o.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[string][]domain.OrderLine, len(orderIDs))
	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.ProductID, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result[orderID] = append(result[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
