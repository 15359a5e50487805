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

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
// На пользователя существует не более одной корзины (уникальный индекс user_id),
// на товар — не более одной строки (уникальный индекс cart_id, product_id).
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// GetCart возвращает корзину пользователя со строками.
// Возвращает e.ErrCartNotFound, если запись ещё не создана; чтение никогда не пишет.
func (c *CartRepo) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	query := `
		SELECT id, user_id, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart domain.Cart
	err := c.pool.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lines, err := c.getLines(ctx, cart.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cart.Lines = lines

	return &cart, nil
}

// GetCartForUpdate читает корзину внутри транзакции, блокируя её строку
// до конца транзакции. Конкурентные мутации корзины ждут снятия блокировки,
// поэтому оформление заказа видит согласованный набор строк.
func (c *CartRepo) GetCartForUpdate(ctx context.Context, userID int64) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, user_id, updated_at
		FROM carts
		WHERE user_id = $1
		FOR UPDATE
	`

	var cart domain.Cart
	err = tx.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	linesQuery := `
		SELECT product_id, quantity
		FROM cart_lines
		WHERE cart_id = $1
		ORDER BY product_id
	`

	rows, err := tx.Query(ctx, linesQuery, cart.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &cart, nil
}

// CreateCart заводит пустую корзину пользователя при регистрации.
// Идемпотентна: повторный вызов для того же пользователя ничего не меняет.
func (c *CartRepo) CreateCart(ctx context.Context, userID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING;
	`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureCart возвращает идентификатор корзины пользователя, создавая запись
// при первом обращении (upsert) и обновляя отметку последнего изменения.
func (c *CartRepo) EnsureCart(ctx context.Context, userID int64) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO carts (user_id) VALUES ($1)
		ON CONFLICT (user_id)
		DO UPDATE SET updated_at = NOW()
		RETURNING id;
	`

	var cartID int64
	if err := tx.QueryRow(ctx, query, userID).Scan(&cartID); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return cartID, nil
}

// IncrementLine добавляет количество к существующей строке или вставляет новую.
// Инкремент и вставка выполняются одним условным upsert-запросом, поэтому
// конкурентные вызовы для одной пары (корзина, товар) сериализуются базой:
// инкременты не теряются, дубликаты строк не появляются.
func (c *CartRepo) IncrementLine(ctx context.Context, cartID, productID, quantity int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_lines (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity;
	`

	if _, err := tx.Exec(ctx, query, cartID, productID, quantity); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// SetLine устанавливает точное количество строки (замена, не инкремент),
// вставляя строку, если её ещё нет.
func (c *CartRepo) SetLine(ctx context.Context, cartID, productID, quantity int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_lines (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity;
	`

	if _, err := tx.Exec(ctx, query, cartID, productID, quantity); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// deleteLineQuery сначала захватывает строку carts и лишь затем удаляет
// строку товара. Все мутации корзины берут блокировки в этом порядке
// (carts, потом cart_lines), как и оформление заказа, иначе встречные
// транзакции могут взаимно заблокироваться.
const deleteLineQuery = `
	WITH locked AS (
		UPDATE carts SET updated_at = NOW()
		WHERE user_id = $1
		RETURNING id
	)
	DELETE FROM cart_lines
	WHERE cart_id IN (SELECT id FROM locked)
	  AND product_id = $2;
`

// DeleteLine идемпотентно удаляет строку корзины. Отсутствие корзины
// или строки не является ошибкой.
func (c *CartRepo) DeleteLine(ctx context.Context, userID, productID int64) error {
	if _, err := c.pool.Exec(ctx, deleteLineQuery, userID, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ClearLines удаляет все строки корзины, сохраняя саму запись корзины.
func (c *CartRepo) ClearLines(ctx context.Context, cartID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH cleared AS (
			DELETE FROM cart_lines WHERE cart_id = $1
		)
		UPDATE carts SET updated_at = NOW() WHERE id = $1;
	`

	if _, err := tx.Exec(ctx, query, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// getLines возвращает строки корзины в детерминированном порядке.
func (c *CartRepo) getLines(ctx context.Context, cartID int64) ([]domain.CartLine, error) {
	query := `
		SELECT product_id, quantity
		FROM cart_lines
		WHERE cart_id = $1
		ORDER BY product_id
	`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return lines, nil
}
