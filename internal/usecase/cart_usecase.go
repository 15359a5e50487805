package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CartUseCase реализует бизнес-логику корзины: единственное место,
// где выполняются слияние строк, нормализация количества и расчёт итогов.
type CartUseCase struct {
	cartRepo CartRepository
	catalog  CatalogUC
	dbPool   transaction.Transactional
	pricing  *cfg.PricingCfg
	logger   logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	catalog CatalogUC,
	dbPool transaction.Transactional,
	pricing *cfg.PricingCfg,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		catalog:  catalog,
		dbPool:   dbPool,
		pricing:  pricing,
		logger:   logger,
	}
}

// GetCart возвращает корзину пользователя с актуальными данными каталога.
// Отсутствие записи корзины не является ошибкой: возвращается пустая корзина,
// запись при чтении не создаётся.
func (c *CartUseCase) GetCart(ctx context.Context, userID int64) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			cart = domain.NewEmptyCart(userID)
		} else {
			return nil, e.Wrap(op, err)
		}
	}

	return c.resolveCart(ctx, cart)
}

// AddItem добавляет товар в корзину со слиянием по продукту: существующая
// строка инкрементируется, новая вставляется, корзина создаётся при первом
// добавлении. Инкремент и вставка выполняются одним условным upsert-запросом
// в транзакции, поэтому конкурентные вызовы не теряют инкременты
// и не создают дубликатов строк.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}
	if req.ProductID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	// Несуществующий и архивный товар неразличимы для вызывающего
	if _, err := c.catalog.GetProduct(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	cartID, err := c.cartRepo.EnsureCart(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.cartRepo.IncrementLine(ctx, cartID, req.ProductID, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.GetCart(ctx, req.UserID)
}

// SetQuantity устанавливает точное количество товара (замена, не инкремент).
// Неположительное количество сводится к удалению строки.
func (c *CartUseCase) SetQuantity(ctx context.Context, req *SetQuantityReq) (*CartRes, error) {
	const op = "CartUseCase.SetQuantity"

	if req.ProductID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	if req.Quantity <= 0 {
		return c.RemoveItem(ctx, req.UserID, req.ProductID)
	}

	if _, err := c.catalog.GetProduct(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	cartID, err := c.cartRepo.EnsureCart(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = c.cartRepo.SetLine(ctx, cartID, req.ProductID, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.GetCart(ctx, req.UserID)
}

// RemoveItem идемпотентно удаляет строку корзины: отсутствие строки не ошибка.
func (c *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) (*CartRes, error) {
	const op = "CartUseCase.RemoveItem"

	if productID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	if err := c.cartRepo.DeleteLine(ctx, userID, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.GetCart(ctx, userID)
}

// resolveCart дополняет строки корзины актуальными названием и ценой из
// каталога (join на чтении, данные каталога в корзине не дублируются).
// Архивные товары остаются видимыми, полностью неизвестные строки
// отображаются без данных каталога и не участвуют в итогах.
func (c *CartUseCase) resolveCart(ctx context.Context, cart *domain.Cart) (*CartRes, error) {
	const op = "CartUseCase.resolveCart"

	res := &CartRes{
		UserID:    cart.UserID,
		Lines:     make([]CartLineView, 0, len(cart.Lines)),
		UpdatedAt: cart.UpdatedAt,
	}

	if cart.IsEmpty() {
		res.Totals = CalcTotals(0, c.pricing)
		return res, nil
	}

	ids := make([]int64, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}

	productsRes, err := c.catalog.GetProductsInfo(ctx, NewGetProductsReq(ids))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infoByID := make(map[int64]ProductInfo, len(productsRes.Products))
	for _, info := range productsRes.Products {
		infoByID[info.ID] = info
	}

	var subtotal int64
	for _, line := range cart.Lines {
		view := CartLineView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}

		if info, ok := infoByID[line.ProductID]; ok {
			view.Name = info.Name
			view.CategoryName = info.CategoryName
			view.UnitPrice = info.Price
			view.LineTotal = info.Price * line.Quantity
			view.Available = !info.IsArchived
			subtotal += view.LineTotal
		}

		res.Lines = append(res.Lines, view)
	}

	res.Totals = CalcTotals(subtotal, c.pricing)
	return res, nil
}
