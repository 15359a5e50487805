package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase реализует бизнес-логику каталога товаров:
// витрину, административное управление и кэширование карточек.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	userRepo     UserRepository
	orderRepo    OrderRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	userRepo UserRepository,
	orderRepo OrderRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// ListProducts возвращает витрину: только доступные товары.
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает один доступный товар.
// Удалённый и архивный товар неразличимы: оба отдаются как "не найден".
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "CatalogUseCase.GetProduct"

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidProductID)
	}

	res, err := c.GetProductsInfo(ctx, NewGetProductsReq([]int64{id}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.Products) == 0 || res.Products[0].IsArchived {
		return nil, e.Wrap(op, e.ErrProductUnavailable)
	}

	product := res.Products[0]
	return &product, nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам.
// Сначала товары ищутся в кэше, промахи дочитываются из БД и фоново кэшируются.
func (c *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	// Валидация
	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrInvalidArgument)
	}

	// Поиск товаров в кэше
	cacheProductsMap, err := c.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение товаров из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = c.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// UpsertProduct идемпотентно создаёт или обновляет товар вместе с категорией
// в одной транзакции, затем инвалидирует кэш.
func (c *CatalogUseCase) UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpsertProduct"

	var err error
	if err = c.validateProduct(req); err != nil {
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

	// идемпотентное создание категории
	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.CategoryName))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// идемпотентное создание товара
	res, err := c.productRepo.Upsert(ctx, domain.NewProduct(req.Name, req.Price, req.Description, req.ImageURL, category.ID, req.Featured))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша старых данных товара
	if err := c.cacheRepo.DeleteProducts(ctx, []int64{res.Product.ID}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return res.Product, nil
}

// ArchiveProduct скрывает товар с витрины. Существующие корзины и заказы
// не затрагиваются: строки корзин отклоняются только при добавлении
// и при оформлении заказа.
func (c *CatalogUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.ArchiveProduct"

	if id <= 0 {
		return e.Wrap(op, e.ErrInvalidProductID)
	}

	if err := c.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return nil
}

// ListAllProducts возвращает все товары, включая архивные (админка).
func (c *CatalogUseCase) ListAllProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListAllProducts"

	products, err := c.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Statistics возвращает сводку для административной панели.
func (c *CatalogUseCase) Statistics(ctx context.Context) (*StatisticsRes, error) {
	const op = "CatalogUseCase.Statistics"

	products, err := c.productRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	users, err := c.userRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := c.orderRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	revenue, err := c.orderRepo.Revenue(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &StatisticsRes{
		Products:     products,
		Users:        users,
		Orders:       orders,
		RevenueCents: revenue,
	}, nil
}

// validateProduct проверяет корректность входных данных запроса на изменение товара.
func (c *CatalogUseCase) validateProduct(req *UpsertProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		return e.ErrInvalidArgument
	}

	return nil
}
