package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type CartUC interface {
	GetCart(ctx context.Context, userID int64) (*CartRes, error)
	AddItem(ctx context.Context, req *AddItemReq) (*CartRes, error)
	SetQuantity(ctx context.Context, req *SetQuantityReq) (*CartRes, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*CartRes, error)
}

type OrderUC interface {
	Checkout(ctx context.Context, userID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, userID int64, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	UpsertProduct(ctx context.Context, req *UpsertProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id int64) error
	ListAllProducts(ctx context.Context) ([]ProductInfo, error)
	Statistics(ctx context.Context) (*StatisticsRes, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	Authenticate(ctx context.Context, token string) (*TokenClaims, error)
	ListUsers(ctx context.Context) ([]UserInfo, error)
}
