package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing() *cfg.PricingCfg {
	return &cfg.PricingCfg{ShippingFeeCents: 999, TaxRateBP: 800}
}

func newCartUCForTest(catalog *mockCatalog) (*CartUseCase, *mockCartRepo) {
	cartRepo := newMockCartRepo()
	uc := NewCartUC(cartRepo, catalog, &mockDB{}, testPricing(), nopLogger{})
	return uc, cartRepo
}

func TestGetCart_NoCartRecord(t *testing.T) {
	uc, _ := newCartUCForTest(newMockCatalog())

	res, err := uc.GetCart(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), res.UserID)
	assert.Empty(t, res.Lines)
	assert.Equal(t, int64(0), res.Totals.Total)
}

func TestAddItem_MergesByProduct(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", CategoryName: "Кухня", Price: 500})
	uc, _ := newCartUCForTest(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 2))
	require.NoError(t, err)

	res, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 3))
	require.NoError(t, err)

	require.Len(t, res.Lines, 1, "повторное добавление не должно создавать вторую строку")
	assert.Equal(t, int64(5), res.Lines[0].Quantity)
	assert.Equal(t, int64(2500), res.Lines[0].LineTotal)
}

func TestAddItem_InvalidInput(t *testing.T) {
	uc, _ := newCartUCForTest(newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", Price: 500}))
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 0))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, NewAddItemReq(7, 1, -5))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, NewAddItemReq(7, 0, 1))
	assert.ErrorIs(t, err, e.ErrInvalidProductID)
}

func TestAddItem_UnknownOrArchivedProduct(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 2, Name: "Архивный", Price: 100, IsArchived: true})
	uc, cartRepo := newCartUCForTest(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 99, 1))
	assert.ErrorIs(t, err, e.ErrProductUnavailable)

	_, err = uc.AddItem(ctx, NewAddItemReq(7, 2, 1))
	assert.ErrorIs(t, err, e.ErrProductUnavailable, "архивный товар неотличим от несуществующего")

	_, getErr := cartRepo.GetCart(ctx, 7)
	assert.ErrorIs(t, getErr, e.ErrCartNotFound, "корзина не должна создаваться при отказе")
}

func TestAddItem_Concurrent(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", Price: 500})
	uc, _ := newCartUCForTest(catalog)
	ctx := context.Background()

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := uc.GetCart(ctx, 7)
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, int64(workers), res.Lines[0].Quantity, "инкременты не должны теряться")
}

func TestSetQuantity_ReplacesNotIncrements(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", Price: 500})
	uc, _ := newCartUCForTest(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 5))
	require.NoError(t, err)

	res, err := uc.SetQuantity(ctx, NewSetQuantityReq(7, 1, 2))
	require.NoError(t, err)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, int64(2), res.Lines[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", Price: 500})
	uc, _ := newCartUCForTest(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 5))
	require.NoError(t, err)

	res, err := uc.SetQuantity(ctx, NewSetQuantityReq(7, 1, 0))
	require.NoError(t, err)
	assert.Empty(t, res.Lines)

	res, err = uc.SetQuantity(ctx, NewSetQuantityReq(7, 1, -3))
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
}

func TestRemoveItem_Idempotent(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", Price: 500})
	uc, _ := newCartUCForTest(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, NewAddItemReq(7, 1, 1))
	require.NoError(t, err)

	res, err := uc.RemoveItem(ctx, 7, 1)
	require.NoError(t, err)
	assert.Empty(t, res.Lines)

	// Повторное удаление и удаление из пустой корзины не ошибки
	_, err = uc.RemoveItem(ctx, 7, 1)
	assert.NoError(t, err)

	_, err = uc.RemoveItem(ctx, 100, 1)
	assert.NoError(t, err)
}

func TestResolveCart_UnknownLineExcludedFromTotals(t *testing.T) {
	catalog := newMockCatalog(ProductInfo{ID: 1, Name: "Чайник", CategoryName: "Кухня", Price: 500})
	uc, cartRepo := newCartUCForTest(catalog)
	ctx := context.Background()

	cartID, err := cartRepo.EnsureCart(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, cartRepo.IncrementLine(ctx, cartID, 1, 2))
	require.NoError(t, cartRepo.IncrementLine(ctx, cartID, 999, 1)) // товара нет в каталоге

	res, err := uc.GetCart(ctx, 7)
	require.NoError(t, err)

	require.Len(t, res.Lines, 2, "неизвестная строка остаётся видимой")
	assert.Equal(t, int64(1000), res.Totals.Subtotal, "неизвестная строка не участвует в итогах")

	for _, line := range res.Lines {
		if line.ProductID == 999 {
			assert.Equal(t, int64(0), line.UnitPrice)
			assert.False(t, line.Available)
		}
	}
}

func TestCalcTotals(t *testing.T) {
	pricing := testPricing()

	tests := []struct {
		name     string
		subtotal int64
		want     Totals
	}{
		{
			name:     "пустая корзина без доставки и налога",
			subtotal: 0,
			want:     Totals{Subtotal: 0, Shipping: 0, Tax: 0, Total: 0},
		},
		{
			name:     "25.00 даёт доставку 9.99 и налог 2.00",
			subtotal: 2500,
			want:     Totals{Subtotal: 2500, Shipping: 999, Tax: 200, Total: 3699},
		},
		{
			name:     "налог округляется до ближайшей копейки",
			subtotal: 1999, // 8% = 159.92 -> 160
			want:     Totals{Subtotal: 1999, Shipping: 999, Tax: 160, Total: 3158},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalcTotals(tt.subtotal, pricing))
		})
	}
}
