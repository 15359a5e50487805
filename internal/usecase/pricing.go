package usecase

import "github.com/DRSN-tech/storefront-backend/internal/cfg"

// CalcTotals вычисляет итоги по промежуточной сумме в копейках.
// Доставка — фиксированная ставка при непустой сумме, налог округляется
// арифметически. Чистая функция: единственное место расчёта итогов,
// все поверхности (корзина, оформление заказа, админка) используют её.
func CalcTotals(subtotal int64, pricing *cfg.PricingCfg) Totals {
	var shipping int64
	if subtotal > 0 {
		shipping = pricing.ShippingFeeCents
	}

	tax := (subtotal*pricing.TaxRateBP + 5000) / 10000

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
