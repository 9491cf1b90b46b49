package domain

import (
	"github.com/shopspring/decimal"
)

var DefaultTaxRate = decimal.RequireFromString("0.08")

// ComputeTotals derives every monetary field from its inputs.
// Tax applies to the subtotal only, never to shipping or the discounted amount.
func ComputeTotals(items []CartItem, shippingCost decimal.Decimal, promo *Promo, taxRate decimal.Decimal) Totals {
	subtotal := SumPrices(items)

	discount := decimal.Zero
	if promo != nil {
		switch promo.Kind {
		case PromoKindPercent:
			discount = subtotal.Mul(promo.Rate)
		case PromoKindFreeShipping:
			shippingCost = decimal.Zero
		}
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Tax:          tax,
		Discount:     discount,
		Total:        subtotal.Add(shippingCost).Add(tax).Sub(discount),
	}
}
