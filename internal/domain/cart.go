package domain

import (
	"github.com/shopspring/decimal"
)

type Cart struct {
	Items []CartItem
}

// CartItem is identified by its position in the cart; equal name and price do not merge.
type CartItem struct {
	Name  string
	Price decimal.Decimal
	Img   string
}

func (c Cart) Total() decimal.Decimal {
	return SumPrices(c.Items)
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func SumPrices(items []CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price)
	}

	return sum
}

func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}

	out := make([]CartItem, len(items))
	copy(out, items)

	return out
}
