package checkout

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	DefaultSnapshotKey    = "kotyCono_cart"
	DefaultShippingOption = "standard"
)

type Options struct {
	SnapshotKey string
	// TaxRate nil means domain.DefaultTaxRate; a zero rate disables tax.
	TaxRate         *decimal.Decimal
	Currency        currency.Unit
	Promos          domain.PromoTable
	ShippingOptions []domain.ShippingOption
	// DefaultShippingOption is preselected when the session starts.
	DefaultShippingOption string
	// FallbackItems stand in for an empty or unreadable cart snapshot.
	FallbackItems []domain.CartItem
	OrderIDs      *OrderIDGenerator
}

func DefaultShippingOptions() []domain.ShippingOption {
	return []domain.ShippingOption{
		{ID: "standard", Label: "Standard (5-7 business days)", Cost: decimal.Zero},
		{ID: "express", Label: "Express (2-3 business days)", Cost: decimal.RequireFromString("9.99")},
		{ID: "overnight", Label: "Overnight", Cost: decimal.RequireFromString("19.99")},
	}
}

func DefaultFallbackItems() []domain.CartItem {
	return []domain.CartItem{
		{Name: "Burn Capsules", Price: decimal.RequireFromString("28.99"), Img: "imgs/B.png"},
		{Name: "Detox Tea", Price: decimal.RequireFromString("24.99"), Img: "imgs/D.png"},
	}
}

func (o Options) withDefaults() Options {
	if o.SnapshotKey == "" {
		o.SnapshotKey = DefaultSnapshotKey
	}
	if o.TaxRate == nil {
		rate := domain.DefaultTaxRate
		o.TaxRate = &rate
	}
	if o.Currency == (currency.Unit{}) {
		o.Currency = currency.USD
	}
	if o.Promos == nil {
		o.Promos = domain.DefaultPromos()
	}
	if len(o.ShippingOptions) == 0 {
		o.ShippingOptions = DefaultShippingOptions()
	}
	if o.DefaultShippingOption == "" {
		o.DefaultShippingOption = DefaultShippingOption
	}
	if o.FallbackItems == nil {
		o.FallbackItems = DefaultFallbackItems()
	}
	if o.OrderIDs == nil {
		o.OrderIDs = NewOrderIDGenerator(DefaultOrderIDPrefix, nil)
	}

	return o
}

func (o Options) shippingOption(id string) (domain.ShippingOption, bool) {
	for _, opt := range o.ShippingOptions {
		if opt.ID == id {
			return opt, true
		}
	}

	return domain.ShippingOption{}, false
}
