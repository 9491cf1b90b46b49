package config

import (
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

// CheckoutOptions converts the pricing section into controller options.
// The snapshot key is filled in by Options.
func (c CheckoutConfig) CheckoutOptions() (checkout.Options, error) {
	var opts checkout.Options

	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return opts, fmt.Errorf("checkout.currency[%s] is not valid: %w", c.Currency, err)
	}
	opts.Currency = unit

	if c.TaxRate != "" {
		rate, err := parseDecimal("checkout.tax_rate", c.TaxRate)
		if err != nil {
			return opts, err
		}
		opts.TaxRate = &rate
	}

	opts.DefaultShippingOption = c.DefaultShipping

	for i, so := range c.ShippingOptions {
		cost, err := parseDecimal(fmt.Sprintf("checkout.shipping_options[%d].cost", i), so.Cost)
		if err != nil {
			return opts, err
		}
		if so.ID == "" {
			return opts, fmt.Errorf("checkout.shipping_options[%d].id is required", i)
		}
		opts.ShippingOptions = append(opts.ShippingOptions, domain.ShippingOption{ID: so.ID, Label: so.Label, Cost: cost})
	}

	if len(c.Promos) > 0 {
		opts.Promos = make(domain.PromoTable, len(c.Promos))
	}
	for i, p := range c.Promos {
		code := domain.NormalizePromoCode(p.Code)
		if code == "" {
			return opts, fmt.Errorf("checkout.promos[%d].code is required", i)
		}

		promo := domain.Promo{Code: code, Kind: domain.PromoKind(p.Kind)}
		switch promo.Kind {
		case domain.PromoKindPercent:
			if promo.Rate, err = parseDecimal(fmt.Sprintf("checkout.promos[%d].rate", i), p.Rate); err != nil {
				return opts, err
			}
		case domain.PromoKindFreeShipping:
		default:
			return opts, fmt.Errorf("checkout.promos[%d].kind %q is not one of percent, free_shipping", i, p.Kind)
		}
		opts.Promos[code] = promo
	}

	for i, item := range c.FallbackItems {
		price, err := parseDecimal(fmt.Sprintf("checkout.fallback_items[%d].price", i), item.Price)
		if err != nil {
			return opts, err
		}
		opts.FallbackItems = append(opts.FallbackItems, domain.CartItem{Name: item.Name, Price: price, Img: item.Img})
	}

	if c.OrderIDPrefix != "" {
		opts.OrderIDs = checkout.NewOrderIDGenerator(c.OrderIDPrefix, nil)
	}

	return opts, nil
}

func (c Config) CheckoutOptions() (checkout.Options, error) {
	opts, err := c.Checkout.CheckoutOptions()
	if err != nil {
		return opts, err
	}
	opts.SnapshotKey = c.Storage.SnapshotKey

	return opts, nil
}

func (c Config) CartOptions() (cart.Options, error) {
	unit, err := currency.ParseISO(c.Checkout.Currency)
	if err != nil {
		return cart.Options{}, fmt.Errorf("checkout.currency[%s] is not valid: %w", c.Checkout.Currency, err)
	}

	return cart.Options{
		SnapshotKey: c.Storage.SnapshotKey,
		Currency:    unit,
	}, nil
}

func (c Config) RedisTTL() (time.Duration, error) {
	return c.Storage.Redis.ttl()
}
