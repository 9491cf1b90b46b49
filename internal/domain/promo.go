package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PromoKind string

const (
	PromoKindPercent      PromoKind = "percent"
	PromoKindFreeShipping PromoKind = "free_shipping"
)

type Promo struct {
	Code string
	Kind PromoKind
	// Rate is the fraction of the subtotal taken off; unused for free shipping.
	Rate decimal.Decimal
}

func (p Promo) IsFreeShipping() bool {
	return p.Kind == PromoKindFreeShipping
}

// PromoTable maps normalized codes to promos.
type PromoTable map[string]Promo

func DefaultPromos() PromoTable {
	return PromoTable{
		"SAVE10":    {Code: "SAVE10", Kind: PromoKindPercent, Rate: decimal.RequireFromString("0.10")},
		"WELCOME20": {Code: "WELCOME20", Kind: PromoKindPercent, Rate: decimal.RequireFromString("0.20")},
		"FREESHIP":  {Code: "FREESHIP", Kind: PromoKindFreeShipping},
	}
}

func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (t PromoTable) Lookup(code string) (Promo, error) {
	promo, ok := t[NormalizePromoCode(code)]
	if !ok {
		return Promo{}, ErrInvalidPromo
	}

	return promo, nil
}
