package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// String rounds to cents for display only; the stored amount keeps full precision.
func (m Money) String() string {
	if m.Amount.IsNegative() {
		return "-" + m.Negate().String()
	}

	amount := m.Amount.StringFixed(2)

	if m.Currency == currency.USD {
		return "$" + amount
	}

	return fmt.Sprintf("%s %s", m.Currency.String(), amount)
}

func (m Money) Negate() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}
