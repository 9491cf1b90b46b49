package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Step int

const (
	StepReview Step = iota + 1
	StepShipping
	StepPayment
	StepConfirm
	StepSuccess
)

// WizardSteps is the number of navigable steps; StepSuccess is not one of them.
const WizardSteps = 4

func (s Step) String() string {
	switch s {
	case StepReview:
		return "review"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirm"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

func (s Step) IsTerminal() bool {
	return s == StepSuccess
}

func (s Step) IsNavigable() bool {
	return s >= StepReview && s <= StepConfirm
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodPayPal
}

type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
}

// PaymentInfo holds card fields only when Method is PaymentMethodCard.
type PaymentInfo struct {
	Method     PaymentMethod
	CardNumber string
	CardName   string
	Expiry     string
}

type ShippingOption struct {
	ID    string
	Label string
	Cost  decimal.Decimal
}

type Totals struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

type Order struct {
	SessionID uuid.UUID
	Cart      []CartItem
	Shipping  ShippingInfo
	Payment   PaymentInfo
	Promo     *Promo
	Totals    Totals
}
