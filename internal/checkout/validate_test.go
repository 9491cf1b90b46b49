package checkout_test

import (
	"errors"
	"testing"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShipping(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.ShippingInfo)
		wantField string
	}{
		{name: "complete form: ok", mutate: func(*domain.ShippingInfo) {}},
		{name: "missing first name: error", mutate: func(s *domain.ShippingInfo) { s.FirstName = "" }, wantField: "firstName"},
		{name: "blank city: error", mutate: func(s *domain.ShippingInfo) { s.City = "   " }, wantField: "city"},
		{name: "missing country: error", mutate: func(s *domain.ShippingInfo) { s.Country = "" }, wantField: "country"},
		{name: "malformed email: error", mutate: func(s *domain.ShippingInfo) { s.Email = "jane.example.com" }, wantField: "email"},
		{name: "display name email: error", mutate: func(s *domain.ShippingInfo) { s.Email = "Jane <jane@example.com>" }, wantField: "email"},
		{
			name: "first invalid field wins: error",
			mutate: func(s *domain.ShippingInfo) {
				s.Zip = ""
				s.Phone = ""
			},
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validShipping()
			tt.mutate(&info)

			err := checkout.ValidateShipping(info)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name      string
		info      domain.PaymentInfo
		wantField string
	}{
		{
			name: "card with formatted number: ok",
			info: validCard(),
		},
		{
			name: "paypal without card fields: ok",
			info: domain.PaymentInfo{Method: domain.PaymentMethodPayPal},
		},
		{
			name:      "no method: error",
			info:      domain.PaymentInfo{},
			wantField: "payment",
		},
		{
			name:      "card number missing: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardName: "Jane Doe", Expiry: "12/30"},
			wantField: "cardNumber",
		},
		{
			name:      "card number too short: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111 1111", CardName: "Jane Doe", Expiry: "12/30"},
			wantField: "cardNumber",
		},
		{
			name:      "card number with letters: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111 1111 1111 11AB", CardName: "Jane Doe", Expiry: "12/30"},
			wantField: "cardNumber",
		},
		{
			name:      "card name missing: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111111111111111", Expiry: "12/30"},
			wantField: "cardName",
		},
		{
			name:      "expiry missing: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111111111111111", CardName: "Jane Doe"},
			wantField: "expiry",
		},
		{
			name:      "expiry month out of range: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111111111111111", CardName: "Jane Doe", Expiry: "13/30"},
			wantField: "expiry",
		},
		{
			name:      "expiry not formatted: error",
			info:      domain.PaymentInfo{Method: domain.PaymentMethodCard, CardNumber: "4111111111111111", CardName: "Jane Doe", Expiry: "1230"},
			wantField: "expiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkout.ValidatePayment(tt.info)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateCart(t *testing.T) {
	require.ErrorIs(t, checkout.ValidateCart(nil), domain.ErrEmptyCart)
	require.NoError(t, checkout.ValidateCart(checkout.DefaultFallbackItems()))
}

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+1 555 0100",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62701",
		Country:   "US",
	}
}

func validCard() domain.PaymentInfo {
	return domain.PaymentInfo{
		Method:     domain.PaymentMethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jane Doe",
		Expiry:     "12/30",
	}
}
