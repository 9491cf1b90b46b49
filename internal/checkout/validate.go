package checkout

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

const (
	minCardDigits = 13
	maxCardDigits = 19
)

func ValidateCart(items []domain.CartItem) error {
	if len(items) == 0 {
		return domain.ErrEmptyCart
	}

	return nil
}

// ValidateShipping reports the first invalid field in form order.
func ValidateShipping(info domain.ShippingInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", info.FirstName},
		{"lastName", info.LastName},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
		{"city", info.City},
		{"state", info.State},
		{"zip", info.Zip},
		{"country", info.Country},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Field: f.name, Reason: "is required"}
		}

		if f.name == "email" && !isEmail(f.value) {
			return &domain.ValidationError{Field: f.name, Reason: "is not a valid email address"}
		}
	}

	return nil
}

func ValidatePayment(info domain.PaymentInfo) error {
	if !info.Method.IsValid() {
		return &domain.ValidationError{Field: "payment", Reason: "select a payment method"}
	}

	if info.Method != domain.PaymentMethodCard {
		return nil
	}

	number := strings.ReplaceAll(strings.TrimSpace(info.CardNumber), " ", "")
	switch {
	case number == "":
		return &domain.ValidationError{Field: "cardNumber", Reason: "is required"}
	case !isDigits(number) || len(number) < minCardDigits || len(number) > maxCardDigits:
		return &domain.ValidationError{Field: "cardNumber", Reason: "must be 13 to 19 digits"}
	}

	if strings.TrimSpace(info.CardName) == "" {
		return &domain.ValidationError{Field: "cardName", Reason: "is required"}
	}

	expiry := strings.TrimSpace(info.Expiry)
	if expiry == "" {
		return &domain.ValidationError{Field: "expiry", Reason: "is required"}
	}
	if !isExpiry(expiry) {
		return &domain.ValidationError{Field: "expiry", Reason: "must be MM/YY"}
	}

	return nil
}

func isEmail(s string) bool {
	s = strings.TrimSpace(s)

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	// reject display-name forms like "Jane <jane@example.com>"
	return addr.Address == s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

func isExpiry(s string) bool {
	if len(s) != 5 || s[2] != '/' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return false
	}

	month, err := strconv.Atoi(s[:2])
	if err != nil {
		return false
	}

	return month >= 1 && month <= 12
}
