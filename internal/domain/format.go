package domain

import (
	"strings"
	"unicode"
)

// FormatCardNumber strips whitespace and regroups the rest in blocks of four.
func FormatCardNumber(raw string) string {
	value := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	runes := []rune(value)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// FormatExpiry keeps at most four digits and renders them as MM/YY.
func FormatExpiry(raw string) string {
	value := digitsOnly(raw)
	if len(value) < 2 {
		return value
	}

	if len(value) > 4 {
		value = value[:4]
	}

	return value[:2] + "/" + value[2:]
}

// MaskCardNumber returns the last four digits of a card number.
func MaskCardNumber(number string) string {
	digits := digitsOnly(number)
	if len(digits) <= 4 {
		return digits
	}

	return digits[len(digits)-4:]
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
