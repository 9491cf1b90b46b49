package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "16 digits", input: "4111111111111111", want: "4111 1111 1111 1111"},
		{name: "already formatted", input: "4111 1111 1111 1111", want: "4111 1111 1111 1111"},
		{name: "irregular spacing", input: "41 11111 1111 11 111", want: "4111 1111 1111 1111"},
		{name: "partial group", input: "411111", want: "4111 11"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FormatCardNumber(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, domain.FormatCardNumber(got), "formatting must be idempotent")
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single digit", input: "1", want: "1"},
		{name: "month only", input: "12", want: "12/"},
		{name: "month and year", input: "1226", want: "12/26"},
		{name: "already formatted", input: "12/26", want: "12/26"},
		{name: "extra digits dropped", input: "122634", want: "12/26"},
		{name: "non digits stripped", input: "1a2-2b6", want: "12/26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FormatExpiry(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, domain.FormatExpiry(got), "formatting must be idempotent")
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "1111", domain.MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "0004", domain.MaskCardNumber("5500000000000004"))
	assert.Equal(t, "12", domain.MaskCardNumber("12"))
}
