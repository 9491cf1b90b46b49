package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCart(t *testing.T) {
	tests := []struct {
		name      string
		cart      domain.Cart
		wantTotal string
		wantEmpty bool
	}{
		{
			name:      "nil items: ok",
			cart:      domain.Cart{},
			wantTotal: "0",
			wantEmpty: true,
		},
		{
			name: "duplicates counted twice: ok",
			cart: domain.Cart{Items: []domain.CartItem{
				{Name: "Detox Tea", Price: dec("24.99")},
				{Name: "Detox Tea", Price: dec("24.99")},
				{Name: "Burn Capsules", Price: dec("28.99")},
			}},
			wantTotal: "78.97",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, dec(tt.wantTotal), tt.cart.Total(), "total")
			assert.Equal(t, tt.wantEmpty, tt.cart.IsEmpty())
		})
	}
}
