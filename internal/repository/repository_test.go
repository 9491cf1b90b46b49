package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_snapshots.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		Name:  gofakeit.ProductName(),
		Price: decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Img:   "imgs/" + gofakeit.LetterN(6) + ".png",
	}
}

func randomCartItems(n int) []domain.CartItem {
	items := make([]domain.CartItem, 0, n)
	for range n {
		items = append(items, randomCartItem())
	}

	return items
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, decimalComparer)
	assert.Empty(t, diff)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
