package checkout_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/stretchr/testify/assert"
)

func TestOrderIDGenerator_Next(t *testing.T) {
	now := time.UnixMilli(1_760_000_123_456)
	gen := checkout.NewOrderIDGenerator("KC", func() time.Time { return now })

	first := gen.Next()
	second := gen.Next()

	assert.Equal(t, "KC00123456", first)
	assert.Equal(t, "KC00123457", second, "same tick is bumped forward")
	assert.Regexp(t, regexp.MustCompile(`^KC\d{8}$`), first)
}

func TestOrderIDGenerator_ClockMovesBackwards(t *testing.T) {
	ticks := []int64{5_000, 4_000, 6_000}
	i := 0
	gen := checkout.NewOrderIDGenerator("KC", func() time.Time {
		ms := ticks[i]
		i++
		return time.UnixMilli(ms)
	})

	assert.Equal(t, "KC00005000", gen.Next())
	assert.Equal(t, "KC00005001", gen.Next())
	assert.Equal(t, "KC00006000", gen.Next())
}

func TestOrderIDGenerator_Distinct(t *testing.T) {
	gen := checkout.NewOrderIDGenerator(checkout.DefaultOrderIDPrefix, nil)

	seen := make(map[string]struct{})
	for range 1000 {
		id := gen.Next()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate order id %s", id)
		seen[id] = struct{}{}
	}
}
