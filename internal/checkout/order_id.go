package checkout

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultOrderIDPrefix = "KC"
	orderIDModulus       = 100_000_000
)

// OrderIDGenerator issues prefix + the last eight digits of the millisecond
// clock. Calls landing on the same or an earlier tick are bumped forward so
// one generator never repeats itself; separate generators may collide.
type OrderIDGenerator struct {
	mu     sync.Mutex
	prefix string
	now    func() time.Time
	last   int64
}

func NewOrderIDGenerator(prefix string, now func() time.Time) *OrderIDGenerator {
	if now == nil {
		now = time.Now
	}

	return &OrderIDGenerator{
		prefix: prefix,
		now:    now,
	}
}

func (g *OrderIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return fmt.Sprintf("%s%08d", g.prefix, ms%orderIDModulus)
}
