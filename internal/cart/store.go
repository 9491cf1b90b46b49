package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// DefaultSnapshotKey is the storage key shared with the checkout controller.
const DefaultSnapshotKey = "kotyCono_cart"

type EventKind string

const (
	EventLoaded      EventKind = "loaded"
	EventItemAdded   EventKind = "item_added"
	EventItemRemoved EventKind = "item_removed"
	EventCleared     EventKind = "cleared"
)

// Event is delivered to subscribers after every state change.
type Event struct {
	Kind  EventKind
	Items []domain.CartItem
	Count int
	Total decimal.Decimal
	// Open asks the presentation layer to reveal the cart panel.
	Open bool
}

type Options struct {
	SnapshotKey string
	Currency    currency.Unit
}

// Handoff names the snapshot the checkout controller should read.
type Handoff struct {
	SnapshotKey string
	Items       []domain.CartItem
}

// Store owns the list of items the user intends to buy.
// It is not safe for concurrent use; callers drive it from one goroutine.
type Store struct {
	repo   port.CartSnapshotRepository
	key    string
	unit   currency.Unit
	logger *zap.Logger

	cart        domain.Cart
	subscribers []func(Event)
}

func NewStore(repo port.CartSnapshotRepository, opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SnapshotKey == "" {
		opts.SnapshotKey = DefaultSnapshotKey
	}
	if opts.Currency == (currency.Unit{}) {
		opts.Currency = currency.USD
	}

	return &Store{
		repo:   repo,
		key:    opts.SnapshotKey,
		unit:   opts.Currency,
		logger: logger.With(zap.String("snapshot_key", opts.SnapshotKey)),
	}
}

func (s *Store) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// Load replaces the in-memory list with the persisted snapshot.
// A missing or unreadable snapshot leaves the cart empty.
func (s *Store) Load(ctx context.Context) {
	items, err := s.repo.GetSnapshot(ctx, s.key)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.logger.Debug("no saved cart")
		items = nil
	case err != nil:
		s.logger.Warn("discarding unreadable cart snapshot", zap.Error(err))
		items = nil
	}

	s.cart.Items = items
	s.notify(EventLoaded, false)
}

func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	s.cart.Items = append(s.cart.Items, item)

	if err := s.Save(ctx); err != nil {
		s.cart.Items = s.cart.Items[:len(s.cart.Items)-1]
		return fmt.Errorf("add %q: %w", item.Name, err)
	}

	s.logger.Debug("item added", zap.String("name", item.Name), zap.Int("count", len(s.cart.Items)))
	s.notify(EventItemAdded, true)

	return nil
}

// Remove deletes the item at index. An out-of-range index changes nothing.
func (s *Store) Remove(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.cart.Items) {
		s.logger.Warn("remove index out of range", zap.Int("index", index), zap.Int("count", len(s.cart.Items)))
		return nil
	}

	previous := domain.CloneItems(s.cart.Items)
	removed := s.cart.Items[index]
	s.cart.Items = append(s.cart.Items[:index], s.cart.Items[index+1:]...)

	if err := s.Save(ctx); err != nil {
		s.cart.Items = previous
		return fmt.Errorf("remove %d: %w", index, err)
	}

	s.logger.Debug("item removed", zap.String("name", removed.Name), zap.Int("count", len(s.cart.Items)))
	s.notify(EventItemRemoved, false)

	return nil
}

// Clear empties the cart and drops its snapshot.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.repo.DeleteSnapshot(ctx, s.key); err != nil {
		return fmt.Errorf("repo.DeleteSnapshot: %w", err)
	}

	s.cart.Items = nil
	s.notify(EventCleared, false)

	return nil
}

func (s *Store) Save(ctx context.Context) error {
	items := s.cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	if err := s.repo.SaveSnapshot(ctx, s.key, items); err != nil {
		return fmt.Errorf("repo.SaveSnapshot: %w", err)
	}

	return nil
}

// Checkout persists the cart for the checkout controller. An empty cart is refused.
func (s *Store) Checkout(ctx context.Context) (Handoff, error) {
	if s.cart.IsEmpty() {
		return Handoff{}, domain.ErrEmptyCart
	}

	if err := s.Save(ctx); err != nil {
		return Handoff{}, fmt.Errorf("checkout: %w", err)
	}

	s.logger.Info("checkout started", zap.Int("count", len(s.cart.Items)), zap.Stringer("total", s.Total()))

	return Handoff{
		SnapshotKey: s.key,
		Items:       s.Items(),
	}, nil
}

func (s *Store) Items() []domain.CartItem {
	return domain.CloneItems(s.cart.Items)
}

func (s *Store) Count() int {
	return len(s.cart.Items)
}

// Total is the exact sum of item prices; rounding happens only in Render.
func (s *Store) Total() decimal.Decimal {
	return s.cart.Total()
}

func (s *Store) Currency() currency.Unit {
	return s.unit
}

func (s *Store) notify(kind EventKind, open bool) {
	if len(s.subscribers) == 0 {
		return
	}

	event := Event{
		Kind:  kind,
		Items: s.Items(),
		Count: len(s.cart.Items),
		Total: s.Total(),
		Open:  open,
	}

	for _, fn := range s.subscribers {
		fn(event)
	}
}
