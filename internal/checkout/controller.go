package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type EventKind string

const (
	EventStepChanged   EventKind = "step_changed"
	EventTotalsChanged EventKind = "totals_changed"
	EventOrderPlaced   EventKind = "order_placed"
)

type Event struct {
	Kind    EventKind
	Step    domain.Step
	Totals  domain.Totals
	Receipt *Receipt
}

type Receipt struct {
	OrderID string
	Email   string
	Total   domain.Money
}

type StepStatus struct {
	Step      domain.Step
	Active    bool
	Completed bool
}

// Controller drives one checkout session through review, shipping, payment
// and confirmation. It is not safe for concurrent use.
type Controller struct {
	repo   port.CartSnapshotRepository
	opts   Options
	logger *zap.Logger

	sessionID uuid.UUID
	step      domain.Step
	completed [domain.WizardSteps + 1]bool

	// form drafts survive back and jump navigation
	shippingForm domain.ShippingInfo
	paymentForm  domain.PaymentInfo

	cart         []domain.CartItem
	shipping     domain.ShippingInfo
	payment      domain.PaymentInfo
	shippingCost decimal.Decimal
	promo        *domain.Promo
	totals       domain.Totals

	confirmation *Confirmation
	receipt      *Receipt

	subscribers []func(Event)
}

// New starts a session from the persisted cart snapshot. The snapshot is read
// once; when it is absent, unreadable or empty the fallback items are used.
func New(ctx context.Context, repo port.CartSnapshotRepository, opts Options, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = opts.withDefaults()
	sessionID := uuid.New()

	c := &Controller{
		repo:      repo,
		opts:      opts,
		logger:    logger.With(zap.Stringer("session_id", sessionID)),
		sessionID: sessionID,
		step:      domain.StepReview,
	}

	if opt, ok := opts.shippingOption(opts.DefaultShippingOption); ok {
		c.shippingCost = opt.Cost
	}

	c.cart = c.loadCart(ctx)
	c.recompute()

	return c
}

func (c *Controller) loadCart(ctx context.Context) []domain.CartItem {
	items, err := c.repo.GetSnapshot(ctx, c.opts.SnapshotKey)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		c.logger.Debug("no saved cart")
	case err != nil:
		c.logger.Warn("discarding unreadable cart snapshot", zap.Error(err))
	}

	if len(items) == 0 {
		c.logger.Debug("using fallback cart", zap.Int("count", len(c.opts.FallbackItems)))
		return domain.CloneItems(c.opts.FallbackItems)
	}

	return items
}

func (c *Controller) Subscribe(fn func(Event)) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) SessionID() uuid.UUID {
	return c.sessionID
}

func (c *Controller) Step() domain.Step {
	return c.step
}

func (c *Controller) Totals() domain.Totals {
	return c.totals
}

func (c *Controller) Summary() Summary {
	return NewSummary(c.totals, c.opts.Currency)
}

func (c *Controller) Order() domain.Order {
	order := domain.Order{
		SessionID: c.sessionID,
		Cart:      domain.CloneItems(c.cart),
		Shipping:  c.shipping,
		Payment:   c.payment,
		Totals:    c.totals,
	}
	if c.promo != nil {
		promo := *c.promo
		order.Promo = &promo
	}

	return order
}

// Progress reports each navigable step's indicator state.
func (c *Controller) Progress() []StepStatus {
	out := make([]StepStatus, 0, domain.WizardSteps)
	for s := domain.StepReview; s <= domain.StepConfirm; s++ {
		out = append(out, StepStatus{
			Step:      s,
			Active:    s == c.step,
			Completed: c.completed[s],
		})
	}

	return out
}

// Confirmation is available once the session has reached the last step.
func (c *Controller) Confirmation() (Confirmation, bool) {
	if c.confirmation == nil {
		return Confirmation{}, false
	}

	return *c.confirmation, true
}

func (c *Controller) Receipt() (Receipt, bool) {
	if c.receipt == nil {
		return Receipt{}, false
	}

	return *c.receipt, true
}

func (c *Controller) SetShippingForm(info domain.ShippingInfo) {
	c.shippingForm = info
}

func (c *Controller) SetPaymentForm(info domain.PaymentInfo) {
	c.paymentForm = info
}

func (c *Controller) SelectPaymentMethod(method domain.PaymentMethod) error {
	if c.step.IsTerminal() {
		return domain.ErrOrderPlaced
	}
	if !method.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPayment, method)
	}

	c.paymentForm.Method = method

	return nil
}

// Advance validates the current step, saves its fields and moves forward by one.
// A failed validation leaves both the step and the accumulated order untouched.
func (c *Controller) Advance() error {
	if c.step.IsTerminal() {
		return domain.ErrOrderPlaced
	}
	if c.step == domain.StepConfirm {
		return fmt.Errorf("%w: %s is the last step", domain.ErrInvalidStep, c.step)
	}

	if err := c.validate(c.step); err != nil {
		c.logger.Debug("step validation failed", zap.Stringer("step", c.step), zap.Error(err))
		return err
	}

	from := c.step
	shipping, payment, completed := c.shipping, c.payment, c.completed

	c.save(from)
	c.completed[from] = true
	c.recompute()

	if err := c.moveTo(from + 1); err != nil {
		c.shipping, c.payment, c.completed = shipping, payment, completed
		c.recompute()
		return err
	}

	return nil
}

// GoBack moves one step back without validating or discarding anything.
func (c *Controller) GoBack() error {
	if c.step.IsTerminal() {
		return domain.ErrOrderPlaced
	}
	if c.step == domain.StepReview {
		return fmt.Errorf("%w: %s is the first step", domain.ErrInvalidStep, c.step)
	}

	return c.moveTo(c.step - 1)
}

// JumpTo navigates directly to any step, as a progress indicator click would.
// Navigation is unchecked: earlier steps need not have validated, so later
// steps may be reached with an incomplete order.
func (c *Controller) JumpTo(step domain.Step) error {
	if c.step.IsTerminal() {
		return domain.ErrOrderPlaced
	}
	if !step.IsNavigable() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidStep, int(step))
	}

	c.logger.Debug("unchecked navigation", zap.Stringer("from", c.step), zap.Stringer("to", step))

	return c.moveTo(step)
}

// ApplyPromo replaces any previously applied promo. Unknown codes change nothing.
func (c *Controller) ApplyPromo(code string) (domain.Promo, error) {
	if c.step.IsTerminal() {
		return domain.Promo{}, domain.ErrOrderPlaced
	}

	promo, err := c.opts.Promos.Lookup(code)
	if err != nil {
		c.logger.Debug("promo rejected", zap.String("code", code))
		return domain.Promo{}, err
	}

	c.promo = &promo
	c.recompute()
	c.logger.Debug("promo applied", zap.String("code", promo.Code), zap.Stringer("discount", c.totals.Discount))
	c.notify(EventTotalsChanged)

	return promo, nil
}

func (c *Controller) SelectShippingOption(id string) error {
	opt, ok := c.opts.shippingOption(id)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownShipping, id)
	}

	return c.SelectShippingCost(opt.Cost)
}

// SelectShippingCost overwrites the shipping cost. A free-shipping promo is
// consumed by the new selection.
func (c *Controller) SelectShippingCost(cost decimal.Decimal) error {
	if c.step.IsTerminal() {
		return domain.ErrOrderPlaced
	}
	if cost.IsNegative() {
		return fmt.Errorf("shipping cost %s is negative", cost)
	}

	c.shippingCost = cost
	if c.promo != nil && c.promo.IsFreeShipping() {
		c.promo = nil
	}

	c.recompute()
	c.notify(EventTotalsChanged)

	return nil
}

// PlaceOrder finishes the session from the confirmation step. Without terms
// acceptance nothing changes. On success the cart snapshot is removed.
func (c *Controller) PlaceOrder(ctx context.Context, termsAccepted bool) (Receipt, error) {
	if c.step.IsTerminal() {
		return Receipt{}, domain.ErrOrderPlaced
	}
	if c.step != domain.StepConfirm {
		return Receipt{}, fmt.Errorf("%w: orders are placed from %s, not %s", domain.ErrInvalidStep, domain.StepConfirm, c.step)
	}
	if !termsAccepted {
		return Receipt{}, domain.ErrTermsNotAccepted
	}

	receipt := Receipt{
		OrderID: c.opts.OrderIDs.Next(),
		Email:   c.shipping.Email,
		Total:   domain.NewMoney(c.totals.Total, c.opts.Currency),
	}

	if _, err := c.repo.DeleteSnapshot(ctx, c.opts.SnapshotKey); err != nil {
		c.logger.Warn("cart snapshot not cleared", zap.Error(err))
	}

	c.completed[domain.StepConfirm] = true
	c.step = domain.StepSuccess
	c.receipt = &receipt

	c.logger.Info("order placed",
		zap.String("order_id", receipt.OrderID),
		zap.Int("items", len(c.cart)),
		zap.Stringer("total", receipt.Total))

	c.notify(EventOrderPlaced)

	return receipt, nil
}

func (c *Controller) validate(step domain.Step) error {
	switch step {
	case domain.StepReview:
		return ValidateCart(c.cart)
	case domain.StepShipping:
		return ValidateShipping(c.shippingForm)
	case domain.StepPayment:
		return ValidatePayment(c.paymentForm)
	default:
		return nil
	}
}

func (c *Controller) save(step domain.Step) {
	switch step {
	case domain.StepShipping:
		c.shipping = c.shippingForm
	case domain.StepPayment:
		payment := domain.PaymentInfo{Method: c.paymentForm.Method}
		if payment.Method == domain.PaymentMethodCard {
			payment.CardNumber = c.paymentForm.CardNumber
			payment.CardName = c.paymentForm.CardName
			payment.Expiry = c.paymentForm.Expiry
		}
		c.payment = payment
	}
}

func (c *Controller) moveTo(step domain.Step) error {
	from := c.step
	c.step = step

	if step == domain.StepConfirm {
		confirmation, err := buildConfirmation(c.Order(), c.opts.Currency)
		if err != nil {
			c.step = from
			return fmt.Errorf("buildConfirmation: %w", err)
		}
		c.confirmation = &confirmation
	}

	c.logger.Debug("step changed", zap.Stringer("from", from), zap.Stringer("to", step))
	c.notify(EventStepChanged)

	return nil
}

func (c *Controller) recompute() {
	c.totals = domain.ComputeTotals(c.cart, c.shippingCost, c.promo, *c.opts.TaxRate)
}

func (c *Controller) notify(kind EventKind) {
	event := Event{
		Kind:    kind,
		Step:    c.step,
		Totals:  c.totals,
		Receipt: c.receipt,
	}

	for _, fn := range c.subscribers {
		fn(event)
	}
}
