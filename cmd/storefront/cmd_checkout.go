package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// session is what a shopper would type into the checkout forms.
type session struct {
	ShippingOption string       `yaml:"shipping_option"`
	Promo          string       `yaml:"promo"`
	Shipping       shippingForm `yaml:"shipping"`
	Payment        paymentForm  `yaml:"payment"`
	AcceptTerms    bool         `yaml:"accept_terms"`
}

type shippingForm struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	Address   string `yaml:"address"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	Zip       string `yaml:"zip"`
	Country   string `yaml:"country"`
}

type paymentForm struct {
	Method     string `yaml:"method"`
	CardNumber string `yaml:"card_number"`
	CardName   string `yaml:"card_name"`
	Expiry     string `yaml:"expiry"`
}

func newCheckoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Run the checkout wizard over the saved cart",
	}

	cmd.AddCommand(newCheckoutRunCmd(a), newCheckoutSummaryCmd(a))

	return cmd
}

func (a *app) newController(cmd *cobra.Command) (*checkout.Controller, error) {
	opts, err := a.cfg.CheckoutOptions()
	if err != nil {
		return nil, err
	}

	return checkout.New(cmd.Context(), a.repo, opts, a.logger), nil
}

func newCheckoutSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the order summary for the saved cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newController(cmd)
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), c.Summary())
		},
	}
}

func newCheckoutRunCmd(a *app) *cobra.Command {
	var sessionPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill every step from a session file and place the order",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(sessionPath)
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}

			var s session
			if err := yaml.Unmarshal(data, &s); err != nil {
				return fmt.Errorf("parse session %s: %w", sessionPath, err)
			}

			c, err := a.newController(cmd)
			if err != nil {
				return err
			}

			return runSession(cmd, c, s)
		},
	}

	cmd.Flags().StringVarP(&sessionPath, "session", "s", "", "session file with shipping, payment and promo input")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func runSession(cmd *cobra.Command, c *checkout.Controller, s session) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// a shipping selection consumes free shipping, so the promo goes second
	if s.ShippingOption != "" {
		if err := c.SelectShippingOption(s.ShippingOption); err != nil {
			return err
		}
	}

	if s.Promo != "" {
		promo, err := c.ApplyPromo(s.Promo)
		if err != nil {
			return fmt.Errorf("promo %q: %w", s.Promo, err)
		}
		if _, err := fmt.Fprintf(out, "Promo %s applied\n", promo.Code); err != nil {
			return err
		}
	}

	// review
	if err := c.Advance(); err != nil {
		return fmt.Errorf("%s: %w", domain.StepReview, err)
	}

	c.SetShippingForm(domain.ShippingInfo{
		FirstName: s.Shipping.FirstName,
		LastName:  s.Shipping.LastName,
		Email:     s.Shipping.Email,
		Phone:     s.Shipping.Phone,
		Address:   s.Shipping.Address,
		City:      s.Shipping.City,
		State:     s.Shipping.State,
		Zip:       s.Shipping.Zip,
		Country:   s.Shipping.Country,
	})
	if err := c.Advance(); err != nil {
		return fmt.Errorf("%s: %w", domain.StepShipping, err)
	}

	// card input goes through the same masks the form applies while typing
	c.SetPaymentForm(domain.PaymentInfo{
		CardNumber: domain.FormatCardNumber(s.Payment.CardNumber),
		CardName:   s.Payment.CardName,
		Expiry:     domain.FormatExpiry(s.Payment.Expiry),
	})
	if err := c.SelectPaymentMethod(domain.PaymentMethod(s.Payment.Method)); err != nil {
		return err
	}
	if err := c.Advance(); err != nil {
		return fmt.Errorf("%s: %w", domain.StepPayment, err)
	}

	confirmation, _ := c.Confirmation()
	if err := printConfirmation(out, confirmation); err != nil {
		return err
	}

	receipt, err := c.PlaceOrder(ctx, s.AcceptTerms)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Order placed: %s\nA confirmation was sent to %s\n", receipt.OrderID, receipt.Email)
	return err
}

func printConfirmation(w io.Writer, c checkout.Confirmation) error {
	var b strings.Builder

	b.WriteString("Ship to:\n")
	for _, line := range c.ShippingLines {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	b.WriteString("Payment:\n")
	for _, line := range c.PaymentLines {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	b.WriteString("Items:\n")
	for _, item := range c.Items {
		fmt.Fprintf(&b, "  %s x%d  %s\n", item.Name, item.Quantity, item.Price)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	return printSummary(w, c.Summary)
}

func printSummary(w io.Writer, s checkout.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Subtotal: %s\n", s.Subtotal)
	fmt.Fprintf(&b, "Shipping: %s\n", s.Shipping)
	fmt.Fprintf(&b, "Tax:      %s\n", s.Tax)
	if s.ShowDiscount {
		fmt.Fprintf(&b, "Discount: %s\n", s.Discount)
	}
	fmt.Fprintf(&b, "Total:    %s\n", s.Total)

	_, err := io.WriteString(w, b.String())
	return err
}
