package checkout

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

var confirmationItemsTemplate = template.Must(template.New("confirmation-items").Parse(
	`{{range .}}<div class="cart-item-checkout">` +
		`<div class="item-image"><img src="{{.Img}}" alt="{{.Name}}"></div>` +
		`<div class="item-details"><div class="item-name">{{.Name}}</div>` +
		`<div class="item-quantity">Quantity: {{.Quantity}}</div></div>` +
		`<div class="item-price">{{.Price}}</div>` +
		`</div>{{end}}`))

type ConfirmationItem struct {
	Name     string
	Img      string
	Quantity int
	Price    string
}

// Confirmation is the read-only review shown on the last step.
// Card details are reduced to the last four digits and the cardholder name.
type Confirmation struct {
	ShippingLines []string
	PaymentLines  []string
	Items         []ConfirmationItem
	ItemsHTML     template.HTML
	Summary       Summary
}

// Summary carries display strings for the order totals.
type Summary struct {
	Subtotal     string
	Shipping     string
	Tax          string
	Total        string
	Discount     string
	ShowDiscount bool
}

func NewSummary(totals domain.Totals, unit currency.Unit) Summary {
	s := Summary{
		Subtotal: domain.NewMoney(totals.Subtotal, unit).String(),
		Shipping: domain.NewMoney(totals.ShippingCost, unit).String(),
		Tax:      domain.NewMoney(totals.Tax, unit).String(),
		Total:    domain.NewMoney(totals.Total, unit).String(),
	}

	if totals.Discount.IsPositive() {
		s.ShowDiscount = true
		s.Discount = domain.NewMoney(totals.Discount, unit).Negate().String()
	}

	return s
}

func buildConfirmation(order domain.Order, unit currency.Unit) (Confirmation, error) {
	sh := order.Shipping

	c := Confirmation{
		ShippingLines: []string{
			sh.FirstName + " " + sh.LastName,
			sh.Address,
			fmt.Sprintf("%s, %s %s", sh.City, sh.State, sh.Zip),
			sh.Country,
			sh.Email,
			sh.Phone,
		},
		Summary: NewSummary(order.Totals, unit),
	}

	switch order.Payment.Method {
	case domain.PaymentMethodCard:
		c.PaymentLines = []string{
			"Credit Card ending in " + domain.MaskCardNumber(order.Payment.CardNumber),
			order.Payment.CardName,
		}
	case domain.PaymentMethodPayPal:
		c.PaymentLines = []string{"PayPal"}
	}

	for _, item := range order.Cart {
		c.Items = append(c.Items, ConfirmationItem{
			Name:     item.Name,
			Img:      item.Img,
			Quantity: 1,
			Price:    domain.NewMoney(item.Price, unit).String(),
		})
	}

	var buf bytes.Buffer
	if err := confirmationItemsTemplate.Execute(&buf, c.Items); err != nil {
		return Confirmation{}, fmt.Errorf("confirmationItemsTemplate.Execute: %w", err)
	}
	c.ItemsHTML = template.HTML(buf.String())

	return c, nil
}
