package cart

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

const emptyCartHTML = `<div class="empty-cart">Your cart is empty<br>Start adding products!</div>`

var itemsTemplate = template.Must(template.New("cart-items").Parse(
	`{{range .}}<div class="cart-item">` +
		`<img src="{{.Img}}" alt="{{.Name}}">` +
		`<div class="cart-item-info"><b>{{.Name}}</b><span>{{.Price}}</span></div>` +
		`<button class="remove-btn" data-index="{{.Index}}" aria-label="Remove {{.Name}}">×</button>` +
		`</div>{{end}}`))

// View is what the presentation layer needs to draw the cart panel.
type View struct {
	HTML  template.HTML
	Count int
	Total string
	Empty bool
}

type itemView struct {
	Index int
	Name  string
	Img   string
	Price string
}

// Render projects the current state; it has no side effects.
func (s *Store) Render() (View, error) {
	return renderCart(s.cart, s.unit)
}

func renderCart(c domain.Cart, unit currency.Unit) (View, error) {
	total := domain.NewMoney(c.Total(), unit).String()

	if c.IsEmpty() {
		return View{
			HTML:  template.HTML(emptyCartHTML),
			Total: total,
			Empty: true,
		}, nil
	}

	rows := make([]itemView, 0, len(c.Items))
	for i, item := range c.Items {
		rows = append(rows, itemView{
			Index: i,
			Name:  item.Name,
			Img:   item.Img,
			Price: domain.NewMoney(item.Price, unit).String(),
		})
	}

	var buf bytes.Buffer
	if err := itemsTemplate.Execute(&buf, rows); err != nil {
		return View{}, fmt.Errorf("itemsTemplate.Execute: %w", err)
	}

	return View{
		HTML:  template.HTML(buf.String()),
		Count: len(c.Items),
		Total: total,
	}, nil
}
