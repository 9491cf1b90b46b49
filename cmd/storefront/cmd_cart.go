package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the saved cart",
	}

	cmd.AddCommand(
		newCartAddCmd(a),
		newCartRemoveCmd(a),
		newCartShowCmd(a),
		newCartClearCmd(a),
		newCartCheckoutCmd(a),
	)

	return cmd
}

// loadStore opens the cart the way a page load does.
func (a *app) loadStore(cmd *cobra.Command) (*cart.Store, error) {
	opts, err := a.cfg.CartOptions()
	if err != nil {
		return nil, err
	}

	store := cart.NewStore(a.repo, opts, a.logger)
	store.Load(cmd.Context())

	return store, nil
}

func newCartAddCmd(a *app) *cobra.Command {
	var (
		name  string
		price string
		img   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog item to the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("price %q: %w", price, err)
			}

			store, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Add(cmd.Context(), domain.CartItem{Name: name, Price: amount, Img: img}); err != nil {
				return err
			}

			return printCart(cmd.OutOrStdout(), store)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "", "unit price, e.g. 28.99")
	cmd.Flags().StringVar(&img, "img", "", "product image reference")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the item at a zero-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}

			store, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Remove(cmd.Context(), index); err != nil {
				return err
			}

			return printCart(cmd.OutOrStdout(), store)
		},
	}
}

func newCartShowCmd(a *app) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			if asHTML {
				view, err := store.Render()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), view.HTML)
				return err
			}

			return printCart(cmd.OutOrStdout(), store)
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "print the rendered cart panel fragment")

	return cmd
}

func newCartClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}

			return printCart(cmd.OutOrStdout(), store)
		},
	}
}

func newCartCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Hand the cart over to checkout",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd)
			if err != nil {
				return err
			}

			handoff, err := store.Checkout(cmd.Context())
			if errors.Is(err, domain.ErrEmptyCart) {
				return fmt.Errorf("your cart is empty")
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cart saved under %q with %d item(s); run `storefront checkout run` to continue.\n",
				handoff.SnapshotKey, len(handoff.Items))
			return err
		},
	}
}

func printCart(w io.Writer, store *cart.Store) error {
	view, err := store.Render()
	if err != nil {
		return err
	}

	if view.Empty {
		_, err = fmt.Fprintln(w, "Your cart is empty")
		return err
	}

	for i, item := range store.Items() {
		if _, err := fmt.Fprintf(w, "%d. %s  %s\n", i, item.Name, domain.NewMoney(item.Price, store.Currency())); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "Items: %d  Total: %s\n", view.Count, view.Total)
	return err
}
