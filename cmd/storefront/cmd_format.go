package main

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Apply the payment form input masks",
		// formatting needs neither config nor storage
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "card NUMBER",
			Short: "Group a card number in blocks of four",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.FormatCardNumber(args[0]))
				return err
			},
		},
		&cobra.Command{
			Use:   "expiry VALUE",
			Short: "Render an expiry date as MM/YY",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.FormatExpiry(args[0]))
				return err
			},
		},
	)

	return cmd
}
