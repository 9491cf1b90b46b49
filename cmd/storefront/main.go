package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once PersistentPreRunE has run.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	repo   port.CartSnapshotRepository
	close  func() error
}

func main() {
	if err := execute(&app{}, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs one invocation. Storage is closed even when the command fails.
func execute(a *app, args []string, stdout, stderr io.Writer) error {
	defer a.shutdown()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront cart and checkout",
		Long: `storefront drives the cart store and the checkout wizard from the command line.

Every invocation is one page visit: the cart is read from and written to the
configured snapshot storage, so items added by one command are visible to the next.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "storefront.yaml", "path to the config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCartCmd(a), newCheckoutCmd(a), newFormatCmd())

	return root
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = config.NewLogger(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.repo, a.close, err = openSnapshotRepository(ctx, cfg, a.logger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	return nil
}

func (a *app) shutdown() {
	if a.close != nil {
		if err := a.close(); err != nil {
			a.logger.Warn("closing storage", zap.Error(err))
		}
		a.close = nil
	}

	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
