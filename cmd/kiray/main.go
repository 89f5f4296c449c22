package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/betkiray/kiray/internal/app"
	"github.com/betkiray/kiray/internal/tabbar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(app.Run)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "kiray: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "kiray",
		Short:         "kiray is a terminal client for Betkiray listings",
		Long:          `kiray renders the Betkiray app shell with its animated bottom tab bar.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/kiray/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/kiray/prefs.toml)")
	flags.StringVar(&opts.Variant, "variant", "", fmt.Sprintf("tab bar variant %v (overrides config)", tabbar.VariantNames()))
	return cmd
}
