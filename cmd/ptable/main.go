package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/ptable/internal/app"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type rootFlags struct {
	configPath  string
	theme       string
	catalogPath string
	noMouse     bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath:  f.configPath,
		ThemeName:   f.theme,
		CatalogPath: f.catalogPath,
		NoMouse:     f.noMouse,
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ptable: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "ptable",
		Short: "Interactive periodic table of the elements",
		Long: `ptable renders the periodic table in the terminal. Move with the arrow
keys or h/j/k/l, press enter for element details, / to search and c to
filter by category.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/ptable/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Element catalog TOML file (default embedded)")
	rootCmd.Flags().StringVar(&flags.theme, "theme", "", "Color theme (Nightfox, Kanagawa, Slate)")
	rootCmd.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")

	rootCmd.AddCommand(newShowCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newCategoriesCmd(flags))
	rootCmd.AddCommand(newLogsCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
