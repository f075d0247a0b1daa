// Package cli implements the gridpath command line host.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the gridpath command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on square grids with animated A* search",
		Long: `gridpath loads a square grid layout, runs an A* search from its start
cell to its end cell and prints the explored grid with the path marked.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String(configFlag, "", "YAML config file")
	root.PersistentFlags().String(logLevelFlag, "info", "Log level: debug, info, warn, error")

	root.AddCommand(newSolveCommand(), newGenerateCommand())
	return root
}

// Execute runs the root command; an interrupt cancels a running search.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}
