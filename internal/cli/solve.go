package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridfile"
	"github.com/pdrpinto/gridastar/internal/render"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <layout-file>",
		Short: "Find a shortest path through a grid layout",
		Long: `Find a shortest path from the start cell to the end cell of a layout.

Layouts ending in .yaml or .yml are read as YAML, anything else as an ASCII map.

Examples:
  gridpath solve maze.txt
  gridpath solve maze.yaml --animate --delay 20ms --color`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	cmd.Flags().Bool(animateFlag, false, "Redraw the grid after every search step")
	cmd.Flags().Duration(delayFlag, 30*time.Millisecond, "Pause between animation frames")
	cmd.Flags().Bool(colorFlag, false, "Draw coloured cells instead of ASCII symbols")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	layout, err := gridfile.Load(args[0])
	if err != nil {
		return err
	}
	ed, err := layout.Build()
	if err != nil {
		return err
	}
	start, end, err := ed.Prepare()
	if err != nil {
		return err
	}
	logger.Debug("layout loaded", "file", args[0], "rows", layout.Size, "barriers", len(layout.Barriers))

	var observer gridastar.Observer = gridastar.NopObserver{}
	if cfg.Animate {
		observer = render.NewAnimator(cmd.Context(), cmd.OutOrStdout(), ed.Grid(), cfg.Delay, cfg.Color)
	}
	result, err := gridastar.Search(cmd.Context(), ed.Grid(), start, end, observer, gridastar.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Frame(ed.Grid(), cfg.Color))
	switch result.Outcome {
	case gridastar.Found:
		fmt.Fprintf(out, "path found: length %d, %d nodes expanded\n", result.Length, result.ExpandedNodes)
	case gridastar.NotFound:
		fmt.Fprintf(out, "no path from %s to %s, %d nodes expanded\n", start, end, result.ExpandedNodes)
	case gridastar.Cancelled:
		fmt.Fprintf(out, "search cancelled after %d nodes expanded\n", result.ExpandedNodes)
	}
	return nil
}
