package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/pipeline"
)

// solveCommand creates the solve command for computing minimum page counts.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		capacity int
		format   string
		noCache  bool
		refresh  bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [album file]",
		Short: "Compute the minimum number of album pages",
		Long: `Compute the minimum number of album pages.

The solve command reads an album instance (photo count, page capacity, and
precedence constraints) and prints the minimum number of pages needed to
place every photo while respecting all constraints.

If the constraints contain a cycle, no valid placement exists and the
command prints "Impossible".

Input formats are detected from the file extension: .toml and .json map to
their respective formats, everything else is read as plain text
("n m k" header followed by k constraint lines). Use --input-format to
force a specific parser.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], pipeline.Options{
				Path:     args[0],
				Format:   format,
				Capacity: capacity,
				NoCache:  noCache,
				Refresh:  refresh,
			}, quiet)
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "m", 0, "override the page capacity from the input")
	cmd.Flags().StringVar(&format, "input-format", "", "force input format: text, toml, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute and overwrite the cached result")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the page count (or Impossible)")

	return cmd
}

// runSolve executes the solve pipeline and prints the result.
func (c *CLI) runSolve(ctx context.Context, input string, opts pipeline.Options, quiet bool) error {
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	var spinner *Spinner
	if !quiet {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Solving %s...", input))
		spinner.Start()
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Solve failed")
		}
		return fmt.Errorf("solve %s: %w", input, err)
	}
	if spinner != nil {
		spinner.Stop()
	}

	if quiet {
		if !result.Feasible {
			fmt.Println("Impossible")
			return nil
		}
		fmt.Println(result.Pages)
		return nil
	}

	if !result.Feasible {
		printWarning("Impossible")
		printDetail("The precedence constraints contain a cycle")
		return nil
	}

	printSuccess("Minimum pages: %s", StyleNumber.Render(fmt.Sprintf("%d", result.Pages)))
	printStats(result.Stats.PhotoCount, result.Stats.ConstraintCount, result.CacheInfo.SolveHit)
	printNextStep("See the page assignment", fmt.Sprintf("pagestack plan %s", input))
	return nil
}
