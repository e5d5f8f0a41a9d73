package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/pipeline"
)

// planCommand creates the plan command for computing page assignments.
func (c *CLI) planCommand() *cobra.Command {
	var (
		capacity int
		format   string
		noCache  bool
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "plan [album file]",
		Short: "Compute a concrete page assignment",
		Long: `Compute a concrete page assignment.

The plan command solves the instance and produces an explicit assignment
of photos to pages using the minimum number of pages. By default the
assignment opens in an interactive viewer; use --plain to print it as
text instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), args[0], pipeline.Options{
				Path:     args[0],
				Format:   format,
				Capacity: capacity,
				NoCache:  noCache,
				WithPlan: true,
			}, plain)
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "m", 0, "override the page capacity from the input")
	cmd.Flags().StringVar(&format, "input-format", "", "force input format: text, toml, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the assignment as text instead of the interactive viewer")

	return cmd
}

// runPlan executes the pipeline with a plan and displays the assignment.
func (c *CLI) runPlan(ctx context.Context, input string, opts pipeline.Options, plain bool) error {
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Planning %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Planning failed")
		return fmt.Errorf("plan %s: %w", input, err)
	}
	spinner.Stop()

	if !result.Feasible {
		printWarning("Impossible")
		printDetail("The precedence constraints contain a cycle")
		return nil
	}

	if plain {
		printPlainPlan(result.Plan)
		return nil
	}

	model := NewPlanModel(input, result.Plan, result.Instance.Capacity)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		// Fall back to plain output when no TTY is available.
		printPlainPlan(result.Plan)
	}
	return nil
}

// printPlainPlan writes one line per page.
func printPlainPlan(plan [][]int) {
	for i, page := range plan {
		ids := make([]string, len(page))
		for j, id := range page {
			ids[j] = fmt.Sprintf("%d", id)
		}
		fmt.Printf("page %d: %s\n", i+1, strings.Join(ids, " "))
	}
}
