package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/album"
)

// checkCommand creates the check command for validating album instances.
func (c *CLI) checkCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [album file]",
		Short: "Validate an album instance and its constraints",
		Long: `Validate an album instance and its constraints.

The check command parses the input, validates the photo count, page
capacity, and constraint IDs, and reports whether the precedence
constraints admit any valid placement (i.e. whether the constraint
graph is acyclic). It does not solve the instance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "input-format", "", "force input format: text, toml, json")

	return cmd
}

// runCheck validates the instance and reports feasibility.
func (c *CLI) runCheck(input, format string) error {
	in, err := loadInstance(input, format)
	if err != nil {
		printError("Invalid instance")
		printDetail("%v", err)
		return err
	}

	g, err := in.Graph()
	if err != nil {
		return err
	}

	printSuccess("Valid instance")
	printDetail("%d photos, capacity %d, %d constraints", in.Photos, in.Capacity, len(in.Constraints))

	if !g.IsAcyclic() {
		printWarning("Infeasible: the constraints contain a cycle")
		return nil
	}

	printInfo("Feasible: a valid page assignment exists")
	printNextStep("Compute the page count", fmt.Sprintf("pagestack solve %s", input))
	return nil
}

// loadInstance loads an album instance with optional format override.
func loadInstance(path, format string) (*album.Instance, error) {
	if format == "" {
		return album.Load(path)
	}
	f, ok := album.FormatByType(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (must be one of: text, toml, json)", format)
	}
	return album.LoadAs(path, f)
}
