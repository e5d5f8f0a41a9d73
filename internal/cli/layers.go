package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/constraint"
)

// layersCommand creates the layers command for inspecting precedence waves.
func (c *CLI) layersCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layers [album file]",
		Short: "Show the precedence waves of an album instance",
		Long: `Show the precedence waves of an album instance.

Each wave contains the photos whose constraints are satisfied once all
earlier waves are placed. The waves ignore page capacity; they describe
the constraint structure, not a concrete page assignment. An empty
output with remaining photos means the constraints contain a cycle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayers(args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "input-format", "", "force input format: text, toml, json")

	return cmd
}

// runLayers prints one line per precedence wave.
func (c *CLI) runLayers(input, format string) error {
	in, err := loadInstance(input, format)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	g, err := in.Graph()
	if err != nil {
		return err
	}

	waves := constraint.Layers(g)
	covered := 0
	for _, wave := range waves {
		covered += len(wave)
	}

	for i, wave := range waves {
		ids := make([]string, len(wave))
		for j, id := range wave {
			ids[j] = fmt.Sprintf("%d", id)
		}
		fmt.Printf("%s %s\n",
			StyleDim.Render(fmt.Sprintf("wave %d:", i+1)),
			StyleValue.Render(strings.Join(ids, " ")))
	}

	if covered < g.Photos() {
		printWarning("%d photos are stuck in a constraint cycle", g.Photos()-covered)
	}
	return nil
}
