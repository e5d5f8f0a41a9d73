package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/pipeline"
	"github.com/matzehuels/pagestack/pkg/render"
)

// renderCommand creates the render command for visual output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output      string
		format      string
		inputFormat string
		withPlan    bool
		detailed    bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "render [album file]",
		Short: "Render the constraint graph as DOT, SVG, PDF, or PNG",
		Long: `Render the constraint graph as DOT, SVG, PDF, or PNG.

Photos are drawn as boxes arranged in precedence waves from top to
bottom, with arrows for constraints. With --plan the instance is solved
first and photos are grouped into page clusters.

SVG rendering happens in-process. PDF and PNG conversion requires
librsvg (rsvg-convert) to be installed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "dot", "svg", "pdf", "png":
			default:
				return fmt.Errorf("invalid format: %q (must be one of: dot, svg, pdf, png)", format)
			}
			return c.runRender(cmd.Context(), args[0], renderParams{
				output:      output,
				format:      format,
				inputFormat: inputFormat,
				withPlan:    withPlan,
				detailed:    detailed,
				noCache:     noCache,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot, svg (default), pdf, png")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "force input format: text, toml, json")
	cmd.Flags().BoolVar(&withPlan, "plan", false, "solve the instance and group photos into page clusters")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include wave numbers in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

type renderParams struct {
	output      string
	format      string
	inputFormat string
	withPlan    bool
	detailed    bool
	noCache     bool
}

// runRender builds the DOT source, renders it, and writes the output file.
func (c *CLI) runRender(ctx context.Context, input string, p renderParams) error {
	in, err := loadInstance(input, p.inputFormat)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	g, err := in.Graph()
	if err != nil {
		return err
	}

	opts := render.Options{Detailed: p.detailed}
	var dot string

	if p.withPlan {
		runner, err := c.newRunner(ctx, p.noCache)
		if err != nil {
			return fmt.Errorf("initialize runner: %w", err)
		}
		defer runner.Close()

		result, err := runner.Execute(ctx, pipeline.Options{
			Instance: in,
			WithPlan: true,
			NoCache:  p.noCache,
			Logger:   c.Logger,
		})
		if err != nil {
			return fmt.Errorf("plan %s: %w", input, err)
		}
		if !result.Feasible {
			printWarning("Impossible")
			printDetail("The precedence constraints contain a cycle, rendering the raw graph")
			dot = render.ToDOT(g, opts)
		} else {
			dot = render.PlanToDOT(g, result.Plan, opts)
		}
	} else {
		dot = render.ToDOT(g, opts)
	}

	var data []byte
	if p.format == "dot" {
		data = []byte(dot)
	} else {
		spinner := newSpinnerWithContext(ctx, "Rendering...")
		spinner.Start()

		svg, err := render.SVG(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render svg: %w", err)
		}
		if p.format != "svg" {
			spinner.SetMessage(fmt.Sprintf("Converting to %s...", p.format))
		}
		data, err = convertFormat(svg, p.format)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
	}

	out := p.output
	if out == "" {
		out = outputName(input, p.format)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s", p.format)
	printFile(out)
	return nil
}

// convertFormat converts rendered SVG into the requested output format.
func convertFormat(svg []byte, format string) ([]byte, error) {
	switch format {
	case "svg":
		return svg, nil
	case "pdf":
		return render.ToPDF(svg)
	case "png":
		return render.ToPNG(svg, 2.0)
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}

// outputName derives an output filename from the input path and format.
func outputName(input, format string) string {
	base := input
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base + "." + format
}
