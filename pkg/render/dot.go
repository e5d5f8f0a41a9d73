package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pagestack/pkg/constraint"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the precedence wave index in node labels.
	// When false, only the photo ID is shown.
	Detailed bool
}

// ToDOT converts a constraint graph to Graphviz DOT format.
// Photos in the same precedence wave share a rank so the drawing reads
// top to bottom in placement order. The resulting DOT string can be
// rendered using [SVG].
func ToDOT(g *constraint.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph album {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for wave, ids := range constraint.Layers(g) {
		for _, id := range ids {
			fmt.Fprintf(&buf, "  %d [label=%q];\n", id, nodeLabel(id, wave, opts.Detailed))
		}
		writeRank(&buf, ids)
	}

	buf.WriteString("\n")
	writeEdges(&buf, g, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

// PlanToDOT renders a page assignment as one cluster per page.
// The plan must cover exactly the photos present in g.
func PlanToDOT(g *constraint.Graph, plan [][]int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph album {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.7;\n")
	buf.WriteString("\n")

	for i, page := range plan {
		fmt.Fprintf(&buf, "  subgraph cluster_page%d {\n", i+1)
		fmt.Fprintf(&buf, "    label=\"page %d\";\n", i+1)
		buf.WriteString("    style=rounded;\n")
		buf.WriteString("    color=grey;\n")
		for _, id := range page {
			fmt.Fprintf(&buf, "    %d [label=%q];\n", id, nodeLabel(id, i, opts.Detailed))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	writeEdges(&buf, g, "  ")

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(id, wave int, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%d\nwave: %d", id, wave+1)
}

func writeRank(buf *bytes.Buffer, ids []int) {
	if len(ids) < 2 {
		return
	}
	buf.WriteString("  { rank=same;")
	for _, id := range ids {
		fmt.Fprintf(buf, " %d;", id)
	}
	buf.WriteString(" }\n")
}

func writeEdges(buf *bytes.Buffer, g *constraint.Graph, indent string) {
	for _, u := range g.IDs() {
		for _, v := range g.Successors(u) {
			if !g.Contains(v) {
				continue
			}
			fmt.Fprintf(buf, "%s%d -> %d;\n", indent, u, v)
		}
	}
}
