package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/pagestack/pkg/constraint"
)

func build(t *testing.T, n int, edges [][2]int) *constraint.Graph {
	t.Helper()
	g, err := constraint.New(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := build(t, 3, [][2]int{{1, 2}, {2, 3}})
	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph album {",
		"rankdir=TB;",
		`1 [label="1"];`,
		`2 [label="2"];`,
		`3 [label="3"];`,
		"1 -> 2;",
		"2 -> 3;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g := build(t, 2, [][2]int{{1, 2}})
	dot := ToDOT(g, Options{Detailed: true})

	if !strings.Contains(dot, `label="1\nwave: 1"`) {
		t.Errorf("detailed DOT should include wave labels:\n%s", dot)
	}
	if !strings.Contains(dot, `label="2\nwave: 2"`) {
		t.Errorf("detailed DOT should place 2 in the second wave:\n%s", dot)
	}
}

func TestToDOT_SameRank(t *testing.T) {
	// Photos 1 and 2 are unconstrained and share the first wave.
	g := build(t, 3, [][2]int{{1, 3}})
	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "{ rank=same; 1; 2; }") {
		t.Errorf("DOT should rank wave members together:\n%s", dot)
	}
}

func TestToDOT_SkipsDanglingTargets(t *testing.T) {
	g := build(t, 3, [][2]int{{1, 2}})
	g.Remove(2)
	dot := ToDOT(g, Options{})

	if strings.Contains(dot, "1 -> 2;") {
		t.Errorf("DOT should omit edges to removed photos:\n%s", dot)
	}
}

func TestPlanToDOT(t *testing.T) {
	g := build(t, 4, [][2]int{{1, 3}, {2, 4}})
	plan := [][]int{{1, 2}, {3, 4}}
	dot := PlanToDOT(g, plan, Options{})

	for _, want := range []string{
		"subgraph cluster_page1 {",
		`label="page 1";`,
		"subgraph cluster_page2 {",
		`label="page 2";`,
		"1 -> 3;",
		"2 -> 4;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("plan DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(svg))

	if !strings.Contains(got, `viewBox="0 0 100.00 200.00"`) {
		t.Errorf("viewBox not normalized: %s", got)
	}
	if !strings.Contains(got, `width="100" height="200"`) {
		t.Errorf("dimensions not rewritten: %s", got)
	}

	// SVG without a viewBox passes through untouched.
	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}
