package solve

import (
	"testing"

	"github.com/matzehuels/pagestack/pkg/constraint"
)

func build(t *testing.T, n int, edges [][2]int) *constraint.Graph {
	t.Helper()
	g, err := constraint.New(n)
	if err != nil {
		t.Fatalf("New(%d) error: %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d) error: %v", e[0], e[1], err)
		}
	}
	return g
}

func TestPages_InvalidCapacity(t *testing.T) {
	g := build(t, 3, nil)
	for _, m := range []int{0, -1, -100} {
		if _, err := Pages(g, m); err != ErrInvalidCapacity {
			t.Errorf("Pages(g, %d) error = %v, want ErrInvalidCapacity", m, err)
		}
	}
}

func TestPages_Infeasible(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"two cycle", 2, [][2]int{{1, 2}, {2, 1}}},
		{"triangle", 4, [][2]int{{1, 2}, {2, 3}, {3, 1}}},
		{"four cycle", 4, [][2]int{{1, 4}, {4, 2}, {2, 3}, {3, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.n, tt.edges)
			for _, m := range []int{1, 2, 5} {
				if _, err := Pages(g, m); err != ErrInfeasible {
					t.Errorf("Pages(g, %d) error = %v, want ErrInfeasible", m, err)
				}
			}
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		capacity int
		edges    [][2]int
		want     int
	}{
		{"empty graph", 0, 2, nil, 0},
		{"no constraints", 3, 2, nil, 2},
		{"no constraints eleven", 11, 2, nil, 6},
		{"chain of three", 3, 2, [][2]int{{1, 2}, {2, 3}}, 3},
		{"two blockers one shared target", 4, 2, [][2]int{{1, 3}, {2, 3}}, 2},
		{"fan in then out", 4, 2, [][2]int{{2, 1}, {3, 1}, {1, 4}}, 3},
		{"wide fan in then out", 5, 2, [][2]int{{2, 1}, {3, 1}, {4, 1}, {1, 5}}, 4},
		{"chain with slack", 8, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, 5},
		{"capacity one", 6, 1, [][2]int{{1, 2}, {3, 4}}, 6},
		{"single photo", 1, 3, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.n, tt.edges)
			got, err := Pages(g, tt.capacity)
			if err != nil {
				t.Fatalf("Pages() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pages() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestPages_Tournament forces deep combinatorial branching: a transitive
// tournament on 6 photos plus 9 free ones.
func TestPages_Tournament(t *testing.T) {
	var edges [][2]int
	for u := 2; u <= 6; u++ {
		for v := 1; v < u; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := build(t, 15, edges)
	got, err := Pages(g, 3)
	if err != nil {
		t.Fatalf("Pages() error: %v", err)
	}
	if got != 6 {
		t.Errorf("Pages() = %d, want 6", got)
	}
}

func TestPages_DoesNotMutateInput(t *testing.T) {
	g := build(t, 4, [][2]int{{1, 3}, {2, 3}})
	if _, err := Pages(g, 2); err != nil {
		t.Fatalf("Pages() error: %v", err)
	}
	if g.Photos() != 4 || g.Edges() != 2 {
		t.Errorf("input graph mutated: %d photos, %d edges", g.Photos(), g.Edges())
	}
}

// TestPages_CapacityMonotonic checks that more room per page never needs
// more pages.
func TestPages_CapacityMonotonic(t *testing.T) {
	g := build(t, 7, [][2]int{{1, 3}, {2, 3}, {3, 4}, {5, 6}})
	prev := 8
	for m := 1; m <= 7; m++ {
		got, err := Pages(g, m)
		if err != nil {
			t.Fatalf("Pages(g, %d) error: %v", m, err)
		}
		if got > prev {
			t.Errorf("Pages(g, %d) = %d, more than Pages(g, %d) = %d", m, got, m-1, prev)
		}
		prev = got
	}
}

// TestPages_ZeroEdgeCeiling checks the unconstrained closed form over a
// range of sizes and capacities.
func TestPages_ZeroEdgeCeiling(t *testing.T) {
	for n := 0; n <= 9; n++ {
		for m := 1; m <= 4; m++ {
			g := build(t, n, nil)
			got, err := Pages(g, m)
			if err != nil {
				t.Fatalf("Pages(n=%d, m=%d) error: %v", n, m, err)
			}
			if want := (n + m - 1) / m; got != want {
				t.Errorf("Pages(n=%d, m=%d) = %d, want %d", n, m, got, want)
			}
		}
	}
}

func TestPagesWithStats(t *testing.T) {
	// Roots {1,2,4} with capacity 2 branches over C(3,2) = 3 subsets.
	g := build(t, 4, [][2]int{{1, 3}, {2, 3}})
	pages, stats, err := PagesWithStats(g, 2)
	if err != nil {
		t.Fatalf("PagesWithStats() error: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if stats.Branches < 3 {
		t.Errorf("stats.Branches = %d, want >= 3", stats.Branches)
	}
	if stats.MaxReady != 3 {
		t.Errorf("stats.MaxReady = %d, want 3", stats.MaxReady)
	}
}

func TestPagesWithStats_ShortcutsOnSparse(t *testing.T) {
	g := build(t, 10, [][2]int{{1, 2}})
	pages, stats, err := PagesWithStats(g, 3)
	if err != nil {
		t.Fatalf("PagesWithStats() error: %v", err)
	}
	if pages != 4 {
		t.Errorf("pages = %d, want 4", pages)
	}
	if stats.Shortcuts == 0 {
		t.Error("stats.Shortcuts = 0, want at least one density shortcut")
	}
	if stats.Branches != 0 {
		t.Errorf("stats.Branches = %d, want 0", stats.Branches)
	}
}
