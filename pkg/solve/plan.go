package solve

import (
	"slices"

	"github.com/matzehuels/pagestack/pkg/constraint"
	"github.com/matzehuels/pagestack/pkg/solve/comb"
)

// Plan returns a concrete page assignment achieving the minimum page count:
// plan[i] lists the photos on page i+1, each page sorted by photo ID. The
// plan length always equals what [Pages] reports for the same input.
//
// Returns ErrInvalidCapacity if capacity < 1 and ErrInfeasible if g is
// cyclic. The caller's graph is not modified.
//
// Plan explores the same branch space as [Pages]; where Pages answers a
// sparse subproblem with the density bound alone, Plan still has to lay the
// photos out and does so greedily (see fillSparse), which keeps the two in
// agreement without recursing.
func Plan(g *constraint.Graph, capacity int) ([][]int, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !g.IsAcyclic() {
		return nil, ErrInfeasible
	}
	return buildPlan(g.Clone(), capacity), nil
}

func buildPlan(g *constraint.Graph, m int) [][]int {
	n := g.Photos()
	if n == 0 {
		return nil
	}

	if m == 1 {
		plan := make([][]int, 0, n)
		for g.Photos() > 0 {
			for _, id := range g.Roots() {
				g.Remove(id)
				plan = append(plan, []int{id})
			}
		}
		return plan
	}

	if n >= m*(g.Edges()+1) {
		return fillSparse(g, m)
	}

	ready := g.Roots()
	if len(ready) <= m {
		for _, id := range ready {
			g.Remove(id)
		}
		rest := buildPlan(g, m)
		return append([][]int{ready}, rest...)
	}

	var best [][]int
	for _, pick := range comb.Generate(len(ready), m, 0) {
		page := make([]int, m)
		for j, i := range pick {
			page[j] = ready[i]
		}
		sub := g.Clone()
		for _, id := range page {
			sub.Remove(id)
		}
		candidate := append([][]int{page}, buildPlan(sub, m)...)
		if best == nil || len(candidate) < len(best) {
			best = candidate
		}
	}
	return best
}

// fillSparse lays out a sparse graph (|V| ≥ m·(|E|+1)) in ⌈|V|/m⌉ pages.
//
// It fills each page to capacity with eligible photos, taking roots that
// still have outgoing constraints before isolated ones. While any constraint
// survives, some root has an outgoing edge (follow any edge's source up its
// predecessors to a root), so every full page retires at least one
// constraint and the density bound keeps holding; once no constraints
// remain, the leftovers are unordered and chunk straight into pages.
func fillSparse(g *constraint.Graph, m int) [][]int {
	var plan [][]int
	for g.Photos() > 0 {
		ready := g.Roots()
		isolated := make(map[int]bool)
		for _, id := range g.Isolated() {
			isolated[id] = true
		}
		slices.SortStableFunc(ready, func(a, b int) int {
			switch {
			case !isolated[a] && isolated[b]:
				return -1
			case isolated[a] && !isolated[b]:
				return 1
			default:
				return a - b
			}
		})
		page := ready[:min(m, len(ready))]
		for _, id := range page {
			g.Remove(id)
		}
		page = slices.Clone(page)
		slices.Sort(page)
		plan = append(plan, page)
	}
	return plan
}
