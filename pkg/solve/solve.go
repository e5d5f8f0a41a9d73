// Package solve computes the minimum number of album pages needed to place
// a set of photos under precedence constraints.
//
// # Overview
//
// Given a [constraint.Graph] and a page capacity m, [Pages] returns the
// smallest number of pages such that every photo lands on exactly one page,
// no page holds more than m photos, and a photo is only placed once all of
// its predecessors have been placed on earlier pages. [Plan] additionally
// returns one concrete assignment achieving that minimum.
//
// # Algorithm
//
// The search recurses over graph snapshots:
//
//   - An empty graph needs 0 pages; capacity 1 degenerates to one photo per
//     page.
//   - When photos vastly outnumber constraints (|V| ≥ m·(|E|+1)) enough
//     photos are simultaneously unblocked to fill every page, so the
//     theoretical minimum ⌈|V|/m⌉ is returned without recursing.
//   - When every currently eligible photo fits on one page, placing them all
//     at once is never worse than delaying any of them: roots carry no
//     constraints between each other, and delaying one only defers whatever
//     it unblocks.
//   - Otherwise every page-sized subset of the eligible photos is tried on a
//     branch-local graph copy and the best branch wins. This is the
//     exponential worst case, C(|ready|, m) branches wide.
//
// Recursion depth is bounded by the page count, so the stack stays linear in
// the photo count; the exponential cost lives in branch breadth, not depth.
//
// # Feasibility
//
// A cyclic constraint graph admits no placement at all. [Pages] and [Plan]
// reject such graphs with [ErrInfeasible] before searching. A non-positive
// capacity is a configuration error ([ErrInvalidCapacity]), checked before
// any graph analysis.
package solve

import (
	"errors"

	"github.com/matzehuels/pagestack/pkg/constraint"
	"github.com/matzehuels/pagestack/pkg/solve/comb"
)

var (
	// ErrInvalidCapacity is returned when the page capacity is not positive.
	// This is a configuration error, not a property of the graph.
	ErrInvalidCapacity = errors.New("page capacity must be positive")

	// ErrInfeasible is returned when the constraint graph contains a cycle,
	// so no placement order exists regardless of capacity.
	ErrInfeasible = errors.New("constraint graph contains a cycle")
)

// Stats describes the work a solve performed.
type Stats struct {
	// Branches counts the page-sized subsets tried at combinatorial
	// branch points.
	Branches int
	// Shortcuts counts the subproblems answered by the density bound
	// without recursing.
	Shortcuts int
	// MaxReady is the largest eligible set seen at a branch point.
	MaxReady int
}

// Pages returns the minimum number of pages of the given capacity needed to
// place every photo in g.
//
// Returns ErrInvalidCapacity if capacity < 1 and ErrInfeasible if g is
// cyclic. The caller's graph is not modified.
func Pages(g *constraint.Graph, capacity int) (int, error) {
	pages, _, err := PagesWithStats(g, capacity)
	return pages, err
}

// PagesWithStats is [Pages] with search statistics for diagnostics.
func PagesWithStats(g *constraint.Graph, capacity int) (int, Stats, error) {
	if capacity < 1 {
		return 0, Stats{}, ErrInvalidCapacity
	}
	if !g.IsAcyclic() {
		return 0, Stats{}, ErrInfeasible
	}
	s := &solver{capacity: capacity}
	pages := s.minPages(g.Clone())
	return pages, s.stats, nil
}

// solver carries the fixed capacity and accumulates statistics across the
// recursion.
type solver struct {
	capacity int
	stats    Stats
}

// minPages is the recursive search. It owns g and consumes it destructively;
// only the combinatorial branch clones, since siblings there must not see
// each other's removals.
func (s *solver) minPages(g *constraint.Graph) int {
	n := g.Photos()
	if n == 0 {
		return 0
	}
	m := s.capacity
	if m == 1 {
		return n
	}

	// Density shortcut: with this few constraints there are always enough
	// unblocked photos to fill pages to capacity, so the theoretical
	// minimum is achievable.
	if n >= m*(g.Edges()+1) {
		s.stats.Shortcuts++
		return (n + m - 1) / m
	}

	ready := g.Roots()
	if len(ready) <= m {
		for _, id := range ready {
			g.Remove(id)
		}
		return 1 + s.minPages(g)
	}

	if len(ready) > s.stats.MaxReady {
		s.stats.MaxReady = len(ready)
	}

	// One photo per page is always feasible, so n bounds every branch.
	best := n
	for _, pick := range comb.Generate(len(ready), m, 0) {
		s.stats.Branches++
		sub := g.Clone()
		for _, i := range pick {
			sub.Remove(ready[i])
		}
		if pages := 1 + s.minPages(sub); pages < best {
			best = pages
		}
	}
	return best
}
