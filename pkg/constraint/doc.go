// Package constraint provides the precedence graph over photo identifiers
// that drives page planning.
//
// # Overview
//
// Pagestack places photos onto fixed-capacity album pages under precedence
// constraints: an edge u→v means photo u must be resolved before photo v is
// eligible for a page. This package stores that relation as successor lists
// over the dense identifier range 1..n and answers the queries the solver
// needs: which photos are currently unblocked ([Graph.Roots]), which of
// those are fully unconstrained ([Graph.Isolated]), and whether a valid
// placement order exists at all ([Graph.IsAcyclic]).
//
// # Basic Usage
//
// Create a graph with [New] and add constraints with [Graph.AddEdge]:
//
//	g, err := constraint.New(4)
//	if err != nil { ... }
//	g.AddEdge(1, 3)
//	g.AddEdge(2, 3)
//
// The solver consumes a graph destructively: photos are removed as they are
// placed. [Graph.Clone] produces branch-local copies in O(V) by sharing the
// immutable successor lists, so exploring alternative placements never
// contaminates sibling branches.
//
// # Feasibility
//
// A cyclic constraint graph admits no placement order. [Graph.IsAcyclic]
// detects this by repeatedly stripping roots from a working copy; a
// non-empty copy without roots is deadlocked and therefore cyclic.
//
// # Concurrency
//
// Graph is not safe for concurrent use. The solver is strictly sequential
// and each recursive branch owns its copy, so no synchronization is needed.
package constraint
