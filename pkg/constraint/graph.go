package constraint

import "errors"

var (
	// ErrInvalidPhotoCount is returned by [New] when the photo count is negative.
	ErrInvalidPhotoCount = errors.New("photo count must not be negative")

	// ErrPhotoOutOfRange is returned by [Graph.AddEdge] when an endpoint is
	// outside the identifier range [1, n] the graph was created with.
	ErrPhotoOutOfRange = errors.New("photo identifier out of range")
)

// Graph is the precedence relation over photo identifiers.
//
// Photos are identified by the integers 1..n. Every identifier in that range
// is a member of the graph until it is removed, even when no constraint
// touches it (isolated photo). An edge u→v means photo u must be placed on a
// page no later than the page where v becomes eligible.
//
// Successor lists are fixed once building is done; the solver only ever
// removes vertices. Removal marks the vertex absent and leaves references to
// it in other successor lists untouched - a removed photo is by definition a
// former root, so surviving references are dangling and root computation
// ignores them. This makes [Graph.Clone] cheap: clones share the successor
// lists and copy only the presence set.
//
// The zero value is not usable - use [New]. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	succ    [][]int // successor lists indexed by photo ID, immutable after build
	present []bool  // membership indexed by photo ID
	photos  int     // number of present photos
	edges   int     // number of edges with a present source
}

// New creates a graph over the photo identifiers 1..n with no constraints.
// Returns ErrInvalidPhotoCount if n is negative. n == 0 yields a valid
// empty graph.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrInvalidPhotoCount
	}
	g := &Graph{
		succ:    make([][]int, n+1),
		present: make([]bool, n+1),
		photos:  n,
	}
	for id := 1; id <= n; id++ {
		g.present[id] = true
	}
	return g, nil
}

// AddEdge records the constraint u→v (u precedes v). Both endpoints must be
// in [1, n]; otherwise ErrPhotoOutOfRange is returned. Parallel edges are
// allowed and behave like a single constraint.
//
// AddEdge must not be called after vertices have been removed.
func (g *Graph) AddEdge(u, v int) error {
	if u < 1 || u >= len(g.succ) {
		return ErrPhotoOutOfRange
	}
	if v < 1 || v >= len(g.succ) {
		return ErrPhotoOutOfRange
	}
	g.succ[u] = append(g.succ[u], v)
	g.edges++
	return nil
}

// Photos returns the number of photos currently in the graph.
func (g *Graph) Photos() int { return g.photos }

// Edges returns the number of constraints whose source photo is still in the
// graph. Constraints pointing at removed photos are included; they are inert
// but still stored on their source.
func (g *Graph) Edges() int { return g.edges }

// Contains reports whether the photo is still in the graph.
func (g *Graph) Contains(id int) bool {
	return id >= 1 && id < len(g.present) && g.present[id]
}

// Successors returns the successor list of the photo, or nil if the photo
// was removed or never existed. The returned slice is shared - treat it as
// read-only.
func (g *Graph) Successors(id int) []int {
	if !g.Contains(id) {
		return nil
	}
	return g.succ[id]
}

// IDs returns the identifiers of all present photos in ascending order.
func (g *Graph) IDs() []int {
	ids := make([]int, 0, g.photos)
	for id := 1; id < len(g.present); id++ {
		if g.present[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Roots returns, in ascending order, the photos that are not the target of
// any constraint from a present photo. These are the photos eligible for the
// next page. Constraints held by removed photos do not block anything.
func (g *Graph) Roots() []int {
	blocked := make([]bool, len(g.present))
	for u := 1; u < len(g.succ); u++ {
		if !g.present[u] {
			continue
		}
		for _, v := range g.succ[u] {
			blocked[v] = true
		}
	}
	roots := make([]int, 0, g.photos)
	for id := 1; id < len(g.present); id++ {
		if g.present[id] && !blocked[id] {
			roots = append(roots, id)
		}
	}
	return roots
}

// Isolated returns, in ascending order, the roots that also have no outgoing
// constraints. Placing an isolated photo never unblocks anything, so it can
// fill spare page capacity at any time.
func (g *Graph) Isolated() []int {
	var isolated []int
	for _, id := range g.Roots() {
		if len(g.succ[id]) == 0 {
			isolated = append(isolated, id)
		}
	}
	return isolated
}

// Remove deletes the photo from the graph. Its successor list is kept so
// clones sharing the storage stay valid; the list no longer counts towards
// [Graph.Edges] and no longer blocks root computation. Removing an absent
// photo is a no-op.
func (g *Graph) Remove(id int) {
	if !g.Contains(id) {
		return
	}
	g.present[id] = false
	g.photos--
	g.edges -= len(g.succ[id])
}

// Clone returns an independent copy of the graph. The successor lists are
// shared structurally; only the presence set and counters are copied, so a
// clone costs O(V) regardless of edge count.
func (g *Graph) Clone() *Graph {
	present := make([]bool, len(g.present))
	copy(present, g.present)
	return &Graph{
		succ:    g.succ,
		present: present,
		photos:  g.photos,
		edges:   g.edges,
	}
}

// IsAcyclic reports whether the constraint graph contains no directed cycle.
//
// It repeatedly strips the roots of a working copy. If the copy still has
// photos but no roots, every remaining photo is blocked by another surviving
// photo, which is only possible on a cycle. Each pass removes at least one
// photo or terminates, so the check finishes in O(V·(V+E)).
func (g *Graph) IsAcyclic() bool {
	work := g.Clone()
	for work.photos > 0 {
		roots := work.Roots()
		if len(roots) == 0 {
			return false
		}
		for _, id := range roots {
			work.Remove(id)
		}
	}
	return true
}
