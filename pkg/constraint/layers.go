package constraint

import "slices"

// Layers groups the present photos into topological strata.
//
// Stratum 0 holds the current roots; each later stratum holds the photos
// whose last unresolved predecessor sits in the stratum before it. Photos in
// the same stratum carry no constraints between each other, so a stratum is
// exactly the set of photos that become eligible together.
//
// Layers performs a topological traversal (Kahn's algorithm) over the
// present photos:
//  1. Seed a queue with every photo of in-degree zero
//  2. Drain the queue a wave at a time, decrementing successor in-degrees
//  3. Photos reaching zero in-degree form the next wave
//
// Layers assumes the graph is acyclic. Photos on a cycle never reach zero
// in-degree and are silently absent from the result - run [Graph.IsAcyclic]
// first. The graph is not modified. Time complexity is O(V+E).
func Layers(g *Graph) [][]int {
	inDegree := make([]int, len(g.present))
	for u := 1; u < len(g.succ); u++ {
		if !g.present[u] {
			continue
		}
		for _, v := range g.succ[u] {
			if g.Contains(v) {
				inDegree[v]++
			}
		}
	}

	var wave []int
	for id := 1; id < len(g.present); id++ {
		if g.present[id] && inDegree[id] == 0 {
			wave = append(wave, id)
		}
	}

	var layers [][]int
	for len(wave) > 0 {
		layers = append(layers, wave)
		var next []int
		for _, u := range wave {
			for _, v := range g.succ[u] {
				if !g.Contains(v) {
					continue
				}
				inDegree[v]--
				if inDegree[v] == 0 {
					next = append(next, v)
				}
			}
		}
		slices.Sort(next)
		wave = next
	}
	return layers
}
