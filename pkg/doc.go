// Package pkg provides the core libraries for Pagestack album planning.
//
// # Overview
//
// Pagestack computes the minimum number of album pages needed to place a set
// of photos when some photos must appear on strictly earlier pages than
// others. The pkg directory is organized into a few main areas:
//
//  1. [constraint] - Precedence graph structure (membership, roots, cycles)
//  2. [solve] - Minimum page count search and concrete page plans
//  3. [album] - Instance model and input formats (text, TOML, JSON)
//  4. [pipeline] - Orchestration (parse → solve → plan) with caching
//  5. [api] - HTTP API around the pipeline
//  6. [render] - Graphviz output for graphs and plans
//
// # Architecture
//
// The typical data flow through Pagestack:
//
//	Album file (text/TOML/JSON)
//	         ↓
//	    [album] package (parse + validate instance)
//	         ↓
//	    [constraint] package (precedence graph)
//	         ↓
//	    [solve] package (minimum pages, page plan)
//	         ↓
//	    CLI / API / SVG output
//
// # Quick Start
//
// Load an instance and compute the minimum page count:
//
//	import (
//	    "github.com/matzehuels/pagestack/pkg/album"
//	    "github.com/matzehuels/pagestack/pkg/solve"
//	)
//
//	// 1. Load and validate the instance
//	in, _ := album.Load("album.txt")
//
//	// 2. Build the precedence graph
//	g, _ := in.Graph()
//
//	// 3. Solve
//	pages, err := solve.Pages(g, in.Capacity)
//	if errors.Is(err, solve.ErrInfeasible) {
//	    fmt.Println("Impossible")
//	} else {
//	    fmt.Println(pages)
//	}
//
// # Main Packages
//
// ## Core Domain Logic
//
// [constraint] - Directed precedence graph over photo IDs. Supports root
// queries, removal with structural sharing on clone, acyclicity checks, and
// precedence wave computation.
//
// [solve] - Exact minimum page search with a density shortcut for sparse
// graphs and combination branching over page candidates. [solve.Plan]
// produces a concrete page assignment using the minimum number of pages.
//
// [solve/comb] - Lexicographic k-combination generation used by the solver's
// branching step.
//
// [album] - The instance model (photo count, page capacity, constraints)
// with pluggable input formats and canonical encoding for cache keys.
//
// ## Infrastructure
//
// [cache] - Cache backends for solve results: file (CLI), Redis and MongoDB
// (server deployments), and a null backend for disabling caching.
//
// [pipeline] - Complete solve pipeline (parse → solve → plan) used by CLI
// and API. Ensures consistent behavior across all entry points.
//
// [errors] - Structured errors with machine-readable codes and input
// validation helpers.
//
// [observability] - Optional instrumentation hooks for solver runs, cache
// operations, and API requests.
//
// ## Surfaces
//
// [api] - HTTP API exposing the pipeline (POST /api/v1/solve).
//
// [render] - Graphviz DOT generation and in-process SVG rendering for
// constraint graphs and page plans.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/solve/...        # Specific package
//
// [constraint]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/constraint
// [solve]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/solve
// [solve/comb]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/solve/comb
// [album]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/album
// [cache]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/observability
// [api]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/api
// [render]: https://pkg.go.dev/github.com/matzehuels/pagestack/pkg/render
package pkg
