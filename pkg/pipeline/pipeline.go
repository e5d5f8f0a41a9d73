// Package pipeline provides the core solve pipeline for Pagestack.
//
// This package implements the complete parse → solve → plan pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Load and validate an album instance from a file or memory
//  2. Solve: Compute the minimum page count under precedence constraints
//  3. Plan: Optionally produce a concrete page assignment
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:     "album.txt",
//	    WithPlan: true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Feasible {
//	    fmt.Println(result.Pages)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagestack/pkg/album"
	"github.com/matzehuels/pagestack/pkg/cache"
	"github.com/matzehuels/pagestack/pkg/solve"
)

// DefaultTTL is how long solve results stay cached. Results are pure
// functions of the instance, so the TTL exists only to bound disk usage.
const DefaultTTL = cache.DefaultTTL

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the solve pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input options. Either Path or Instance must be set; Instance
	// takes precedence when both are present.
	Path     string          `json:"path,omitempty"`
	Format   string          `json:"format,omitempty"` // force input format instead of detecting
	Instance *album.Instance `json:"instance,omitempty"`

	// Capacity overrides the instance's page capacity when positive.
	Capacity int `json:"capacity,omitempty"`

	// WithPlan requests a concrete page assignment alongside the count.
	WithPlan bool `json:"with_plan,omitempty"`

	// NoCache disables cache reads and writes for this run.
	NoCache bool `json:"no_cache,omitempty"`

	// Refresh recomputes the result and overwrites any cached entry.
	Refresh bool `json:"refresh,omitempty"`

	// TTL controls how long results are cached. Zero means DefaultTTL.
	TTL time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run.
	RunID string

	// Instance is the parsed and validated album instance.
	Instance *album.Instance

	// InstanceHash is the content hash of the canonical instance encoding.
	InstanceHash string

	// Pages is the minimum number of pages. Zero when infeasible.
	Pages int

	// Feasible reports whether the constraints admit any ordering.
	Feasible bool

	// Plan is the page assignment, present only when requested and feasible.
	Plan [][]int

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PhotoCount      int
	ConstraintCount int
	ParseTime       time.Duration
	SolveTime       time.Duration
	PlanTime        time.Duration
	Solve           solve.Stats
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit bool // Whether the page count came from cache
	PlanHit  bool // Whether the plan came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && o.Instance == nil {
		return fmt.Errorf("path or instance is required")
	}
	if o.Capacity < 0 {
		return fmt.Errorf("capacity override must be positive")
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
