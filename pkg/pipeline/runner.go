package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pagestack/pkg/album"
	"github.com/matzehuels/pagestack/pkg/cache"
	"github.com/matzehuels/pagestack/pkg/observability"
	"github.com/matzehuels/pagestack/pkg/solve"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// solveRecord is the cached payload for a solve result.
type solveRecord struct {
	Pages    int  `json:"pages"`
	Feasible bool `json:"feasible"`
}

// planRecord is the cached payload for a page assignment.
type planRecord struct {
	Plan [][]int `json:"plan"`
}

// Execute runs the complete parse → solve → plan pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID: uuid.NewString(),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	in, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Instance = in
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.PhotoCount = in.Photos
	result.Stats.ConstraintCount = len(in.Constraints)

	canonical, err := in.Canonical()
	if err != nil {
		return nil, fmt.Errorf("encode instance: %w", err)
	}
	result.InstanceHash = cache.Hash(canonical)

	r.Logger.Info("parsed instance",
		"photos", in.Photos,
		"capacity", in.Capacity,
		"constraints", len(in.Constraints),
		"hash", cache.Short(result.InstanceHash),
		"duration", result.Stats.ParseTime)

	// Stage 2: Solve
	solveStart := time.Now()
	pages, feasible, solveHit, stats, err := r.solveWithCacheInfo(ctx, in, result.InstanceHash, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Pages = pages
	result.Feasible = feasible
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.Solve = stats
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved instance",
		"pages", pages,
		"feasible", feasible,
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	// Stage 3: Plan (optional)
	if opts.WithPlan && feasible {
		planStart := time.Now()
		plan, planHit, err := r.planWithCacheInfo(ctx, in, result.InstanceHash, opts)
		if err != nil {
			return nil, fmt.Errorf("plan: %w", err)
		}
		result.Plan = plan
		result.Stats.PlanTime = time.Since(planStart)
		result.CacheInfo.PlanHit = planHit

		r.Logger.Info("planned pages",
			"pages", len(plan),
			"cached", planHit,
			"duration", result.Stats.PlanTime)
	}

	return result, nil
}

// Parse loads and validates the album instance from opts.
// An in-memory instance takes precedence over a file path.
func (r *Runner) Parse(ctx context.Context, opts Options) (*album.Instance, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = "auto"
	}
	source := opts.Path
	if opts.Instance != nil {
		source = "memory"
	}

	start := time.Now()
	observability.Solver().OnParseStart(ctx, format, source)

	in, err := r.loadInstance(opts)
	photos := 0
	if in != nil {
		photos = in.Photos
	}
	observability.Solver().OnParseComplete(ctx, format, source, photos, time.Since(start), err)
	return in, err
}

func (r *Runner) loadInstance(opts Options) (*album.Instance, error) {
	var in *album.Instance

	switch {
	case opts.Instance != nil:
		// Copy so capacity overrides don't mutate the caller's instance.
		clone := *opts.Instance
		in = &clone
	case opts.Format != "":
		f, ok := album.FormatByType(opts.Format)
		if !ok {
			return nil, fmt.Errorf("unknown format: %q", opts.Format)
		}
		loaded, err := album.LoadAs(opts.Path, f)
		if err != nil {
			return nil, err
		}
		in = loaded
	default:
		loaded, err := album.Load(opts.Path)
		if err != nil {
			return nil, err
		}
		in = loaded
	}

	if opts.Capacity > 0 {
		in.Capacity = opts.Capacity
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// Solve computes the minimum page count with caching.
// The boolean result reports feasibility, not cache status.
func (r *Runner) Solve(ctx context.Context, in *album.Instance, opts Options) (int, bool, error) {
	canonical, err := in.Canonical()
	if err != nil {
		return 0, false, err
	}
	pages, feasible, _, _, err := r.solveWithCacheInfo(ctx, in, cache.Hash(canonical), opts)
	return pages, feasible, err
}

func (r *Runner) solveWithCacheInfo(ctx context.Context, in *album.Instance, instanceHash string, opts Options) (int, bool, bool, solve.Stats, error) {
	key := r.Keyer.SolveKey(instanceHash)

	// Try cache first (unless disabled or refresh requested)
	if !opts.NoCache && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rec solveRecord
			if err := json.Unmarshal(data, &rec); err == nil {
				observability.Cache().OnCacheHit(ctx, "solve")
				return rec.Pages, rec.Feasible, true, solve.Stats{}, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	g, err := in.Graph()
	if err != nil {
		return 0, false, false, solve.Stats{}, err
	}

	start := time.Now()
	observability.Solver().OnSolveStart(ctx, g.Photos(), in.Capacity)

	pages, stats, err := solve.PagesWithStats(g, in.Capacity)
	feasible := true
	if errors.Is(err, solve.ErrInfeasible) {
		pages, feasible, err = 0, false, nil
	}
	observability.Solver().OnSolveComplete(ctx, pages, time.Since(start), err)
	if err != nil {
		return 0, false, false, solve.Stats{}, err
	}

	if !opts.NoCache {
		if data, err := json.Marshal(solveRecord{Pages: pages, Feasible: feasible}); err == nil {
			if err := r.Cache.Set(ctx, key, data, opts.TTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "solve", len(data))
			}
		}
	}

	return pages, feasible, false, stats, nil
}

// Plan computes a page assignment with caching.
// The instance must be feasible; infeasible instances return an error.
func (r *Runner) Plan(ctx context.Context, in *album.Instance, opts Options) ([][]int, error) {
	canonical, err := in.Canonical()
	if err != nil {
		return nil, err
	}
	plan, _, err := r.planWithCacheInfo(ctx, in, cache.Hash(canonical), opts)
	return plan, err
}

func (r *Runner) planWithCacheInfo(ctx context.Context, in *album.Instance, instanceHash string, opts Options) ([][]int, bool, error) {
	key := r.Keyer.PlanKey(instanceHash)

	if !opts.NoCache && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rec planRecord
			if err := json.Unmarshal(data, &rec); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return rec.Plan, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	g, err := in.Graph()
	if err != nil {
		return nil, false, err
	}

	plan, err := solve.Plan(g, in.Capacity)
	if err != nil {
		return nil, false, err
	}

	if !opts.NoCache {
		if data, err := json.Marshal(planRecord{Plan: plan}); err == nil {
			if err := r.Cache.Set(ctx, key, data, opts.TTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "plan", len(data))
			}
		}
	}

	return plan, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
