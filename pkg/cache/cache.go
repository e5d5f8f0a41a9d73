// Package cache provides result caching for solved pagination instances.
//
// Solving is deterministic but potentially expensive (the search is
// exponential in the worst case), so outcomes are cached keyed by a hash of
// the canonical instance. Backends:
//   - file: directory-based cache for CLI usage (default)
//   - null: no-op cache for --no-cache and tests
//   - redis: shared cache for serve deployments
//   - mongo: document-store cache for serve deployments
//
// Keys are produced by a [Keyer] so multi-tenant deployments can prefix
// namespaces without touching call sites.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long solve results stay cached. The computation is pure,
// so the TTL only bounds disk growth, not staleness.
const DefaultTTL = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the different cached artifact types.
type Keyer interface {
	// SolveKey generates the key for a solve outcome, from the hash of the
	// canonical instance encoding (which includes the capacity).
	SolveKey(instanceHash string) string

	// PlanKey generates the key for a page assignment.
	PlanKey(instanceHash string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SolveKey generates a key for a solve outcome.
func (k *DefaultKeyer) SolveKey(instanceHash string) string {
	return "solve:" + instanceHash
}

// PlanKey generates a key for a page assignment.
func (k *DefaultKeyer) PlanKey(instanceHash string) string {
	return "plan:" + instanceHash
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g. to
// separate tenants sharing one redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolveKey generates a prefixed key for a solve outcome.
func (k *ScopedKeyer) SolveKey(instanceHash string) string {
	return k.prefix + k.inner.SolveKey(instanceHash)
}

// PlanKey generates a prefixed key for a page assignment.
func (k *ScopedKeyer) PlanKey(instanceHash string) string {
	return k.prefix + k.inner.PlanKey(instanceHash)
}
