package album

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/matzehuels/pagestack/pkg/constraint"
	"github.com/matzehuels/pagestack/pkg/errors"
)

// Instance describes one pagination problem: how many photos there are, how
// many fit on a page, and which photos must precede which.
//
// Photos are identified by the integers 1..Photos. A constraint [u, v]
// requires photo u to be placed before photo v becomes eligible.
type Instance struct {
	Photos      int      `json:"photos" toml:"photos"`
	Capacity    int      `json:"capacity" toml:"capacity"`
	Constraints [][2]int `json:"constraints" toml:"constraints"`
}

// Validate checks the instance for structural problems: a negative photo
// count, a non-positive capacity, or a constraint endpoint outside [1,
// Photos]. The first problem found is returned as a structured error.
func (in *Instance) Validate() error {
	if err := errors.ValidatePhotoCount(in.Photos); err != nil {
		return err
	}
	if err := errors.ValidateCapacity(in.Capacity); err != nil {
		return err
	}
	for _, c := range in.Constraints {
		if err := errors.ValidatePhotoID(c[0], in.Photos); err != nil {
			return err
		}
		if err := errors.ValidatePhotoID(c[1], in.Photos); err != nil {
			return err
		}
	}
	return nil
}

// Graph builds the constraint graph for the instance. Call [Instance.Validate]
// first; out-of-range endpoints surface here as constraint errors otherwise.
func (in *Instance) Graph() (*constraint.Graph, error) {
	g, err := constraint.New(in.Photos)
	if err != nil {
		return nil, err
	}
	for _, c := range in.Constraints {
		if err := g.AddEdge(c[0], c[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Canonical returns a deterministic JSON encoding of the instance, with the
// constraint list sorted, suitable for hashing into cache keys. Two
// instances describing the same problem always produce the same bytes.
func (in *Instance) Canonical() ([]byte, error) {
	c := Instance{
		Photos:      in.Photos,
		Capacity:    in.Capacity,
		Constraints: slices.Clone(in.Constraints),
	}
	slices.SortFunc(c.Constraints, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
