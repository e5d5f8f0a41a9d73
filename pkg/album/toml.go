package album

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pagestack/pkg/errors"
)

// TOMLFormat parses TOML instance files:
//
//	photos = 4
//	capacity = 2
//	constraints = [[1, 3], [2, 3]]
type TOMLFormat struct{}

func (f *TOMLFormat) Type() string { return "toml" }

func (f *TOMLFormat) Supports(name string) bool {
	return strings.HasSuffix(name, ".toml")
}

func (f *TOMLFormat) Parse(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	var doc struct {
		Photos      int     `toml:"photos"`
		Capacity    int     `toml:"capacity"`
		Constraints [][]int `toml:"constraints"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}

	in := &Instance{Photos: doc.Photos, Capacity: doc.Capacity}
	for i, c := range doc.Constraints {
		if len(c) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"parse %s: constraint %d has %d elements, want 2", path, i, len(c))
		}
		in.Constraints = append(in.Constraints, [2]int{c[0], c[1]})
	}
	return in, nil
}
