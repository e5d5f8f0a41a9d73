package album

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/pagestack/pkg/errors"
)

// JSONFormat parses JSON instance files:
//
//	{"photos": 4, "capacity": 2, "constraints": [[1, 3], [2, 3]]}
//
// This is the same shape the HTTP API accepts.
type JSONFormat struct{}

func (f *JSONFormat) Type() string { return "json" }

func (f *JSONFormat) Supports(name string) bool {
	return strings.HasSuffix(name, ".json")
}

func (f *JSONFormat) Parse(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()

	in, err := ReadJSON(file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return in, nil
}

// ReadJSON decodes a JSON instance from r. Unknown fields are rejected so
// typos surface instead of silently producing an empty instance.
func ReadJSON(r io.Reader) (*Instance, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var in Instance
	if err := dec.Decode(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

// WriteJSON encodes the instance as JSON to w.
func WriteJSON(in *Instance, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(in)
}
