package album

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/pagestack/pkg/errors"
)

// Format parses instance files of one on-disk representation.
type Format interface {
	// Type returns the format name used in CLI flags and error messages.
	Type() string
	// Supports reports whether the format claims the given filename.
	Supports(filename string) bool
	// Parse reads and decodes the file at path. The returned instance is
	// not yet validated.
	Parse(path string) (*Instance, error)
}

// Formats lists the supported instance formats in detection order. The text
// format claims anything the others don't, so it goes last.
var Formats = []Format{
	&TOMLFormat{},
	&JSONFormat{},
	&TextFormat{},
}

// FormatByType returns the format with the given type name.
func FormatByType(name string) (Format, bool) {
	for _, f := range Formats {
		if f.Type() == name {
			return f, true
		}
	}
	return nil, false
}

// FormatTypes returns the type names of all supported formats.
func FormatTypes() []string {
	types := make([]string, len(Formats))
	for i, f := range Formats {
		types[i] = f.Type()
	}
	return types
}

// Detect picks the format claiming the file's name.
func Detect(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	for _, f := range Formats {
		if f.Supports(name) {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"no format supports %s (available: %s)", path, strings.Join(FormatTypes(), ", "))
}

// Load reads, parses, and validates the instance file at path, detecting
// the format from the filename.
func Load(path string) (*Instance, error) {
	f, err := Detect(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, f)
}

// LoadAs reads, parses, and validates the instance file at path using an
// explicit format.
func LoadAs(path string, f Format) (*Instance, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
	}
	in, err := f.Parse(path)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}
