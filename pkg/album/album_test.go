package album

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pagestack/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseText(t *testing.T) {
	in, err := ParseText(strings.NewReader("4 2 3\n2 1\n3 1\n1 4\n"))
	if err != nil {
		t.Fatalf("ParseText() error: %v", err)
	}
	if in.Photos != 4 || in.Capacity != 2 {
		t.Errorf("got photos=%d capacity=%d, want 4 and 2", in.Photos, in.Capacity)
	}
	want := [][2]int{{2, 1}, {3, 1}, {1, 4}}
	if len(in.Constraints) != len(want) {
		t.Fatalf("got %d constraints, want %d", len(in.Constraints), len(want))
	}
	for i := range want {
		if in.Constraints[i] != want[i] {
			t.Errorf("constraint %d = %v, want %v", i, in.Constraints[i], want[i])
		}
	}
}

func TestParseText_TrailingBlankLines(t *testing.T) {
	if _, err := ParseText(strings.NewReader("2 1 1\n1 2\n\n\n")); err != nil {
		t.Errorf("ParseText() error: %v, want nil", err)
	}
}

func TestParseText_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short header", "3 2\n"},
		{"long header", "3 2 0 9\n"},
		{"non-integer header", "3 two 0\n"},
		{"missing constraint line", "3 2 2\n1 2\n"},
		{"short constraint", "3 2 1\n1\n"},
		{"long constraint", "3 2 1\n1 2 3\n"},
		{"non-integer constraint", "3 2 1\n1 x\n"},
		{"trailing garbage", "2 1 1\n1 2\nextra\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseText(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseText() error = nil, want parse failure")
			}
		})
	}
}

func TestTOMLFormat(t *testing.T) {
	path := writeFile(t, "album.toml", `
photos = 4
capacity = 2
constraints = [[1, 3], [2, 3]]
`)
	in, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if in.Photos != 4 || in.Capacity != 2 || len(in.Constraints) != 2 {
		t.Errorf("got %+v", in)
	}
}

func TestTOMLFormat_BadConstraintArity(t *testing.T) {
	path := writeFile(t, "album.toml", `
photos = 3
capacity = 1
constraints = [[1, 2, 3]]
`)
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load() error = %v, want INVALID_INPUT", err)
	}
}

func TestJSONFormat(t *testing.T) {
	path := writeFile(t, "album.json", `{"photos": 3, "capacity": 2, "constraints": [[1, 2]]}`)
	in, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if in.Photos != 3 || in.Capacity != 2 || len(in.Constraints) != 1 {
		t.Errorf("got %+v", in)
	}
}

func TestJSONFormat_UnknownField(t *testing.T) {
	path := writeFile(t, "album.json", `{"photos": 3, "capacity": 2, "pages": 9}`)
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load() error = %v, want INVALID_INPUT", err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"album.toml", "toml"},
		{"ALBUM.TOML", "toml"},
		{"album.json", "json"},
		{"album.txt", "text"},
		{"album", "text"},
		{"some/dir/album.toml", "toml"},
	}
	for _, tt := range tests {
		f, err := Detect(tt.path)
		if err != nil {
			t.Errorf("Detect(%q) error: %v", tt.path, err)
			continue
		}
		if f.Type() != tt.want {
			t.Errorf("Detect(%q).Type() = %q, want %q", tt.path, f.Type(), tt.want)
		}
	}
}

func TestFormatByType(t *testing.T) {
	if f, ok := FormatByType("toml"); !ok || f.Type() != "toml" {
		t.Errorf("FormatByType(toml) = %v, %v", f, ok)
	}
	if _, ok := FormatByType("yaml"); ok {
		t.Error("FormatByType(yaml) = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoad_InvalidInstance(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"zero capacity", "3 0 0\n", errors.ErrCodeInvalidCapacity},
		{"negative capacity", "3 -2 0\n", errors.ErrCodeInvalidCapacity},
		{"photo out of range", "3 2 1\n1 9\n", errors.ErrCodeInvalidPhoto},
		{"photo zero", "3 2 1\n0 1\n", errors.ErrCodeInvalidPhoto},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "album.txt", tt.content)
			if _, err := Load(path); !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Instance{Photos: 3, Capacity: 2, Constraints: [][2]int{{1, 2}}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	empty := Instance{Photos: 0, Capacity: 1}
	if err := empty.Validate(); err != nil {
		t.Errorf("Validate() on empty instance = %v, want nil", err)
	}
}

func TestGraph(t *testing.T) {
	in := Instance{Photos: 3, Capacity: 2, Constraints: [][2]int{{1, 2}, {2, 3}}}
	g, err := in.Graph()
	if err != nil {
		t.Fatalf("Graph() error: %v", err)
	}
	if g.Photos() != 3 || g.Edges() != 2 {
		t.Errorf("graph has %d photos and %d edges, want 3 and 2", g.Photos(), g.Edges())
	}
}

func TestCanonical_OrderIndependent(t *testing.T) {
	a := Instance{Photos: 3, Capacity: 2, Constraints: [][2]int{{2, 3}, {1, 2}}}
	b := Instance{Photos: 3, Capacity: 2, Constraints: [][2]int{{1, 2}, {2, 3}}}

	ca, err := a.Canonical()
	if err != nil {
		t.Fatalf("Canonical() error: %v", err)
	}
	cb, err := b.Canonical()
	if err != nil {
		t.Fatalf("Canonical() error: %v", err)
	}
	if string(ca) != string(cb) {
		t.Errorf("Canonical() differs:\n%s\n%s", ca, cb)
	}

	// Canonicalizing must not reorder the caller's constraints.
	if a.Constraints[0] != [2]int{2, 3} {
		t.Error("Canonical() mutated the instance")
	}
}

func TestCanonical_CapacitySensitive(t *testing.T) {
	a := Instance{Photos: 3, Capacity: 2}
	b := Instance{Photos: 3, Capacity: 3}
	ca, _ := a.Canonical()
	cb, _ := b.Canonical()
	if string(ca) == string(cb) {
		t.Error("Canonical() ignores capacity")
	}
}
