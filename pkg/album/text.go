package album

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/pagestack/pkg/errors"
)

// TextFormat parses the plain text instance format:
//
//	n m k
//	u v
//	...
//
// The first line gives the photo count n, the page capacity m, and the
// number of constraint lines k. Each of the next k lines names one
// constraint u→v. Blank lines after the constraints are tolerated.
type TextFormat struct{}

func (f *TextFormat) Type() string { return "text" }

// Supports claims .txt files and anything without a recognized extension,
// so the text format acts as the fallback.
func (f *TextFormat) Supports(name string) bool {
	return !strings.HasSuffix(name, ".toml") && !strings.HasSuffix(name, ".json")
}

func (f *TextFormat) Parse(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()

	in, err := ParseText(file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return in, nil
}

// ParseText decodes a plain text instance from r. It reads the header line,
// then exactly as many constraint lines as the header announced. Missing or
// malformed tokens fail with the offending line number rather than guessing.
func ParseText(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("line 1: missing header")
	}
	var n, m, k int
	if err := scanInts(sc.Text(), &n, &m, &k); err != nil {
		return nil, fmt.Errorf("line 1: header must be three integers \"n m k\": %w", err)
	}

	in := &Instance{Photos: n, Capacity: m}
	for i := 0; i < k; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("line %d: expected %d constraint lines, got %d", i+2, k, i)
		}
		var u, v int
		if err := scanInts(sc.Text(), &u, &v); err != nil {
			return nil, fmt.Errorf("line %d: constraint must be two integers \"u v\": %w", i+2, err)
		}
		in.Constraints = append(in.Constraints, [2]int{u, v})
	}

	line := k + 2
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("line %d: unexpected trailing content %q", line, sc.Text())
		}
		line++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

// scanInts parses the line into exactly len(dst) space-separated integers.
func scanInts(line string, dst ...*int) error {
	fields := strings.Fields(line)
	if len(fields) != len(dst) {
		return fmt.Errorf("got %d tokens, want %d", len(fields), len(dst))
	}
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("token %q is not an integer", field)
		}
		*dst[i] = value
	}
	return nil
}
