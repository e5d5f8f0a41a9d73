package errors

import (
	"strings"
	"testing"
)

func TestValidateCapacity(t *testing.T) {
	for _, m := range []int{1, 2, 100} {
		if err := ValidateCapacity(m); err != nil {
			t.Errorf("ValidateCapacity(%d) = %v, want nil", m, err)
		}
	}
	for _, m := range []int{0, -1, -50} {
		err := ValidateCapacity(m)
		if !Is(err, ErrCodeInvalidCapacity) {
			t.Errorf("ValidateCapacity(%d) = %v, want INVALID_CAPACITY", m, err)
		}
	}
}

func TestValidatePhotoCount(t *testing.T) {
	if err := ValidatePhotoCount(0); err != nil {
		t.Errorf("ValidatePhotoCount(0) = %v, want nil", err)
	}
	if err := ValidatePhotoCount(-1); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidatePhotoCount(-1) = %v, want INVALID_INPUT", err)
	}
}

func TestValidatePhotoID(t *testing.T) {
	tests := []struct {
		id, n  int
		wantOK bool
	}{
		{1, 4, true},
		{4, 4, true},
		{0, 4, false},
		{5, 4, false},
		{-2, 4, false},
		{1, 0, false},
	}
	for _, tt := range tests {
		err := ValidatePhotoID(tt.id, tt.n)
		if tt.wantOK && err != nil {
			t.Errorf("ValidatePhotoID(%d, %d) = %v, want nil", tt.id, tt.n, err)
		}
		if !tt.wantOK && !Is(err, ErrCodeInvalidPhoto) {
			t.Errorf("ValidatePhotoID(%d, %d) = %v, want INVALID_PHOTO", tt.id, tt.n, err)
		}
	}
}

func TestValidatePath(t *testing.T) {
	valid := []string{
		"album.txt",
		"examples/chain.toml",
		"a/b/c.json",
	}
	for _, p := range valid {
		if err := ValidatePath(p); err != nil {
			t.Errorf("ValidatePath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{
		"",
		"../etc/passwd",
		"a/../b",
		"a\\b",
		"bad\x00path",
		strings.Repeat("x", 501),
	}
	for _, p := range invalid {
		if err := ValidatePath(p); !Is(err, ErrCodeInvalidPath) {
			t.Errorf("ValidatePath(%q) = %v, want INVALID_PATH", p, err)
		}
	}
}
