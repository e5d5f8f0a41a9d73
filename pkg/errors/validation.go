package errors

import (
	"strings"
	"unicode"
)

// ValidateCapacity validates a page capacity. A non-positive capacity is a
// configuration error and must be rejected before any graph analysis.
func ValidateCapacity(m int) error {
	if m <= 0 {
		return New(ErrCodeInvalidCapacity, "page capacity must be positive, got %d", m)
	}
	return nil
}

// ValidatePhotoCount validates the number of photos in an instance.
func ValidatePhotoCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "photo count must not be negative, got %d", n)
	}
	return nil
}

// ValidatePhotoID validates that a constraint endpoint falls inside the
// identifier range [1, n] of an instance with n photos.
func ValidatePhotoID(id, n int) error {
	if id < 1 || id > n {
		return New(ErrCodeInvalidPhoto, "photo %d out of range [1, %d]", id, n)
	}
	return nil
}

// ValidatePath validates an input file path for safety.
// It prevents path traversal and ensures a reasonable length. Intended for
// paths received over the wire; local CLI arguments are the user's own.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
