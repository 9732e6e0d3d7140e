package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateTableID validates a table identifier. IDs end up in cache keys
// and log fields, so they are kept short and printable.
func ValidateTableID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "table id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidConfig, "table id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConfig, "table id contains whitespace or control characters")
		}
	}

	return nil
}

// ValidateBounds validates the height bounds of a table. A zero minHeight
// and a nil maxHeight mean unset.
func ValidateBounds(minHeight int, maxHeight *int) error {
	if minHeight < 0 {
		return New(ErrCodeInvalidBounds, "min height cannot be negative: %d", minHeight)
	}
	if maxHeight == nil {
		return nil
	}
	if *maxHeight < 0 {
		return New(ErrCodeInvalidBounds, "max height cannot be negative: %d", *maxHeight)
	}
	if minHeight > 0 && minHeight > *maxHeight {
		return New(ErrCodeInvalidBounds, "min height %d exceeds max height %d", minHeight, *maxHeight)
	}
	return nil
}

// ValidateColumnWidth validates the declared width of column key. Zero
// means "no explicit width".
func ValidateColumnWidth(key string, width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return New(ErrCodeInvalidWidth, "column %q: width is not a finite number", key)
	}
	if width < 0 {
		return New(ErrCodeInvalidWidth, "column %q: width cannot be negative: %g", key, width)
	}
	return nil
}

// ValidateColumnKeys validates that every column has a unique, non-empty key.
func ValidateColumnKeys(keys []string) error {
	seen := make(map[string]bool, len(keys))
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			return New(ErrCodeInvalidConfig, "column %d has no key", i+1)
		}
		if seen[k] {
			return New(ErrCodeInvalidConfig, "duplicate column key %q", k)
		}
		seen[k] = true
	}
	return nil
}

// ValidatePath validates a path to a configuration or scenario file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml
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

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".toml" {
		return New(ErrCodeInvalidPath, "expected a .toml file, got %q", filepath.Base(path))
	}

	return nil
}
