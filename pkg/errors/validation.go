package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateNonNegative rejects negative integer fields such as lanes and
// branch indexes.
func ValidateNonNegative(field string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be non-negative, got %d", field, v)
	}
	return nil
}

// ValidatePositive rejects zero, negative and non-finite configuration
// values such as step sizes and radii.
func ValidatePositive(field string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %g", field, v)
	}
	return nil
}

// ValidateCommitID validates an opaque commit identifier.
//
// Identifiers are not interpreted, but they end up in SVG attributes and log
// lines, so empty values and control characters are rejected.
func ValidateCommitID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "commit id cannot be empty")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "commit id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateOutputPath validates a path an artifact will be written to.
// It must name a file, not a directory.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}
	return nil
}
