package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Wrap(ErrCodeInvalidConfig, &FieldError{Field: field, Value: v, Reason: "must be a positive finite number"},
			"%s must be positive", field)
	}
	return nil
}

// ValidateNonNegative rejects values that are NaN, infinite or negative.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Wrap(ErrCodeInvalidConfig, &FieldError{Field: field, Value: v, Reason: "must be a non-negative finite number"},
			"%s must not be negative", field)
	}
	return nil
}

// ValidateCount rejects integer counts below min.
func ValidateCount(field string, v, least int) error {
	if v < least {
		return Wrap(ErrCodeInvalidConfig, &FieldError{Field: field, Value: v, Reason: "too small"},
			"%s must be at least %d", field, least)
	}
	return nil
}

// ValidateProbability rejects values outside [0, 1].
func ValidateProbability(field string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Wrap(ErrCodeInvalidConfig, &FieldError{Field: field, Value: p, Reason: "must be within [0, 1]"},
			"%s must be a probability", field)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}
	return nil
}
