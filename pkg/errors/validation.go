package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// constNameRegex matches valid JS/TS identifiers usable as constant names.
var constNameRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateConstName validates a constant name before it is interpolated into
// the declaration-matching pattern.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Must be a plain JS/TS identifier (no computed or quoted keys)
//   - Maximum length of 256 characters
func ValidateConstName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConstName, "constant name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidConstName, "constant name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConstName, "constant name contains invalid characters")
		}
	}

	if !constNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConstName, "invalid constant name: %q", name)
	}

	return nil
}

// ValidateInputPath validates a user-supplied input file path.
// Absolute and relative paths are both allowed; only clearly hostile or
// unusable paths are rejected.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "input path contains invalid characters")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	return nil
}
