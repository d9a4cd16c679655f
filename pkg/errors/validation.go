package errors

import (
	"strings"
	"unicode"
)

// ValidateRequirementName checks that a dependency name can be written as the
// leading token of a requirements line.
//
// Names come straight from a remote manifest, so anything that would break
// the one-entry-per-line format is rejected:
//   - No empty names
//   - No control characters (including newlines)
//   - No whitespace
//   - No version operator characters
//   - Maximum length of 256 characters
func ValidateRequirementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "dependency name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "dependency name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "dependency name %q contains control characters", name)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "dependency name %q contains whitespace", name)
		}
	}

	if i := strings.IndexAny(name, "<>=!~,;"); i >= 0 {
		return New(ErrCodeInvalidName, "dependency name %q contains invalid character %q", name, name[i])
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
