package errors

import (
	"strings"
	"unicode"
)

// ValidateAssetPath checks a configured input or output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//
// Absolute paths and ".." are allowed; xqboard only touches files the user
// names on their own machine.
func ValidateAssetPath(path string) error {
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

	return nil
}

// ValidateColour checks a colour value that ends up inside an inline SVG
// style attribute. Any CSS colour is accepted as long as it cannot close the
// declaration or the attribute it is written into.
func ValidateColour(colour string) error {
	if strings.TrimSpace(colour) == "" {
		return New(ErrCodeInvalidConfig, "colour cannot be empty")
	}
	if strings.ContainsAny(colour, ";\"'<>&") {
		return New(ErrCodeInvalidConfig, "colour %q contains invalid characters", colour)
	}
	for _, r := range colour {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "colour contains control characters")
		}
	}
	return nil
}
