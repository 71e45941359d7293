package errors

import (
	"regexp"
	"unicode"
)

// MaxNodeIDLength bounds node identifiers. IDs end up in SVG element ids and
// CSS selectors, so they are kept short.
const MaxNodeIDLength = 64

// nodeIDRegex matches identifiers that are safe as SVG id suffixes.
var nodeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateNodeID validates a node identifier.
//
// The rules are conservative:
//   - No empty IDs
//   - Maximum length of MaxNodeIDLength characters
//   - Letters, digits, underscore, dot and dash only, starting with a letter or digit
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", MaxNodeIDLength)
	}
	if !nodeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid node id: %q", id)
	}
	return nil
}

// ValidatePath validates an output or dataset path.
//
// The path must be non-empty and free of NUL and control characters, which
// shells and rsvg-convert mishandle. Relative paths may climb with "..".
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
