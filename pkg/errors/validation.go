package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds layout and theme names, which double as file names.
const maxNameLength = 128

// ValidateName validates a layout or theme name before it is joined onto a
// base directory. Names are file stems: they must not carry path components,
// traversal sequences or control characters.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "name cannot contain path separators: %q", name)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "name cannot contain path traversal sequences: %q", name)
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "name cannot be a hidden file: %q", name)
	}

	return nil
}
