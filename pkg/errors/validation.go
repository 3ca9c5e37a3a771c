package errors

import "unicode"

// maxNameLength bounds tile type, wire, bel and device names.
const maxNameLength = 128

// ValidateName checks an identifier used inside the archive (tile type, wire,
// bel or pin name). kind is used in the error message only.
//
// Names must be non-empty and free of control characters. Plain spaces are
// allowed since some toolchains pad the empty tile type name with them.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}
	return nil
}

// ValidateDimensions checks fabric grid dimensions.
//
// The generated fabric needs an IO ring, a corner tile on each side and at
// least one switch tile between corners, so each side must be odd and at
// least 5 tiles long.
func ValidateDimensions(width, height int) error {
	for _, d := range []struct {
		axis string
		v    int
	}{{"width", width}, {"height", height}} {
		if d.v < 5 {
			return New(ErrCodeInvalidDimensions, "%s must be at least 5, got %d", d.axis, d.v)
		}
		if d.v%2 == 0 {
			return New(ErrCodeInvalidDimensions, "%s must be odd, got %d", d.axis, d.v)
		}
	}
	return nil
}

// ValidateCount checks a positive per-tile resource count such as the
// routing channel width.
func ValidateCount(what string, n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "%s must be at least 1, got %d", what, n)
	}
	if n > 1024 {
		return New(ErrCodeInvalidInput, "%s too large (max 1024), got %d", what, n)
	}
	return nil
}
