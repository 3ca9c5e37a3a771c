// Package errors provides structured error types for fabricgen.
//
// Every failure in the generator is a build-time configuration defect, so the
// codes below classify where the defect was found rather than how to recover
// from it:
//   - INVALID_*: Option and config validation failures
//   - DUPLICATE_*, UNKNOWN_*, INVALID_PIP, PIN_CONTRACT, FROZEN: tile type definition errors
//   - LAYOUT: grid invariant violations
//   - STITCH: node stitching inconsistencies
//   - ARCHIVE: serialization failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownWire, "tile %s: wire %q not defined", tile, wire)
//	if errors.Is(err, errors.ErrCodeUnknownWire) {
//	    // Handle definition error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeArchive, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// Tile type definition errors
	ErrCodeDuplicateTileType Code = "DUPLICATE_TILE_TYPE"
	ErrCodeDuplicateWire     Code = "DUPLICATE_WIRE"
	ErrCodeDuplicateBel      Code = "DUPLICATE_BEL"
	ErrCodeDuplicatePip      Code = "DUPLICATE_PIP"
	ErrCodeDuplicatePin      Code = "DUPLICATE_PIN"
	ErrCodeUnknownWire       Code = "UNKNOWN_WIRE"
	ErrCodeUnknownPrimitive  Code = "UNKNOWN_PRIMITIVE"
	ErrCodeUnknownTileType   Code = "UNKNOWN_TILE_TYPE"
	ErrCodeInvalidPip        Code = "INVALID_PIP"
	ErrCodePinContract       Code = "PIN_CONTRACT"
	ErrCodeFrozen            Code = "FROZEN"

	// Generation stage errors
	ErrCodeLayout  Code = "LAYOUT"
	ErrCodeStitch  Code = "STITCH"
	ErrCodeArchive Code = "ARCHIVE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsDefinition reports whether err is a tile type definition error.
func IsDefinition(err error) bool {
	switch GetCode(err) {
	case ErrCodeDuplicateTileType, ErrCodeDuplicateWire, ErrCodeDuplicateBel,
		ErrCodeDuplicatePip, ErrCodeDuplicatePin, ErrCodeUnknownWire,
		ErrCodeUnknownPrimitive, ErrCodeInvalidPip, ErrCodePinContract, ErrCodeFrozen:
		return true
	}
	return false
}
