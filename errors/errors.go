// Package errors defines all exported error sentinels for the dictidx
// library.
//
// This is the single source of truth for error values, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Build errors
var (
	ErrDictionaryTooLarge = errors.New("dictidx: dictionary exceeds uint32 offset range (4 GiB)")
	ErrTooManyLines       = errors.New("dictidx: line count exceeds uint32 index range")
)
