package errs

import (
	"errors"
	"fmt"
)

// Failure kinds, checked with errors.Is. Invalid arguments are caller
// bugs; the rest are runtime conditions the caller may recover from.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingResource = errors.New("missing resource")
	ErrRemoteFetch     = errors.New("remote fetch failed")
	ErrNoFontAvailable = errors.New("no font available")
)

// Invalidf wraps ErrInvalidArgument with the offending parameter.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

// Missingf wraps ErrMissingResource with the resource that was not found.
func Missingf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrMissingResource)...)
}
