package nri

import "errors"

// Parse and accessor failures. Callers classify with errors.Is; Parse wraps
// these with the offending input where that helps diagnosis.
var (
	// ErrEmptyInput is returned by Parse for an empty string.
	ErrEmptyInput = errors.New("identifier string cannot be empty")

	// ErrMissingSchemeDelimiter is returned by Parse when the input contains
	// no "::" separator.
	ErrMissingSchemeDelimiter = errors.New(`identifier is missing the "::" scheme delimiter`)

	// ErrAmbiguousSchemeDelimiter is returned by Parse when the input
	// contains "::" more than once.
	ErrAmbiguousSchemeDelimiter = errors.New(`identifier contains "::" more than once`)

	// ErrUnknownScheme is returned by Parse when the token before "::" is
	// not a registered scheme.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrQueryKeyNotFound is returned by Query when the identifier carries
	// no entry for the requested key.
	ErrQueryKeyNotFound = errors.New("query key not found")

	// ErrInvalidScheme is returned when narrowing an Identifier into a
	// scheme-specific view it does not belong to.
	ErrInvalidScheme = errors.New("invalid scheme")
)
